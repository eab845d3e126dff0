package lower

import (
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// recipeTags marks recipes as crafting-table recipes.
var recipeTags = []string{"crafting_table"}

// Recipe lowers a neutral recipe to its behavior-side document. Unsupported
// recipes return nil and are not emitted. Ingredients and results pass
// through the item-reference normalization rules.
func Recipe(modID string, recipe *mod.Recipe) *RecipeDocument {
	switch recipe.Kind {
	case mod.RecipeShaped:
		key := make(map[string]RecipeItem, len(recipe.Key))
		for symbol, ing := range recipe.Key {
			key[symbol] = recipeItem(ing.Resolve(modID), false)
		}
		return &RecipeDocument{
			FormatVersion: FormatVersionEntity,
			Shaped: &ShapedBody{
				Description: RecipeDescription{Identifier: Identifier(modID, recipe.Name)},
				Tags:        recipeTags,
				Pattern:     recipe.Pattern,
				Key:         key,
				Result:      recipeItem(recipe.Result.Normalize(modID), true),
			},
		}
	case mod.RecipeShapeless:
		ingredients := make([]RecipeItem, 0, len(recipe.Ingredients))
		for _, ing := range recipe.Ingredients {
			ingredients = append(ingredients, recipeItem(ing.Resolve(modID), false))
		}
		return &RecipeDocument{
			FormatVersion: FormatVersionEntity,
			Shapeless: &ShapelessBody{
				Description: RecipeDescription{Identifier: Identifier(modID, recipe.Name)},
				Tags:        recipeTags,
				Ingredients: ingredients,
				Result:      recipeItem(recipe.Result.Normalize(modID), true),
			},
		}
	default:
		return nil
	}
}

// recipeItem formats a normalized reference. Counts are emitted on results
// only; key and ingredient entries always consume one.
func recipeItem(ref mod.ItemRef, withCount bool) RecipeItem {
	item := RecipeItem{Item: ref.String()}
	if withCount && ref.Count > 1 {
		item.Count = ref.Count
	}
	return item
}
