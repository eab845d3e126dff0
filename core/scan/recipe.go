package scan

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/titanous/json5"

	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// Top-level recipe fields that are never ingredient-shaped.
var reservedRecipeFields = map[string]bool{
	"type":                   true,
	"pattern":                true,
	"key":                    true,
	"ingredients":            true,
	"result":                 true,
	"results":                true,
	"output":                 true,
	"count":                  true,
	"group":                  true,
	"category":               true,
	"show_notification":      true,
	"experience":             true,
	"cookingtime":            true,
	"conditions":             true,
	"fabric:load_conditions": true,
}

// ParseRecipe decodes a source-edition recipe document into the neutral
// recipe IR. Mod recipe JSON is parsed leniently (comments, trailing commas)
// because third-party archives routinely carry both.
//
// Dispatch: a pattern within 3x3 parses as shaped; a larger pattern is
// unsupported (extreme_crafting); an ingredients list parses as shapeless;
// the primary/secondary custom variant parses as shapeless over every
// ingredient-shaped top-level field; anything else is unsupported
// (unknown_shape). A parse failure is the only error path — the caller
// counts it as a corrupt entry.
func ParseRecipe(entryPath string, data []byte) (*mod.Recipe, error) {
	var doc map[string]interface{}
	if err := json5.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode recipe: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode recipe: document is null")
	}

	name := strings.TrimSuffix(path.Base(entryPath), path.Ext(entryPath))
	recipe := &mod.Recipe{Name: name, Result: parseResult(doc)}

	if raw, ok := doc["pattern"]; ok {
		pattern := toStringSlice(raw)
		if !patternFits(pattern) {
			recipe.Kind = mod.RecipeUnsupported
			recipe.Reason = mod.ReasonExtremeCrafting
			return recipe, nil
		}
		recipe.Kind = mod.RecipeShaped
		recipe.Pattern = pattern
		recipe.Key = parseKey(doc["key"])
		return recipe, nil
	}

	if raw, ok := doc["ingredients"]; ok {
		recipe.Kind = mod.RecipeShapeless
		recipe.Ingredients = parseIngredientList(raw)
		return recipe, nil
	}

	// Custom variant seen in practice: primary/secondary plus any other
	// ingredient-shaped top-level fields.
	if hasAny(doc, "primary", "secondary") {
		recipe.Kind = mod.RecipeShapeless
		recipe.Ingredients = parseCustomIngredients(doc)
		return recipe, nil
	}

	recipe.Kind = mod.RecipeUnsupported
	recipe.Reason = mod.ReasonUnknownShape
	return recipe, nil
}

// patternFits reports whether a shaped pattern fits the target's 3x3 grid.
func patternFits(pattern []string) bool {
	if len(pattern) == 0 || len(pattern) > 3 {
		return false
	}
	for _, row := range pattern {
		if len(row) > 3 {
			return false
		}
	}
	return true
}

// parseResult accepts {"item":…,"count":…}, {"id":…,"count":…} or a bare
// string. A missing or unrecognizable result yields minecraft:air, count 1;
// the recipe itself is never dropped for it.
func parseResult(doc map[string]interface{}) mod.ItemRef {
	raw, ok := doc["result"]
	if !ok {
		raw = doc["output"]
	}

	switch v := raw.(type) {
	case string:
		return mod.ParseItemRef(v, 1)
	case map[string]interface{}:
		name, ok := asString(v["item"])
		if !ok {
			name, ok = asString(v["id"])
		}
		if ok {
			return mod.ParseItemRef(name, asInt(v["count"], 1))
		}
	}
	return mod.ItemRef{Namespace: mod.SourceNamespace, Path: "air", Count: 1}
}

// parseKey decodes a shaped-recipe symbol map.
func parseKey(raw interface{}) map[string]mod.Ingredient {
	key := map[string]mod.Ingredient{}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return key
	}
	for symbol, v := range m {
		if ing, ok := parseIngredient(v); ok {
			key[symbol] = ing
		}
	}
	return key
}

func parseIngredientList(raw interface{}) []mod.Ingredient {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var out []mod.Ingredient
	for _, v := range list {
		if ing, ok := parseIngredient(v); ok {
			out = append(out, ing)
		}
	}
	return out
}

// parseCustomIngredients collects primary, secondary, then every other
// ingredient-shaped top-level field in name order.
func parseCustomIngredients(doc map[string]interface{}) []mod.Ingredient {
	var out []mod.Ingredient
	for _, field := range []string{"primary", "secondary"} {
		if v, ok := doc[field]; ok {
			if ing, ok := parseIngredient(v); ok {
				out = append(out, ing)
			}
		}
	}

	var extras []string
	for field, v := range doc {
		if field == "primary" || field == "secondary" || reservedRecipeFields[field] {
			continue
		}
		if _, ok := parseIngredient(v); ok {
			extras = append(extras, field)
		}
	}
	sort.Strings(extras)
	for _, field := range extras {
		ing, _ := parseIngredient(doc[field])
		out = append(out, ing)
	}
	return out
}

// parseIngredient decodes one ingredient: {"item":…}, {"tag":…}, a bare
// string, or an alternatives array (first alternative wins).
func parseIngredient(raw interface{}) (mod.Ingredient, bool) {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return mod.Ingredient{}, false
		}
		return mod.Ingredient{Item: mod.ParseItemRef(v, 1)}, true
	case map[string]interface{}:
		if tag, ok := asString(v["tag"]); ok && tag != "" {
			return mod.Ingredient{Tag: tag}, true
		}
		name, ok := asString(v["item"])
		if !ok {
			name, ok = asString(v["id"])
		}
		if ok && name != "" {
			return mod.Ingredient{Item: mod.ParseItemRef(name, asInt(v["count"], 1))}, true
		}
	case []interface{}:
		if len(v) > 0 {
			return parseIngredient(v[0])
		}
	}
	return mod.Ingredient{}, false
}

func hasAny(doc map[string]interface{}, fields ...string) bool {
	for _, f := range fields {
		if _, ok := doc[f]; ok {
			return true
		}
	}
	return false
}

func toStringSlice(raw interface{}) []string {
	list, ok := raw.([]interface{})
	if !ok {
		if s, ok := raw.(string); ok {
			return []string{s}
		}
		return nil
	}
	var out []string
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asString(raw interface{}) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

func asInt(raw interface{}, fallback int) int {
	switch v := raw.(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case int:
		if v >= 1 {
			return v
		}
	}
	return fallback
}
