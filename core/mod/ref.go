package mod

import "strings"

// SourceNamespace is the vanilla namespace preserved across editions.
const SourceNamespace = "minecraft"

// ItemRef identifies an item by namespace, path and count.
type ItemRef struct {
	Namespace string `json:"namespace"`
	Path      string `json:"path"`
	Count     int    `json:"count"`
}

// ParseItemRef splits a "namespace:path" string into an ItemRef.
// A bare path yields an empty namespace; normalization assigns it later.
func ParseItemRef(s string, count int) ItemRef {
	if count < 1 {
		count = 1
	}
	ns, path, found := strings.Cut(s, ":")
	if !found {
		return ItemRef{Path: s, Count: count}
	}
	return ItemRef{Namespace: ns, Path: path, Count: count}
}

// Normalize rewrites the reference into the target namespace scheme:
// minecraft:* is preserved, any other namespace is rewritten to the mod
// namespace, and a bare path receives the mod namespace.
func (r ItemRef) Normalize(modID string) ItemRef {
	switch r.Namespace {
	case SourceNamespace:
		return r
	default:
		return ItemRef{Namespace: modID, Path: r.Path, Count: r.Count}
	}
}

// String formats the reference as "namespace:path".
func (r ItemRef) String() string {
	if r.Namespace == "" {
		return r.Path
	}
	return r.Namespace + ":" + r.Path
}

// Ingredient is a recipe input: either a concrete item or an ingredient tag.
type Ingredient struct {
	// Tag is the tag name ("forge:ingots/copper"); empty for item ingredients.
	Tag string `json:"tag,omitempty"`

	// Item is the concrete item reference; meaningful when Tag is empty.
	Item ItemRef `json:"item,omitempty"`
}

// IsTag returns true for tag ingredients.
func (g Ingredient) IsTag() bool {
	return g.Tag != ""
}

// Resolve lowers the ingredient to a concrete item reference. The target
// edition has no runtime tag resolution in recipes, so a tag collapses to
// its last path segment under the vanilla namespace.
func (g Ingredient) Resolve(modID string) ItemRef {
	if !g.IsTag() {
		return g.Item.Normalize(modID)
	}
	name := g.Tag
	if _, path, found := strings.Cut(name, ":"); found {
		name = path
	}
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	return ItemRef{Namespace: SourceNamespace, Path: name, Count: 1}
}

// RecipeKind discriminates the recipe sum type.
type RecipeKind string

// Recipe kind constants.
const (
	RecipeShaped      RecipeKind = "shaped"
	RecipeShapeless   RecipeKind = "shapeless"
	RecipeUnsupported RecipeKind = "unsupported"
)

// Unsupported-recipe reasons.
const (
	ReasonExtremeCrafting = "extreme_crafting"
	ReasonUnknownShape    = "unknown_shape"
)

// Recipe is the neutral recipe representation.
type Recipe struct {
	// Name is the recipe identifier within the mod namespace, taken from
	// the source document's file stem.
	Name string `json:"name"`

	// Kind discriminates the variant.
	Kind RecipeKind `json:"kind"`

	// Pattern holds 1..=3 rows of 1..=3 symbols each (shaped only).
	Pattern []string `json:"pattern,omitempty"`

	// Key maps pattern symbols to ingredients (shaped only).
	Key map[string]Ingredient `json:"key,omitempty"`

	// Ingredients is the unordered input list (shapeless only).
	Ingredients []Ingredient `json:"ingredients,omitempty"`

	// Result is the produced item.
	Result ItemRef `json:"result"`

	// Reason explains why the recipe is unsupported.
	Reason string `json:"reason,omitempty"`
}
