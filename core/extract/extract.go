// Package extract walks a mod archive, classifies its entries and collects
// the raw material for the pipeline: scanned items, parsed recipes and
// classified texture binaries.
package extract

import (
	"io"
	"strings"

	"github.com/masterotaku487-arch/Transformar/core/assets"
	xerrors "github.com/masterotaku487-arch/Transformar/core/errors"
	"github.com/masterotaku487-arch/Transformar/core/mod"
	"github.com/masterotaku487-arch/Transformar/core/scan"
	"github.com/masterotaku487-arch/Transformar/internal/archive"
	"github.com/masterotaku487-arch/Transformar/internal/logging"
)

// Category classifies an archive entry by its path.
type Category string

// Entry categories. Anything unmatched is ignored.
const (
	CategoryBlockTexture Category = "block_texture"
	CategoryItemTexture  Category = "item_texture"
	CategoryArmorTexture Category = "armor_texture"
	CategoryRecipe       Category = "recipe"
	CategoryItemClass    Category = "item_class"
	CategoryModMetadata  Category = "mod_metadata"
	CategoryIgnore       Category = "ignore"
)

// Classify maps an entry path to its category. First match wins.
func Classify(p string) Category {
	switch {
	case strings.Contains(p, "/textures/block/") && strings.HasSuffix(p, ".png"):
		return CategoryBlockTexture
	case strings.Contains(p, "/textures/item/") && strings.HasSuffix(p, ".png"):
		return CategoryItemTexture
	case strings.Contains(p, "/textures/models/armor/") && strings.HasSuffix(p, ".png"):
		return CategoryArmorTexture
	case strings.Contains(p, "/recipes/") && strings.HasSuffix(p, ".json"):
		return CategoryRecipe
	case strings.Contains(p, "/item/") && strings.HasSuffix(p, ".class"):
		return CategoryItemClass
	case p == "fabric.mod.json" || p == "mcmod.info":
		return CategoryModMetadata
	default:
		return CategoryIgnore
	}
}

// Extraction is everything recovered from one archive walk.
type Extraction struct {
	// Items maps scanned item id to its partial Item. The first classfile
	// registering an id wins; duplicates are logged at debug level.
	Items map[string]*mod.Item

	// Recipes holds every parsed recipe, unsupported variants included.
	Recipes []*mod.Recipe

	// Raw classified textures, indexed later by the assets package.
	BlockTextures []assets.RawTexture
	ItemTextures  []assets.RawTexture
	ArmorTextures []assets.RawTexture

	// DeclaredModID is the mod id declared in loader metadata, "" if none.
	DeclaredModID string

	// Errors counts corrupt entries that were logged and skipped.
	Errors int
}

// FromArchive opens the container at archivePath and extracts everything the
// pipeline consumes. Only an unopenable container is fatal; corrupt entries
// are logged once each, counted, and skipped.
func FromArchive(archivePath string, scanner *scan.Scanner) (*Extraction, error) {
	ex := &Extraction{Items: map[string]*mod.Item{}}

	err := archive.Iterate(archivePath, func(entryPath string, r io.Reader) (bool, error) {
		category := Classify(entryPath)
		if category == CategoryIgnore {
			return false, nil
		}

		data, err := io.ReadAll(r)
		if err != nil {
			ex.skip(entryPath, string(category), err)
			return false, nil
		}

		switch category {
		case CategoryBlockTexture:
			ex.BlockTextures = append(ex.BlockTextures, assets.RawTexture{Path: entryPath, Bytes: data})
		case CategoryItemTexture:
			ex.ItemTextures = append(ex.ItemTextures, assets.RawTexture{Path: entryPath, Bytes: data})
		case CategoryArmorTexture:
			ex.ArmorTextures = append(ex.ArmorTextures, assets.RawTexture{Path: entryPath, Bytes: data})
		case CategoryRecipe:
			recipe, err := scan.ParseRecipe(entryPath, data)
			if err != nil {
				ex.skip(entryPath, "recipe", err)
				return false, nil
			}
			ex.Recipes = append(ex.Recipes, recipe)
		case CategoryItemClass:
			item := scanner.ScanClass(entryPath, data)
			if existing, ok := ex.Items[item.ID]; ok {
				logging.Debug("duplicate item id", "id", existing.ID, "entry", entryPath)
				return false, nil
			}
			ex.Items[item.ID] = item
		case CategoryModMetadata:
			if ex.DeclaredModID == "" {
				ex.DeclaredModID = scan.ProbeDeclaredModID(data)
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return ex, nil
}

// skip records a corrupt entry: one warning, one error count, entry dropped.
func (ex *Extraction) skip(entryPath, kind string, err error) {
	entryErr := &xerrors.EntryError{Entry: entryPath, Kind: kind, Err: err}
	logging.EntrySkipped(entryPath, kind, entryErr)
	ex.Errors++
}
