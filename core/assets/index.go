// Package assets indexes texture binaries extracted from a mod archive.
//
// Textures are keyed by file stem. The block map is always built before the
// item map so that a stem present in both can be recognized as a block-item
// (a block with an inventory form sharing the item texture key).
package assets

import (
	"path"
	"sort"
	"strings"

	xerrors "github.com/masterotaku487-arch/Transformar/core/errors"
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// RawTexture is an unvalidated texture entry straight from the archive.
type RawTexture struct {
	Path  string // entry path inside the archive
	Bytes []byte
}

// Index holds the three texture maps keyed by file stem.
type Index struct {
	Items  map[string]mod.TextureAsset
	Blocks map[string]mod.TextureAsset
	Armor  map[string]mod.TextureAsset

	// BlockItems marks stems present in both the block and item maps.
	BlockItems map[string]bool
}

// BuildIndex validates and indexes classified textures. Blocks are indexed
// first, then items (so block-items can be detected), then armor layers.
// Entries that are not PNG are skipped and returned as corrupt-entry errors
// for the caller to log and count.
func BuildIndex(blocks, items, armor []RawTexture) (*Index, []error) {
	idx := &Index{
		Items:      map[string]mod.TextureAsset{},
		Blocks:     map[string]mod.TextureAsset{},
		Armor:      map[string]mod.TextureAsset{},
		BlockItems: map[string]bool{},
	}
	var errs []error

	for _, raw := range blocks {
		asset, err := validate(raw, mod.TextureBlockFace)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		idx.Blocks[asset.Key] = asset
	}

	for _, raw := range items {
		asset, err := validate(raw, mod.TextureItemIcon)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		idx.Items[asset.Key] = asset
		if _, ok := idx.Blocks[asset.Key]; ok {
			idx.BlockItems[asset.Key] = true
		}
	}

	for _, raw := range armor {
		kind := mod.TextureArmorLayer1
		if strings.HasSuffix(stem(raw.Path), "_layer_2") {
			kind = mod.TextureArmorLayer2
		}
		asset, err := validate(raw, kind)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		idx.Armor[asset.Key] = asset
	}

	return idx, errs
}

func validate(raw RawTexture, kind mod.TextureKind) (mod.TextureAsset, error) {
	if !mod.IsPNG(raw.Bytes) {
		return mod.TextureAsset{}, &xerrors.EntryError{
			Entry: raw.Path,
			Kind:  "texture",
			Err:   xerrors.New("missing PNG signature"),
		}
	}
	return mod.TextureAsset{Key: stem(raw.Path), Bytes: raw.Bytes, Kind: kind}, nil
}

func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ItemKeys returns the item texture keys in sorted order. The pack icon and
// texture copying iterate this so output is deterministic across runs.
func (x *Index) ItemKeys() []string {
	keys := make([]string, 0, len(x.Items))
	for k := range x.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BlockKeys returns the block texture keys in sorted order.
func (x *Index) BlockKeys() []string {
	keys := make([]string, 0, len(x.Blocks))
	for k := range x.Blocks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ArmorKeys returns the armor texture keys in sorted order.
func (x *Index) ArmorKeys() []string {
	keys := make([]string, 0, len(x.Armor))
	for k := range x.Armor {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FirstItemTexture returns the first item texture in key order, used as the
// bundled pack icon. ok is false when the archive had no item textures.
func (x *Index) FirstItemTexture() (mod.TextureAsset, bool) {
	keys := x.ItemKeys()
	if len(keys) == 0 {
		return mod.TextureAsset{}, false
	}
	return x.Items[keys[0]], true
}
