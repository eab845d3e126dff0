package assets

import (
	"errors"
	"testing"

	xerrors "github.com/masterotaku487-arch/Transformar/core/errors"
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}

func TestBuildIndex(t *testing.T) {
	idx, errs := BuildIndex(
		[]RawTexture{{Path: "assets/x/textures/block/ruby_ore.png", Bytes: pngBytes}},
		[]RawTexture{
			{Path: "assets/x/textures/item/ruby.png", Bytes: pngBytes},
			{Path: "assets/x/textures/item/ruby_ore.png", Bytes: pngBytes},
		},
		[]RawTexture{
			{Path: "assets/x/textures/models/armor/ruby_layer_1.png", Bytes: pngBytes},
			{Path: "assets/x/textures/models/armor/ruby_layer_2.png", Bytes: pngBytes},
		},
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if _, ok := idx.Blocks["ruby_ore"]; !ok {
		t.Error("block map missing ruby_ore")
	}
	if _, ok := idx.Items["ruby"]; !ok {
		t.Error("item map missing ruby")
	}
	if !idx.BlockItems["ruby_ore"] {
		t.Error("ruby_ore should be detected as a block-item")
	}
	if idx.BlockItems["ruby"] {
		t.Error("ruby should not be a block-item")
	}

	if got := idx.Armor["ruby_layer_1"].Kind; got != mod.TextureArmorLayer1 {
		t.Errorf("ruby_layer_1 kind = %q, want armor_layer_1", got)
	}
	if got := idx.Armor["ruby_layer_2"].Kind; got != mod.TextureArmorLayer2 {
		t.Errorf("ruby_layer_2 kind = %q, want armor_layer_2", got)
	}
}

func TestBuildIndexRejectsNonPNG(t *testing.T) {
	idx, errs := BuildIndex(nil,
		[]RawTexture{
			{Path: "assets/x/textures/item/good.png", Bytes: pngBytes},
			{Path: "assets/x/textures/item/bad.png", Bytes: []byte("GIF89a")},
		}, nil)

	if len(errs) != 1 {
		t.Fatalf("len(errs) = %d, want 1", len(errs))
	}
	if !errors.Is(errs[0], xerrors.ErrEntryCorrupt) {
		t.Errorf("error %v should match ErrEntryCorrupt", errs[0])
	}
	if _, ok := idx.Items["bad"]; ok {
		t.Error("corrupt texture must not be indexed")
	}
	if _, ok := idx.Items["good"]; !ok {
		t.Error("valid texture missing from index")
	}
}

func TestIndexKeysSorted(t *testing.T) {
	idx, _ := BuildIndex(nil,
		[]RawTexture{
			{Path: "c.png", Bytes: pngBytes},
			{Path: "a.png", Bytes: pngBytes},
			{Path: "b.png", Bytes: pngBytes},
		}, nil)

	keys := idx.ItemKeys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("ItemKeys() = %v, want %v", keys, want)
		}
	}

	first, ok := idx.FirstItemTexture()
	if !ok || first.Key != "a" {
		t.Errorf("FirstItemTexture = %q, %v; want a, true", first.Key, ok)
	}
}

func TestFirstItemTextureEmpty(t *testing.T) {
	idx, _ := BuildIndex(nil, nil, nil)
	if _, ok := idx.FirstItemTexture(); ok {
		t.Error("FirstItemTexture on empty index should report ok = false")
	}
}
