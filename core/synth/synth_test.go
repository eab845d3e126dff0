package synth

import (
	"testing"

	"github.com/masterotaku487-arch/Transformar/core/assets"
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1}

func buildIndex(t *testing.T, blocks, items []string) *assets.Index {
	t.Helper()
	var b, i []assets.RawTexture
	for _, name := range blocks {
		b = append(b, assets.RawTexture{Path: name + ".png", Bytes: pngBytes})
	}
	for _, name := range items {
		i = append(i, assets.RawTexture{Path: name + ".png", Bytes: pngBytes})
	}
	idx, errs := assets.BuildIndex(b, i, nil)
	if len(errs) != 0 {
		t.Fatalf("BuildIndex errors: %v", errs)
	}
	return idx
}

func TestFillBlockInducesItem(t *testing.T) {
	idx := buildIndex(t, []string{"ruby_ore"}, nil)
	res := Fill(map[string]*mod.Item{}, idx)

	block := res.Blocks["ruby_ore"]
	if block == nil {
		t.Fatal("ruby_ore block not synthesized")
	}
	if !block.IsOre || block.Hardness != 3.0 || block.Resistance != 6.0 {
		t.Errorf("ore block = %+v, want hardness 3, resistance 6, is_ore", block)
	}

	item := res.Items["ruby_ore"]
	if item == nil {
		t.Fatal("block-item not synthesized")
	}
	if !item.IsBlockItem {
		t.Error("induced item should be marked is_block_item")
	}
	if item.StackMax != 64 {
		t.Errorf("StackMax = %d, want 64", item.StackMax)
	}
}

func TestFillNonOreBlockDefaults(t *testing.T) {
	idx := buildIndex(t, []string{"marble"}, nil)
	res := Fill(map[string]*mod.Item{}, idx)

	block := res.Blocks["marble"]
	if block.IsOre {
		t.Error("marble should not be an ore")
	}
	if block.Hardness != 1.5 {
		t.Errorf("Hardness = %v, want default 1.5", block.Hardness)
	}
}

func TestFillBareTextureInducesItem(t *testing.T) {
	idx := buildIndex(t, nil, []string{"copper_ingot"})
	res := Fill(map[string]*mod.Item{}, idx)

	item := res.Items["copper_ingot"]
	if item == nil {
		t.Fatal("item not synthesized for bare texture")
	}
	if item.IsBlockItem || item.Tool || item.Armored() {
		t.Errorf("plain item got roles: %+v", item)
	}
}

func TestFillToolHeuristic(t *testing.T) {
	for _, id := range []string{"ruby_sword", "ruby_axe", "ruby_pickaxe", "ruby_shovel", "ruby_hoe"} {
		idx := buildIndex(t, nil, []string{id})
		res := Fill(map[string]*mod.Item{}, idx)
		item := res.Items[id]
		if !item.Tool {
			t.Errorf("%s: Tool = false, want true", id)
		}
		if item.StackMax != 1 {
			t.Errorf("%s: StackMax = %d, want 1", id, item.StackMax)
		}
		if item.Durability != DefaultEquipDurability {
			t.Errorf("%s: Durability = %d, want %d", id, item.Durability, DefaultEquipDurability)
		}
	}
}

func TestFillArmorHeuristic(t *testing.T) {
	tests := []struct {
		id   string
		want mod.ArmorSlot
	}{
		{"ruby_helmet", mod.SlotHelmet},
		{"ruby_chestplate", mod.SlotChestplate},
		{"ruby_leggings", mod.SlotLeggings},
		{"ruby_boots", mod.SlotBoots},
	}
	for _, tt := range tests {
		idx := buildIndex(t, nil, []string{tt.id})
		res := Fill(map[string]*mod.Item{}, idx)
		item := res.Items[tt.id]
		if item.ArmorSlot != tt.want {
			t.Errorf("%s: ArmorSlot = %q, want %q", tt.id, item.ArmorSlot, tt.want)
		}
		if item.StackMax != 1 || item.Durability != DefaultEquipDurability {
			t.Errorf("%s: StackMax = %d, Durability = %d; want 1, %d",
				tt.id, item.StackMax, item.Durability, DefaultEquipDurability)
		}
		if errs := mod.ValidateItem(item); len(errs) != 0 {
			t.Errorf("%s: synthesized armor invalid: %v", tt.id, errs)
		}
	}
}

func TestFillScannedDurabilityKept(t *testing.T) {
	idx := buildIndex(t, nil, []string{"ruby_sword"})
	scanned := mod.NewItem("ruby_sword")
	scanned.Tool = true
	scanned.StackMax = 1
	scanned.Durability = 1200

	res := Fill(map[string]*mod.Item{"ruby_sword": scanned}, idx)
	if got := res.Items["ruby_sword"].Durability; got != 1200 {
		t.Errorf("Durability = %d, want scanned 1200 preserved", got)
	}
}

func TestFillScannedBlockItemFlag(t *testing.T) {
	idx := buildIndex(t, []string{"ruby_block"}, nil)
	scanned := mod.NewItem("ruby_block")

	res := Fill(map[string]*mod.Item{"ruby_block": scanned}, idx)
	if !res.Items["ruby_block"].IsBlockItem {
		t.Error("scanned item matching a block should be marked is_block_item")
	}
}

func TestFillTextureFallback(t *testing.T) {
	idx := buildIndex(t, nil, []string{"apple", "banana"})
	scanned := mod.NewItem("mystery_item") // no texture anywhere

	res := Fill(map[string]*mod.Item{"mystery_item": scanned}, idx)
	if got := res.Items["mystery_item"].TextureKey; got != "apple" {
		t.Errorf("TextureKey = %q, want fallback to first item texture apple", got)
	}
}

func TestFillOnlyBlockTextures(t *testing.T) {
	// An archive with only block textures still yields one item per block
	// and no armor.
	idx := buildIndex(t, []string{"ruby_ore", "marble"}, nil)
	res := Fill(map[string]*mod.Item{}, idx)

	if len(res.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2 block-items", len(res.Items))
	}
	for id, item := range res.Items {
		if !item.IsBlockItem {
			t.Errorf("%s: IsBlockItem = false, want true", id)
		}
		if item.Armored() {
			t.Errorf("%s: unexpected armor slot", id)
		}
	}
}
