// Package synth fills the gaps between what extraction found and what the
// assembler's invariants require: every block gets an inventory item, every
// bare texture gets an item, and names alone are enough to make something a
// tool or a piece of armor.
package synth

import (
	"strings"

	"github.com/masterotaku487-arch/Transformar/core/assets"
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// DefaultEquipDurability is assigned to tools and armor whose bytecode did
// not declare a durability.
const DefaultEquipDurability = 250

// Ore blocks mine slower and resist explosions better than the defaults.
const (
	oreHardness   = 3.0
	oreResistance = 6.0
)

var toolHints = []string{"sword", "axe", "pickaxe", "shovel", "hoe"}

var armorHints = []struct {
	hint string
	slot mod.ArmorSlot
}{
	{"helmet", mod.SlotHelmet},
	{"chestplate", mod.SlotChestplate},
	{"leggings", mod.SlotLeggings},
	{"boots", mod.SlotBoots},
}

// Result is the synthesized entity set: the complete item and block maps the
// lowerer consumes. After Fill returns, the IR is read-only.
type Result struct {
	Items  map[string]*mod.Item
	Blocks map[string]*mod.Block
}

// Fill completes the extracted entity set against the texture index.
// The scanned item map is taken over and mutated; callers must not reuse it.
func Fill(items map[string]*mod.Item, idx *assets.Index) *Result {
	res := &Result{Items: items, Blocks: map[string]*mod.Block{}}

	// Every block texture induces a block.
	for _, key := range idx.BlockKeys() {
		block := mod.NewBlock(key)
		if strings.Contains(key, "ore") {
			block.Hardness = oreHardness
			block.Resistance = oreResistance
			block.IsOre = true
		}
		res.Blocks[key] = block
	}

	// Every block induces an inventory item so it is placeable.
	for _, key := range idx.BlockKeys() {
		if existing, ok := res.Items[key]; ok {
			existing.IsBlockItem = true
			continue
		}
		item := mod.NewItem(key)
		item.IsBlockItem = true
		res.Items[key] = item
	}

	// Every item texture without a scanned item still gets an item, so the
	// target can show the texture even when no class described it.
	for _, key := range idx.ItemKeys() {
		if _, ok := res.Items[key]; ok {
			continue
		}
		res.Items[key] = mod.NewItem(key)
	}

	for _, item := range res.Items {
		assignRole(item)
		assignTexture(item, idx)
	}

	return res
}

// assignRole applies the name heuristics: ids that read like tools or armor
// become tools or armor, with equipment defaults filled in.
func assignRole(item *mod.Item) {
	id := strings.ToLower(item.ID)

	if !item.Tool && !item.Armored() {
		for _, hint := range toolHints {
			if strings.Contains(id, hint) {
				item.Tool = true
				break
			}
		}
	}

	if !item.Tool && !item.Armored() {
		for _, a := range armorHints {
			if strings.Contains(id, a.hint) {
				item.ArmorSlot = a.slot
				break
			}
		}
	}

	if item.Tool || item.Armored() {
		item.StackMax = 1
		if item.Durability == 0 {
			item.Durability = DefaultEquipDurability
		}
	}
}

// assignTexture repairs texture keys that resolve to nothing. A scanned item
// whose key is in neither texture map falls back to the first item texture
// (or block texture) so the emitted atlas stays free of dangling entries.
func assignTexture(item *mod.Item, idx *assets.Index) {
	if _, ok := idx.Items[item.TextureKey]; ok {
		return
	}
	if _, ok := idx.Blocks[item.TextureKey]; ok {
		return
	}
	if keys := idx.ItemKeys(); len(keys) > 0 {
		item.TextureKey = keys[0]
		return
	}
	if keys := idx.BlockKeys(); len(keys) > 0 {
		item.TextureKey = keys[0]
	}
	// A textureless archive keeps the id as key; there is nothing to point at.
}
