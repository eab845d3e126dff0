package lower

import (
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// Creative-menu categories inferred for items.
const (
	categoryItems     = "items"
	categoryEquipment = "equipment"
)

// wearableSlots maps armor slots to the target's wearable slot names.
var wearableSlots = map[mod.ArmorSlot]string{
	mod.SlotHelmet:     "slot.armor.head",
	mod.SlotChestplate: "slot.armor.chest",
	mod.SlotLeggings:   "slot.armor.legs",
	mod.SlotBoots:      "slot.armor.feet",
}

// armorProtection is the per-slot protection default; the source bytecode
// carries no protection values the scanner could recover.
var armorProtection = map[mod.ArmorSlot]int{
	mod.SlotHelmet:     2,
	mod.SlotChestplate: 6,
	mod.SlotLeggings:   5,
	mod.SlotBoots:      2,
}

// hoverTextColors maps rarities above common to the target's hover text
// color names, mirroring the source edition's name coloring.
var hoverTextColors = map[mod.Rarity]string{
	mod.RarityUncommon: "yellow",
	mod.RarityRare:     "aqua",
	mod.RarityEpic:     "light_purple",
}

// Identifier formats the full item or block identifier.
func Identifier(modID, id string) string {
	return modID + ":" + id
}

// ItemBehavior lowers an item to its behavior-side document.
func ItemBehavior(modID string, item *mod.Item) *ItemDocument {
	category := categoryItems
	if item.Equipment() {
		category = categoryEquipment
	}

	components := Components{
		"minecraft:icon":           item.TextureKey,
		"minecraft:max_stack_size": item.StackMax,
	}

	if item.Durability > 0 {
		components["minecraft:durability"] = map[string]interface{}{
			"max_durability": clampDurability(item.Durability),
		}
	}

	if item.AttackDamage > 0 {
		components["minecraft:damage"] = item.AttackDamage
	}

	if item.Edible {
		components["minecraft:food"] = map[string]interface{}{
			"nutrition":           item.Nutrition,
			"saturation_modifier": item.Saturation,
		}
	}

	if item.Armored() {
		components["minecraft:armor"] = map[string]interface{}{
			"protection": armorProtection[item.ArmorSlot],
		}
		components["minecraft:wearable"] = map[string]interface{}{
			"slot": wearableSlots[item.ArmorSlot],
		}
		components["minecraft:render_offsets"] = "armor"
	}

	if item.IsBlockItem {
		components["minecraft:block_placer"] = map[string]interface{}{
			"block": Identifier(modID, item.ID),
		}
	}

	if item.IgnoresDamage {
		components["minecraft:ignores_damage"] = true
	}

	if color, ok := hoverTextColors[item.Rarity]; ok {
		components["minecraft:hover_text_color"] = color
	}

	return &ItemDocument{
		FormatVersion: FormatVersionEntity,
		Item: ItemBody{
			Description: ItemDescription{
				Identifier: Identifier(modID, item.ID),
				Category:   category,
			},
			Components: components,
		},
	}
}

// ItemResource lowers an item to its resource-side document: the same
// identifier, the icon, nothing else.
func ItemResource(modID string, item *mod.Item) *ItemDocument {
	return &ItemDocument{
		FormatVersion: FormatVersionEntity,
		Item: ItemBody{
			Description: ItemDescription{
				Identifier: Identifier(modID, item.ID),
			},
			Components: Components{
				"minecraft:icon": item.TextureKey,
			},
		},
	}
}

func clampDurability(d int) int {
	if d > mod.MaxDurability {
		return mod.MaxDurability
	}
	return d
}
