package lower

import (
	"strings"

	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// armorGeometries maps armor slots to player armor geometry handles.
var armorGeometries = map[mod.ArmorSlot]string{
	mod.SlotHelmet:     "geometry.player.armor.helmet",
	mod.SlotChestplate: "geometry.player.armor.chestplate",
	mod.SlotLeggings:   "geometry.player.armor.leggings",
	mod.SlotBoots:      "geometry.player.armor.boots",
}

// Attachable lowers an armored item to its resource-side attachable
// document. Returns nil for items without an armor slot.
//
// The armor texture path is textures/models/armor/{material}_{layer} where
// material is the item id with the slot suffix stripped and layer is layer_2
// for leggings, layer_1 otherwise (the source edition's two-layer armor
// texture convention).
func Attachable(modID string, item *mod.Item) *AttachableDocument {
	if !item.Armored() {
		return nil
	}

	layer := "layer_1"
	if item.ArmorSlot == mod.SlotLeggings {
		layer = "layer_2"
	}

	return &AttachableDocument{
		FormatVersion: FormatVersionAttachable,
		Attachable: AttachableBody{
			Description: AttachableDescription{
				Identifier: Identifier(modID, item.ID),
				Materials: map[string]string{
					"default":   "armor",
					"enchanted": "armor_enchanted",
				},
				Textures: map[string]string{
					"default":   "textures/models/armor/" + ArmorMaterial(item) + "_" + layer,
					"enchanted": "textures/misc/enchanted_item_glint",
				},
				Geometry: map[string]string{
					"default": armorGeometries[item.ArmorSlot],
				},
				RenderControllers: []string{"controller.render.armor"},
			},
		},
	}
}

// ArmorMaterial derives the armor material name from the item id by
// stripping the slot suffix: "ruby_helmet" wears the "ruby" armor textures.
func ArmorMaterial(item *mod.Item) string {
	suffix := "_" + string(item.ArmorSlot)
	if material := strings.TrimSuffix(item.ID, suffix); material != item.ID && material != "" {
		return material
	}
	return item.ID
}
