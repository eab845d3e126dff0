package lower

import (
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// Creative-menu groups for blocks.
const (
	groupOre   = "itemGroup.name.ore"
	groupStone = "itemGroup.name.stone"
)

// miningSpeedDivisor converts source-edition hardness into the target's
// seconds-to-destroy.
const miningSpeedDivisor = 1.5

// Block lowers a block to its behavior-side document.
func Block(modID string, block *mod.Block) *BlockDocument {
	group := groupStone
	if block.IsOre {
		group = groupOre
	}

	components := Components{
		"minecraft:destructible_by_mining": map[string]interface{}{
			"seconds_to_destroy": block.Hardness / miningSpeedDivisor,
		},
		"minecraft:destructible_by_explosion": map[string]interface{}{
			"explosion_resistance": block.Resistance,
		},
		"minecraft:geometry": "minecraft:geometry.full_block",
		"minecraft:material_instances": map[string]interface{}{
			"*": map[string]interface{}{
				"texture":       block.TextureKey,
				"render_method": "opaque",
			},
		},
	}

	if block.LightEmission > 0 {
		components["minecraft:light_emission"] = block.LightEmission
	}

	return &BlockDocument{
		FormatVersion: FormatVersionEntity,
		Block: BlockBody{
			Description: BlockDescription{
				Identifier: Identifier(modID, block.ID),
				MenuCategory: MenuCategory{
					Category: "construction",
					Group:    group,
				},
			},
			Components: components,
		},
	}
}
