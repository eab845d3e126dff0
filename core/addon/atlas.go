package addon

import (
	"sort"

	"github.com/masterotaku487-arch/Transformar/core/assets"
	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// Atlas is a texture atlas manifest (item_texture.json / terrain_texture.json).
type Atlas struct {
	ResourcePackName string                `json:"resource_pack_name"`
	TextureName      string                `json:"texture_name"`
	TextureData      map[string]AtlasEntry `json:"texture_data"`
}

// AtlasEntry maps a texture key to its on-disk texture path, extensionless.
type AtlasEntry struct {
	Textures string `json:"textures"`
}

// ItemAtlas builds the item atlas: one entry per item, keyed by the item's
// texture key. Block-items without an item texture of their own point into
// textures/blocks/ instead; nothing in the atlas may dangle.
func ItemAtlas(modID string, items map[string]*mod.Item, idx *assets.Index) *Atlas {
	data := map[string]AtlasEntry{}
	for _, item := range items {
		key := item.TextureKey
		if _, ok := idx.Items[key]; ok {
			data[key] = AtlasEntry{Textures: "textures/items/" + key}
			continue
		}
		if _, ok := idx.Blocks[key]; ok {
			data[key] = AtlasEntry{Textures: "textures/blocks/" + key}
			continue
		}
		// Textureless archive; the key still must resolve for the icon.
		data[key] = AtlasEntry{Textures: "textures/items/" + key}
	}
	return &Atlas{
		ResourcePackName: modID,
		TextureName:      "atlas.items",
		TextureData:      data,
	}
}

// TerrainAtlas builds the terrain atlas over block texture keys.
func TerrainAtlas(modID string, blocks map[string]*mod.Block) *Atlas {
	data := map[string]AtlasEntry{}
	for _, block := range blocks {
		data[block.TextureKey] = AtlasEntry{Textures: "textures/blocks/" + block.TextureKey}
	}
	return &Atlas{
		ResourcePackName: modID,
		TextureName:      "atlas.terrain",
		TextureData:      data,
	}
}

// BlockRegistryEntry is one blocks.json value.
type BlockRegistryEntry struct {
	Textures string `json:"textures"`
	Sound    string `json:"sound"`
}

// BlockRegistry builds the pack-root blocks.json: one entry per block,
// keyed by full identifier.
func BlockRegistry(modID string, blocks map[string]*mod.Block) map[string]BlockRegistryEntry {
	registry := map[string]BlockRegistryEntry{}
	for _, block := range blocks {
		registry[modID+":"+block.ID] = BlockRegistryEntry{
			Textures: block.TextureKey,
			Sound:    "stone",
		}
	}
	return registry
}

// sortedItemIDs returns item ids in stable order for emission.
func sortedItemIDs(items map[string]*mod.Item) []string {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// sortedBlockIDs returns block ids in stable order for emission.
func sortedBlockIDs(blocks map[string]*mod.Block) []string {
	ids := make([]string, 0, len(blocks))
	for id := range blocks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
