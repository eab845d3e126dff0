package mod

// types.go - Consolidated IR type definitions for extracted mod entities.
// All pipeline stages import these types from core/mod rather than defining
// their own. The IR is created during extraction, mutated only by the
// synthesizer, and read-only once lowering begins.

// Rarity represents an item's display rarity.
type Rarity string

// Rarity constants.
const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

// validRarities is the set of valid rarities.
var validRarities = map[Rarity]bool{
	RarityCommon:   true,
	RarityUncommon: true,
	RarityRare:     true,
	RarityEpic:     true,
}

// IsValid returns true if the rarity is valid.
func (r Rarity) IsValid() bool {
	return validRarities[r]
}

// Bump returns the next rarity up, saturating at epic.
func (r Rarity) Bump() Rarity {
	switch r {
	case RarityCommon:
		return RarityUncommon
	case RarityUncommon:
		return RarityRare
	default:
		return RarityEpic
	}
}

// ArmorSlot represents the equipment slot an armor item occupies.
type ArmorSlot string

// Armor slot constants.
const (
	SlotNone       ArmorSlot = ""
	SlotHelmet     ArmorSlot = "helmet"
	SlotChestplate ArmorSlot = "chestplate"
	SlotLeggings   ArmorSlot = "leggings"
	SlotBoots      ArmorSlot = "boots"
)

// validArmorSlots is the set of valid non-empty armor slots.
var validArmorSlots = map[ArmorSlot]bool{
	SlotHelmet:     true,
	SlotChestplate: true,
	SlotLeggings:   true,
	SlotBoots:      true,
}

// IsValid returns true if the slot is SlotNone or a known slot.
func (s ArmorSlot) IsValid() bool {
	return s == SlotNone || validArmorSlots[s]
}

// MaxDurability is the largest durability value the target schema accepts.
const MaxDurability = 32767

// MaxStackSize is the largest stack size the target schema accepts.
const MaxStackSize = 64

// Item is the neutral representation of a mod item.
type Item struct {
	// ID is the item identifier within the mod namespace (lowercase snake).
	ID string `json:"id"`

	// TextureKey names the item-texture index entry rendering this item.
	TextureKey string `json:"texture_key"`

	// StackMax is the inventory stack limit, 1..=64.
	StackMax int `json:"stack_max"`

	// Durability is the damage capacity, 0..=32767. Zero means unbreakable
	// or not applicable.
	Durability int `json:"durability"`

	// AttackDamage is the bonus damage dealt by tools.
	AttackDamage int `json:"attack_damage,omitempty"`

	// Tool marks sword/axe/pickaxe-style equipment.
	Tool bool `json:"tool,omitempty"`

	// ArmorSlot is the equipment slot for armor, SlotNone otherwise.
	ArmorSlot ArmorSlot `json:"armor_slot,omitempty"`

	// Edible marks food items.
	Edible bool `json:"edible,omitempty"`

	// Nutrition is the hunger restored when eaten.
	Nutrition int `json:"nutrition,omitempty"`

	// Saturation is the saturation modifier applied when eaten.
	Saturation float64 `json:"saturation,omitempty"`

	// IsBlockItem marks the inventory form of a placeable block.
	IsBlockItem bool `json:"is_block_item,omitempty"`

	// Rarity is the display rarity.
	Rarity Rarity `json:"rarity,omitempty"`

	// IgnoresDamage marks fire-resistant items.
	IgnoresDamage bool `json:"ignores_damage,omitempty"`
}

// NewItem creates an item with defaults filled in.
func NewItem(id string) *Item {
	return &Item{
		ID:         id,
		TextureKey: id,
		StackMax:   MaxStackSize,
		Rarity:     RarityCommon,
	}
}

// Armored returns true when the item occupies an armor slot.
func (i *Item) Armored() bool {
	return i.ArmorSlot != SlotNone
}

// Equipment returns true when the item is a tool or armor.
func (i *Item) Equipment() bool {
	return i.Tool || i.Armored()
}

// Block is the neutral representation of a mod block.
type Block struct {
	// ID is the block identifier within the mod namespace.
	ID string `json:"id"`

	// TextureKey names the block-texture index entry for all faces.
	TextureKey string `json:"texture_key"`

	// Hardness controls mining time.
	Hardness float64 `json:"hardness"`

	// Resistance controls explosion resistance.
	Resistance float64 `json:"resistance"`

	// IsOre marks ore-style blocks (grouped under the ore menu category).
	IsOre bool `json:"is_ore,omitempty"`

	// LightEmission is the emitted light level, 0..=15.
	LightEmission int `json:"light_emission,omitempty"`
}

// NewBlock creates a block with defaults filled in.
func NewBlock(id string) *Block {
	return &Block{
		ID:         id,
		TextureKey: id,
		Hardness:   1.5,
		Resistance: 6.0,
	}
}

// TextureKind classifies a texture binary by its source path.
type TextureKind string

// Texture kind constants.
const (
	TextureItemIcon    TextureKind = "item_icon"
	TextureBlockFace   TextureKind = "block_face"
	TextureArmorLayer1 TextureKind = "armor_layer_1"
	TextureArmorLayer2 TextureKind = "armor_layer_2"
)

// TextureAsset is a texture binary keyed by its file stem.
type TextureAsset struct {
	Key   string
	Bytes []byte
	Kind  TextureKind
}

// pngMagic is the 8-byte PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// IsPNG reports whether b begins with the PNG signature.
func IsPNG(b []byte) bool {
	if len(b) < len(pngMagic) {
		return false
	}
	for i, c := range pngMagic {
		if b[i] != c {
			return false
		}
	}
	return true
}
