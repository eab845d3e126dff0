package addon

import (
	"strings"

	"github.com/masterotaku487-arch/Transformar/core/mod"
)

// Languages shipped in every generated pack. Both tables carry the same
// derived names; translators can edit the tables after generation.
var Languages = []string{"en_US", "pt_BR"}

// TitleCase renders an identifier as a display name: underscores become
// spaces and each word is capitalized ("ruby_ore" reads "Ruby Ore").
func TitleCase(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// LangTable renders one .lang file: item.{mod}:{id}.name and
// tile.{mod}:{id}.name lines in stable order.
func LangTable(modID string, items map[string]*mod.Item, blocks map[string]*mod.Block) string {
	var b strings.Builder
	for _, id := range sortedItemIDs(items) {
		b.WriteString("item." + modID + ":" + id + ".name=" + TitleCase(id) + "\n")
	}
	for _, id := range sortedBlockIDs(blocks) {
		b.WriteString("tile." + modID + ":" + id + ".name=" + TitleCase(id) + "\n")
	}
	return b.String()
}
