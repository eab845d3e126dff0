package addon

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/masterotaku487-arch/Transformar/core/mod"
)

func testEntities(t *testing.T) (map[string]*mod.Item, map[string]*mod.Block) {
	t.Helper()
	helmet := mod.NewItem("ruby_helmet")
	helmet.ArmorSlot = mod.SlotHelmet
	helmet.StackMax = 1
	helmet.Durability = 250

	ore := mod.NewItem("ruby_ore")
	ore.IsBlockItem = true

	items := map[string]*mod.Item{
		"ruby":        mod.NewItem("ruby"),
		"ruby_helmet": helmet,
		"ruby_ore":    ore,
	}
	oreBlock := mod.NewBlock("ruby_ore")
	oreBlock.IsOre = true
	oreBlock.Hardness = 3.0
	blocks := map[string]*mod.Block{"ruby_ore": oreBlock}
	return items, blocks
}

func TestAssemblerEndToEnd(t *testing.T) {
	outDir := t.TempDir()
	a := NewAssembler("gems", outDir)
	items, blocks := testEntities(t)
	idx := testIndex(t, []string{"ruby_ore"}, []string{"ruby", "ruby_helmet"})

	if err := a.WriteSkeleton(); err != nil {
		t.Fatalf("WriteSkeleton: %v", err)
	}
	if err := a.WriteItems(items); err != nil {
		t.Fatalf("WriteItems: %v", err)
	}
	if err := a.WriteBlocks(blocks); err != nil {
		t.Fatalf("WriteBlocks: %v", err)
	}
	attachables, err := a.WriteAttachables(items)
	if err != nil {
		t.Fatalf("WriteAttachables: %v", err)
	}
	if attachables != 1 {
		t.Errorf("attachables written = %d, want 1", attachables)
	}
	recipes := []*mod.Recipe{
		{Name: "ruby", Kind: mod.RecipeShapeless,
			Ingredients: []mod.Ingredient{{Item: mod.ItemRef{Path: "ruby_ore", Count: 1}}},
			Result:      mod.ItemRef{Path: "ruby", Count: 1}},
		{Name: "big", Kind: mod.RecipeUnsupported, Reason: mod.ReasonExtremeCrafting},
	}
	converted, err := a.WriteRecipes(recipes)
	if err != nil {
		t.Fatalf("WriteRecipes: %v", err)
	}
	if converted != 1 {
		t.Errorf("recipes converted = %d, want 1", converted)
	}
	if _, err := a.WriteTextures(idx); err != nil {
		t.Fatalf("WriteTextures: %v", err)
	}
	if err := a.WriteAtlases(items, blocks, idx); err != nil {
		t.Fatalf("WriteAtlases: %v", err)
	}
	if err := a.WritePackIcons(idx); err != nil {
		t.Fatalf("WritePackIcons: %v", err)
	}
	ids := Identifiers{"bph", "bpm", "rph", "rpm"}
	if err := a.WriteManifests(ids, "converted by test"); err != nil {
		t.Fatalf("WriteManifests: %v", err)
	}

	build := a.BuildDir()
	for _, rel := range []string{
		"behavior_pack/manifest.json",
		"behavior_pack/items/ruby.json",
		"behavior_pack/items/ruby_helmet.json",
		"behavior_pack/items/ruby_ore.json",
		"behavior_pack/blocks/ruby_ore.json",
		"behavior_pack/recipes/ruby.json",
		"behavior_pack/pack_icon.png",
		"resource_pack/manifest.json",
		"resource_pack/items/ruby.json",
		"resource_pack/attachables/ruby_helmet.json",
		"resource_pack/textures/item_texture.json",
		"resource_pack/textures/terrain_texture.json",
		"resource_pack/textures/items/ruby.png",
		"resource_pack/textures/blocks/ruby_ore.png",
		"resource_pack/blocks.json",
		"resource_pack/texts/languages.json",
		"resource_pack/texts/en_US.lang",
		"resource_pack/texts/pt_BR.lang",
		"resource_pack/pack_icon.png",
	} {
		if _, err := os.Stat(filepath.Join(build, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s in staging dir: %v", rel, err)
		}
	}

	// No recipe file for the unsupported recipe.
	if _, err := os.Stat(filepath.Join(build, "behavior_pack", "recipes", "big.json")); err == nil {
		t.Error("unsupported recipe must not be written")
	}

	archivePath, err := a.Pack()
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if !strings.HasSuffix(archivePath, "gems.mcaddon") {
		t.Errorf("archive path = %q, want gems.mcaddon", archivePath)
	}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		t.Fatalf("open addon: %v", err)
	}
	defer zr.Close()
	var hasBP, hasRP bool
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "behavior_pack/") {
			hasBP = true
		}
		if strings.HasPrefix(f.Name, "resource_pack/") {
			hasRP = true
		}
	}
	if !hasBP || !hasRP {
		t.Error("addon archive must contain both pack folders at top level")
	}
}

func TestWriteManifestsRejectsCollision(t *testing.T) {
	a := NewAssembler("gems", t.TempDir())
	if err := a.WriteSkeleton(); err != nil {
		t.Fatalf("WriteSkeleton: %v", err)
	}
	err := a.WriteManifests(Identifiers{"x", "x", "y", "z"}, "d")
	if err == nil {
		t.Fatal("expected collision error")
	}
	// Nothing may be flushed on collision.
	if _, statErr := os.Stat(filepath.Join(a.BuildDir(), "behavior_pack", "manifest.json")); statErr == nil {
		t.Error("manifest flushed despite identifier collision")
	}
}

func TestAssembledManifestsCrossReference(t *testing.T) {
	a := NewAssembler("gems", t.TempDir())
	if err := a.WriteSkeleton(); err != nil {
		t.Fatalf("WriteSkeleton: %v", err)
	}
	ids, err := NewIdentifiers()
	if err != nil {
		t.Fatalf("NewIdentifiers: %v", err)
	}
	if err := a.WriteManifests(ids, "d"); err != nil {
		t.Fatalf("WriteManifests: %v", err)
	}

	readManifest := func(pack string) Manifest {
		data, err := os.ReadFile(filepath.Join(a.BuildDir(), pack, "manifest.json"))
		if err != nil {
			t.Fatalf("read %s manifest: %v", pack, err)
		}
		var m Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("decode %s manifest: %v", pack, err)
		}
		return m
	}

	bp := readManifest("behavior_pack")
	rp := readManifest("resource_pack")

	if len(bp.Dependencies) != 1 || bp.Dependencies[0].UUID != rp.Header.UUID {
		t.Error("BP's sole dependency must equal RP's header identifier")
	}
	all := map[string]bool{
		bp.Header.UUID: true, bp.Modules[0].UUID: true,
		rp.Header.UUID: true, rp.Modules[0].UUID: true,
	}
	if len(all) != 4 {
		t.Errorf("expected 4 pairwise-distinct identifiers, got %d", len(all))
	}
}
