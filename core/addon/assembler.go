package addon

import (
	"path/filepath"

	"github.com/masterotaku487-arch/Transformar/core/assets"
	xerrors "github.com/masterotaku487-arch/Transformar/core/errors"
	"github.com/masterotaku487-arch/Transformar/core/lower"
	"github.com/masterotaku487-arch/Transformar/core/mod"
	"github.com/masterotaku487-arch/Transformar/internal/archive"
	"github.com/masterotaku487-arch/Transformar/internal/fileutil"
)

// Pack folder names inside the addon archive.
const (
	BehaviorPackDir = "behavior_pack"
	ResourcePackDir = "resource_pack"
)

// Assembler stages the two packs under the output directory and packs them
// into the final archive. One assembler owns its output directory for the
// lifetime of an invocation.
type Assembler struct {
	modID    string
	outDir   string
	buildDir string
	bpDir    string
	rpDir    string
}

// NewAssembler creates an assembler staging into outputDir.
func NewAssembler(modID, outputDir string) *Assembler {
	buildDir := filepath.Join(outputDir, "addon")
	return &Assembler{
		modID:    modID,
		outDir:   outputDir,
		buildDir: buildDir,
		bpDir:    filepath.Join(buildDir, BehaviorPackDir),
		rpDir:    filepath.Join(buildDir, ResourcePackDir),
	}
}

// WriteSkeleton creates the pack folder trees.
func (a *Assembler) WriteSkeleton() error {
	dirs := []string{
		filepath.Join(a.bpDir, "items"),
		filepath.Join(a.bpDir, "blocks"),
		filepath.Join(a.bpDir, "recipes"),
		filepath.Join(a.rpDir, "items"),
		filepath.Join(a.rpDir, "attachables"),
		filepath.Join(a.rpDir, "textures", "items"),
		filepath.Join(a.rpDir, "textures", "blocks"),
		filepath.Join(a.rpDir, "textures", "models", "armor"),
		filepath.Join(a.rpDir, "texts"),
	}
	for _, dir := range dirs {
		if err := fileutil.EnsureDir(dir); err != nil {
			return xerrors.WrapOutputIO(err, dir)
		}
	}
	return nil
}

// WriteItems lowers every item into its behavior- and resource-side
// documents. Both sides always carry the same identifier.
func (a *Assembler) WriteItems(items map[string]*mod.Item) error {
	for _, id := range sortedItemIDs(items) {
		item := items[id]

		bpPath := filepath.Join(a.bpDir, "items", id+".json")
		if err := fileutil.WriteJSON(bpPath, lower.ItemBehavior(a.modID, item)); err != nil {
			return xerrors.WrapOutputIO(err, bpPath)
		}

		rpPath := filepath.Join(a.rpDir, "items", id+".json")
		if err := fileutil.WriteJSON(rpPath, lower.ItemResource(a.modID, item)); err != nil {
			return xerrors.WrapOutputIO(err, rpPath)
		}
	}
	return nil
}

// WriteBlocks lowers every block into its behavior-side document.
func (a *Assembler) WriteBlocks(blocks map[string]*mod.Block) error {
	for _, id := range sortedBlockIDs(blocks) {
		path := filepath.Join(a.bpDir, "blocks", id+".json")
		if err := fileutil.WriteJSON(path, lower.Block(a.modID, blocks[id])); err != nil {
			return xerrors.WrapOutputIO(err, path)
		}
	}
	return nil
}

// WriteAttachables emits one attachable per armored item and returns how
// many were written.
func (a *Assembler) WriteAttachables(items map[string]*mod.Item) (int, error) {
	written := 0
	for _, id := range sortedItemIDs(items) {
		doc := lower.Attachable(a.modID, items[id])
		if doc == nil {
			continue
		}
		path := filepath.Join(a.rpDir, "attachables", id+".json")
		if err := fileutil.WriteJSON(path, doc); err != nil {
			return written, xerrors.WrapOutputIO(err, path)
		}
		written++
	}
	return written, nil
}

// WriteRecipes emits supported recipes and returns how many were converted.
// Unsupported recipes are skipped silently; the parser already tagged them.
func (a *Assembler) WriteRecipes(recipes []*mod.Recipe) (int, error) {
	converted := 0
	for _, recipe := range recipes {
		doc := lower.Recipe(a.modID, recipe)
		if doc == nil {
			continue
		}
		path := filepath.Join(a.bpDir, "recipes", recipe.Name+".json")
		if err := fileutil.WriteJSON(path, doc); err != nil {
			return converted, xerrors.WrapOutputIO(err, path)
		}
		converted++
	}
	return converted, nil
}

// WriteTextures copies the indexed texture binaries into the resource pack
// and returns how many files were written.
func (a *Assembler) WriteTextures(idx *assets.Index) (int, error) {
	written := 0

	for _, key := range idx.ItemKeys() {
		path := filepath.Join(a.rpDir, "textures", "items", key+".png")
		if err := fileutil.WriteFile(path, idx.Items[key].Bytes); err != nil {
			return written, xerrors.WrapOutputIO(err, path)
		}
		written++
	}
	for _, key := range idx.BlockKeys() {
		path := filepath.Join(a.rpDir, "textures", "blocks", key+".png")
		if err := fileutil.WriteFile(path, idx.Blocks[key].Bytes); err != nil {
			return written, xerrors.WrapOutputIO(err, path)
		}
		written++
	}
	for _, key := range idx.ArmorKeys() {
		path := filepath.Join(a.rpDir, "textures", "models", "armor", key+".png")
		if err := fileutil.WriteFile(path, idx.Armor[key].Bytes); err != nil {
			return written, xerrors.WrapOutputIO(err, path)
		}
		written++
	}
	return written, nil
}

// WriteAtlases emits the item and terrain atlases, the block registry and
// the language tables.
func (a *Assembler) WriteAtlases(items map[string]*mod.Item, blocks map[string]*mod.Block, idx *assets.Index) error {
	itemAtlas := filepath.Join(a.rpDir, "textures", "item_texture.json")
	if err := fileutil.WriteJSON(itemAtlas, ItemAtlas(a.modID, items, idx)); err != nil {
		return xerrors.WrapOutputIO(err, itemAtlas)
	}

	terrainAtlas := filepath.Join(a.rpDir, "textures", "terrain_texture.json")
	if err := fileutil.WriteJSON(terrainAtlas, TerrainAtlas(a.modID, blocks)); err != nil {
		return xerrors.WrapOutputIO(err, terrainAtlas)
	}

	registry := filepath.Join(a.rpDir, "blocks.json")
	if err := fileutil.WriteJSON(registry, BlockRegistry(a.modID, blocks)); err != nil {
		return xerrors.WrapOutputIO(err, registry)
	}

	langIndex := filepath.Join(a.rpDir, "texts", "languages.json")
	if err := fileutil.WriteJSON(langIndex, Languages); err != nil {
		return xerrors.WrapOutputIO(err, langIndex)
	}
	table := LangTable(a.modID, items, blocks)
	for _, lang := range Languages {
		path := filepath.Join(a.rpDir, "texts", lang+".lang")
		if err := fileutil.WriteFile(path, []byte(table)); err != nil {
			return xerrors.WrapOutputIO(err, path)
		}
	}
	return nil
}

// WritePackIcons duplicates the first item texture into both packs as
// pack_icon.png. Archives without item textures ship no icon.
func (a *Assembler) WritePackIcons(idx *assets.Index) error {
	icon, ok := idx.FirstItemTexture()
	if !ok {
		return nil
	}
	for _, dir := range []string{a.bpDir, a.rpDir} {
		path := filepath.Join(dir, "pack_icon.png")
		if err := fileutil.WriteFile(path, icon.Bytes); err != nil {
			return xerrors.WrapOutputIO(err, path)
		}
	}
	return nil
}

// WriteManifests writes both pack manifests. The four-identifier invariant
// is asserted before anything is flushed.
func (a *Assembler) WriteManifests(ids Identifiers, description string) error {
	if !ids.Distinct() {
		return xerrors.ErrIdentifierCollision
	}

	title := TitleCase(a.modID)
	bp := BehaviorManifest(title+" BP", description, ids)
	rp := ResourceManifest(title+" RP", description, ids)

	bpPath := filepath.Join(a.bpDir, "manifest.json")
	if err := fileutil.WriteJSON(bpPath, bp); err != nil {
		return xerrors.WrapOutputIO(err, bpPath)
	}
	rpPath := filepath.Join(a.rpDir, "manifest.json")
	if err := fileutil.WriteJSON(rpPath, rp); err != nil {
		return xerrors.WrapOutputIO(err, rpPath)
	}
	return nil
}

// Pack archives the staged packs into {mod}.mcaddon under the output
// directory and returns the archive path.
func (a *Assembler) Pack() (string, error) {
	dst := filepath.Join(a.outDir, a.modID+".mcaddon")
	out, err := archive.CreateAddonArchive(a.buildDir, dst)
	if err != nil {
		return "", xerrors.WrapOutputIO(err, dst)
	}
	return out, nil
}

// BuildDir exposes the staging directory (used by tests).
func (a *Assembler) BuildDir() string {
	return a.buildDir
}
