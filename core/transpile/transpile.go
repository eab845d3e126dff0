// Package transpile sequences the conversion pipeline: read, index, synth,
// lower, assemble, pack. It is the only layer that formats human-readable
// log lines; everything below returns typed values.
package transpile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/masterotaku487-arch/Transformar/core/addon"
	"github.com/masterotaku487-arch/Transformar/core/assets"
	xerrors "github.com/masterotaku487-arch/Transformar/core/errors"
	"github.com/masterotaku487-arch/Transformar/core/extract"
	"github.com/masterotaku487-arch/Transformar/core/modid"
	"github.com/masterotaku487-arch/Transformar/core/scan"
	"github.com/masterotaku487-arch/Transformar/core/synth"
	"github.com/masterotaku487-arch/Transformar/internal/logging"
)

// Stats aggregates the per-invocation counters.
type Stats struct {
	ItemsProcessed   int `json:"items_processed"`
	BlocksProcessed  int `json:"blocks_processed"`
	RecipesConverted int `json:"recipes_converted"`
	AssetsExtracted  int `json:"assets_extracted"`
	Errors           int `json:"errors"`
}

// Result describes a completed conversion.
type Result struct {
	ModID             string        `json:"mod_id"`
	OutputArchivePath string        `json:"output_archive_path"`
	ArchiveDigest     string        `json:"archive_digest"`
	ArchiveSize       int64         `json:"archive_size"`
	Stats             Stats         `json:"stats"`
	Duration          time.Duration `json:"duration"`
}

// Options tune one invocation.
type Options struct {
	// ScanStore is an optional persistent classfile scan cache.
	ScanStore scan.Store
}

// Run converts the mod archive at inputPath into an add-on under outputDir.
// The caller owns outputDir exclusively for the duration of the call.
func Run(ctx context.Context, inputPath, outputDir string) (*Result, error) {
	return RunWithOptions(ctx, inputPath, outputDir, Options{})
}

// RunWithOptions is Run with explicit options.
func RunWithOptions(ctx context.Context, inputPath, outputDir string, opts Options) (*Result, error) {
	started := time.Now()

	scanner := scan.NewScanner()
	if opts.ScanStore != nil {
		scanner.SetStore(opts.ScanStore)
	}

	// Read: walk the archive, scan classfiles, parse recipes.
	readStart := time.Now()
	ex, err := extract.FromArchive(inputPath, scanner)
	if err != nil {
		return nil, xerrors.NewStageError(xerrors.StageRead, err, "cannot read input archive")
	}

	id := ex.DeclaredModID
	if id == "" {
		id = modid.Derive(inputPath)
	}
	ctx = logging.WithModID(ctx, id)
	logging.StageDone("read", time.Since(readStart),
		"mod_id", id, "classes", len(ex.Items), "recipes", len(ex.Recipes))

	// Index: blocks before items so block-items are detected.
	indexStart := time.Now()
	idx, indexErrs := assets.BuildIndex(ex.BlockTextures, ex.ItemTextures, ex.ArmorTextures)
	for _, ierr := range indexErrs {
		logging.WarnContext(ctx, "texture skipped", "error", ierr)
	}
	logging.StageDone("index", time.Since(indexStart),
		"items", len(idx.Items), "blocks", len(idx.Blocks), "armor", len(idx.Armor))

	// Synth: fill the gaps so the assembler's invariants hold.
	synthStart := time.Now()
	entities := synth.Fill(ex.Items, idx)
	logging.StageDone("synth", time.Since(synthStart),
		"items", len(entities.Items), "blocks", len(entities.Blocks))

	if len(entities.Items) == 0 && len(entities.Blocks) == 0 {
		logging.WarnContext(ctx, "archive contains no convertible content")
	}

	asm := addon.NewAssembler(id, outputDir)
	if err := asm.WriteSkeleton(); err != nil {
		return nil, xerrors.NewStageError(xerrors.StageAssemble, err, "cannot create pack folders")
	}

	// Lower: emit the typed entity documents.
	lowerStart := time.Now()
	if err := asm.WriteItems(entities.Items); err != nil {
		return nil, xerrors.NewStageError(xerrors.StageLower, err, "cannot write item documents")
	}
	if err := asm.WriteBlocks(entities.Blocks); err != nil {
		return nil, xerrors.NewStageError(xerrors.StageLower, err, "cannot write block documents")
	}
	attachables, err := asm.WriteAttachables(entities.Items)
	if err != nil {
		return nil, xerrors.NewStageError(xerrors.StageLower, err, "cannot write attachables")
	}
	converted, err := asm.WriteRecipes(ex.Recipes)
	if err != nil {
		return nil, xerrors.NewStageError(xerrors.StageLower, err, "cannot write recipes")
	}
	logging.StageDone("lower", time.Since(lowerStart),
		"attachables", attachables, "recipes_converted", converted)

	// Assemble: textures, atlases, registries, languages, manifests.
	assembleStart := time.Now()
	assetCount, err := asm.WriteTextures(idx)
	if err != nil {
		return nil, xerrors.NewStageError(xerrors.StageAssemble, err, "cannot copy textures")
	}
	if err := asm.WriteAtlases(entities.Items, entities.Blocks, idx); err != nil {
		return nil, xerrors.NewStageError(xerrors.StageAssemble, err, "cannot write atlases")
	}
	if err := asm.WritePackIcons(idx); err != nil {
		return nil, xerrors.NewStageError(xerrors.StageAssemble, err, "cannot write pack icons")
	}

	ids, err := addon.NewIdentifiers()
	if err != nil {
		return nil, xerrors.NewStageError(xerrors.StageAssemble, err, "cannot generate pack identifiers")
	}
	description := fmt.Sprintf("Converted from %s at %s",
		filepath.Base(inputPath), started.UTC().Format(time.RFC3339))
	if err := asm.WriteManifests(ids, description); err != nil {
		return nil, xerrors.NewStageError(xerrors.StageAssemble, err, "cannot write manifests")
	}
	logging.StageDone("assemble", time.Since(assembleStart), "assets", assetCount)

	// Pack: the final .mcaddon container.
	packStart := time.Now()
	archivePath, err := asm.Pack()
	if err != nil {
		return nil, xerrors.NewStageError(xerrors.StagePack, err, "cannot write addon archive")
	}
	logging.StageDone("pack", time.Since(packStart), "archive", archivePath)

	digest, size, err := digestFile(archivePath)
	if err != nil {
		return nil, xerrors.NewStageError(xerrors.StagePack, err, "cannot digest addon archive")
	}

	result := &Result{
		ModID:             id,
		OutputArchivePath: archivePath,
		ArchiveDigest:     digest,
		ArchiveSize:       size,
		Stats: Stats{
			ItemsProcessed:   len(entities.Items),
			BlocksProcessed:  len(entities.Blocks),
			RecipesConverted: converted,
			AssetsExtracted:  assetCount,
			Errors:           ex.Errors + len(indexErrs),
		},
		Duration: time.Since(started),
	}
	logging.InfoContext(ctx, "conversion done",
		"archive", result.OutputArchivePath,
		"items", result.Stats.ItemsProcessed,
		"blocks", result.Stats.BlocksProcessed,
		"recipes", result.Stats.RecipesConverted,
		"errors", result.Stats.Errors,
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}

func digestFile(path string) (string, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	return scan.Digest(data), int64(len(data)), nil
}
