// Command transformar converts a Java-edition mod archive into a
// Bedrock-edition add-on package.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alecthomas/kong"

	"github.com/masterotaku487-arch/Transformar/core/extract"
	"github.com/masterotaku487-arch/Transformar/core/modid"
	"github.com/masterotaku487-arch/Transformar/core/scan"
	"github.com/masterotaku487-arch/Transformar/core/transpile"
	"github.com/masterotaku487-arch/Transformar/internal/archive"
	"github.com/masterotaku487-arch/Transformar/internal/logging"
	"github.com/masterotaku487-arch/Transformar/internal/scancache"
)

const version = "1.0.0"

// CLI defines the command-line interface for transformar.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" enum:"text,json" default:"text"`

	Convert ConvertCmd `cmd:"" help:"Convert a mod archive into an add-on package"`
	Inspect InspectCmd `cmd:"" help:"Classify archive entries without converting"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ConvertCmd converts one mod archive.
type ConvertCmd struct {
	Input    string `arg:"" help:"Input mod archive (.jar, .zip, .tar.gz, .tar.xz)" type:"existingfile"`
	Output   string `short:"o" help:"Output directory" type:"path" default:"."`
	CacheDir string `name:"cache-dir" help:"Persistent classfile scan cache directory" type:"path"`
	JSON     bool   `help:"Print the result descriptor as JSON"`
}

// Run executes the conversion.
func (c *ConvertCmd) Run() error {
	opts := transpile.Options{}
	if c.CacheDir != "" {
		store, err := scancache.Open(c.CacheDir)
		if err != nil {
			return fmt.Errorf("open scan cache: %w", err)
		}
		defer store.Close()
		opts.ScanStore = store
	}

	result, err := transpile.RunWithOptions(context.Background(), c.Input, c.Output, opts)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(os.Stdout, result)
	}

	fmt.Printf("Converted %s\n", c.Input)
	fmt.Printf("  mod id:   %s\n", result.ModID)
	fmt.Printf("  addon:    %s (%d bytes, blake3 %s)\n",
		result.OutputArchivePath, result.ArchiveSize, result.ArchiveDigest[:16])
	fmt.Printf("  items:    %d\n", result.Stats.ItemsProcessed)
	fmt.Printf("  blocks:   %d\n", result.Stats.BlocksProcessed)
	fmt.Printf("  recipes:  %d\n", result.Stats.RecipesConverted)
	fmt.Printf("  assets:   %d\n", result.Stats.AssetsExtracted)
	if result.Stats.Errors > 0 {
		fmt.Printf("  skipped:  %d corrupt entries\n", result.Stats.Errors)
	}
	return nil
}

// InspectCmd enumerates and classifies archive entries.
type InspectCmd struct {
	Input string `arg:"" help:"Input mod archive" type:"existingfile"`
	JSON  bool   `help:"Print counts as JSON"`
}

// Run executes the inspection.
func (c *InspectCmd) Run() error {
	counts := map[string]int{}
	err := archive.Iterate(c.Input, func(path string, _ io.Reader) (bool, error) {
		counts[string(extract.Classify(path))]++
		return false, nil
	})
	if err != nil {
		return err
	}

	id := inspectModID(c.Input)

	if c.JSON {
		return printJSON(os.Stdout, struct {
			ModID  string         `json:"mod_id"`
			Counts map[string]int `json:"counts"`
		}{ModID: id, Counts: counts})
	}

	fmt.Printf("%-16s %s\n", "mod id", id)
	categories := make([]string, 0, len(counts))
	for cat := range counts {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		fmt.Printf("%-16s %d\n", cat, counts[cat])
	}
	return nil
}

// inspectModID resolves the mod id the way the pipeline would: declared
// loader metadata wins, filename derivation is the fallback.
func inspectModID(input string) string {
	if data, _, err := archive.FindFile(input, func(name string) bool {
		return name == "fabric.mod.json" || name == "mcmod.info"
	}); err == nil {
		if declared := scan.ProbeDeclaredModID(data); declared != "" {
			return declared
		}
	}
	return modid.Derive(input)
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run prints the version.
func (v *VersionCmd) Run() error {
	fmt.Printf("transformar %s\n", version)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("transformar"),
		kong.Description("Transformar - Java-edition mod to Bedrock-edition add-on transpiler"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.InitLogger(parseLevel(CLI.LogLevel), parseFormat(CLI.LogFormat))

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}
