// Package modid derives the mod namespace from an input archive filename.
//
// Mod filenames in the wild carry loader tags and game-version fragments
// ("gems-mod-forge-mc1.20.1.jar"); the namespace is what remains after
// those are stripped and the result is squeezed to lowercase alphanumerics.
package modid

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Fallback is used when nothing derivable remains of the filename.
const Fallback = "mod"

var (
	// Dotted version fragments, optionally prefixed with "mc" or "v":
	// "1.20.1", "mc1.20", "v2.3".
	reVersion = regexp.MustCompile(`(?:mc|v)?\d+(?:\.\d+)+|mc\d+`)

	// Loader tags dropped when they stand alone between separators.
	loaderTokens = map[string]bool{
		"forge":    true,
		"fabric":   true,
		"neoforge": true,
	}

	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

	// Archive extensions stripped from the filename, innermost last.
	archiveExts = map[string]bool{
		".jar":     true,
		".zip":     true,
		".mcaddon": true,
		".tar":     true,
		".gz":      true,
		".tgz":     true,
		".xz":      true,
	}
)

// Derive normalizes an archive filename into a mod namespace.
// The result always matches [a-z0-9]+ and the function is idempotent:
// Derive(Derive(x)) == Derive(x).
func Derive(filename string) string {
	name := strings.ToLower(filepath.Base(filename))
	for {
		ext := filepath.Ext(name)
		if !archiveExts[ext] {
			break
		}
		name = strings.TrimSuffix(name, ext)
	}

	// The strip passes can expose new loader tokens ("fa-bric" collapses
	// to "fabric"), so run to a fixpoint.
	for {
		next := stripOnce(name)
		if next == name {
			break
		}
		name = next
	}

	if name == "" {
		return Fallback
	}
	return name
}

func stripOnce(name string) string {
	name = reVersion.ReplaceAllString(name, "")

	tokens := reNonAlnum.Split(name, -1)
	var kept []string
	for _, tok := range tokens {
		if tok == "" || loaderTokens[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, "")
}
