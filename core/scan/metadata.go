package scan

import (
	"github.com/titanous/json5"

	"github.com/masterotaku487-arch/Transformar/core/modid"
)

// fabricMeta is the subset of fabric.mod.json the probe cares about.
type fabricMeta struct {
	ID string `json:"id"`
}

// forgeMeta is one entry of the legacy mcmod.info array.
type forgeMeta struct {
	ModID string `json:"modid"`
}

// ProbeDeclaredModID extracts the declared mod id from loader metadata
// (fabric.mod.json content or an mcmod.info array). The declared id is
// normalized through the same derivation as filenames so the namespace
// invariant holds regardless of what the mod author wrote. Returns "" when
// the metadata is malformed or declares nothing usable; the caller falls
// back to filename derivation.
func ProbeDeclaredModID(data []byte) string {
	var fm fabricMeta
	if err := json5.Unmarshal(data, &fm); err == nil && fm.ID != "" {
		return normalizeDeclared(fm.ID)
	}

	var entries []forgeMeta
	if err := json5.Unmarshal(data, &entries); err == nil && len(entries) > 0 && entries[0].ModID != "" {
		return normalizeDeclared(entries[0].ModID)
	}

	return ""
}

func normalizeDeclared(id string) string {
	derived := modid.Derive(id)
	if derived == modid.Fallback && id != modid.Fallback {
		// Nothing usable survived normalization.
		return ""
	}
	return derived
}
