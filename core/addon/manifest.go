// Package addon assembles the add-on bundle: the behavior and resource pack
// folder trees, their manifests, atlases, registries, language tables, and
// the final .mcaddon archive.
package addon

import (
	"github.com/google/uuid"

	xerrors "github.com/masterotaku487-arch/Transformar/core/errors"
)

// ManifestFormatVersion versions pack manifests.
const ManifestFormatVersion = 2

// Engine version floor the generated packs declare.
var minEngineVersion = [3]int{1, 20, 80}

// packVersion is the version of every generated pack and module.
var packVersion = [3]int{1, 0, 0}

// Manifest is a pack manifest document.
type Manifest struct {
	FormatVersion int                  `json:"format_version"`
	Header        ManifestHeader       `json:"header"`
	Modules       []ManifestModule     `json:"modules"`
	Dependencies  []ManifestDependency `json:"dependencies,omitempty"`
}

// ManifestHeader identifies the pack.
type ManifestHeader struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	UUID             string `json:"uuid"`
	Version          [3]int `json:"version"`
	MinEngineVersion [3]int `json:"min_engine_version"`
}

// ManifestModule declares one module inside a pack.
type ManifestModule struct {
	Type    string `json:"type"`
	UUID    string `json:"uuid"`
	Version [3]int `json:"version"`
}

// ManifestDependency references another pack by header identifier.
type ManifestDependency struct {
	UUID    string `json:"uuid"`
	Version [3]int `json:"version"`
}

// Identifiers holds the four pack identifiers of one bundle: header and
// module identifiers for each side. They are freshly generated per
// invocation, never pooled or persisted.
type Identifiers struct {
	BPHeader string
	BPModule string
	RPHeader string
	RPModule string
}

// NewIdentifiers generates four distinct identifiers. On the (practically
// impossible) collision it regenerates once, then gives up with
// ErrIdentifierCollision.
func NewIdentifiers() (Identifiers, error) {
	for attempt := 0; attempt < 2; attempt++ {
		ids := Identifiers{
			BPHeader: uuid.NewString(),
			BPModule: uuid.NewString(),
			RPHeader: uuid.NewString(),
			RPModule: uuid.NewString(),
		}
		if ids.Distinct() {
			return ids, nil
		}
	}
	return Identifiers{}, xerrors.ErrIdentifierCollision
}

// Distinct reports whether all four identifiers are pairwise distinct.
func (ids Identifiers) Distinct() bool {
	seen := map[string]bool{}
	for _, id := range []string{ids.BPHeader, ids.BPModule, ids.RPHeader, ids.RPModule} {
		if id == "" || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// BehaviorManifest builds the behavior-pack manifest. Its sole dependency is
// the resource pack's header identifier, which binds the two packs together.
func BehaviorManifest(name, description string, ids Identifiers) *Manifest {
	return &Manifest{
		FormatVersion: ManifestFormatVersion,
		Header: ManifestHeader{
			Name:             name,
			Description:      description,
			UUID:             ids.BPHeader,
			Version:          packVersion,
			MinEngineVersion: minEngineVersion,
		},
		Modules: []ManifestModule{
			{Type: "data", UUID: ids.BPModule, Version: packVersion},
		},
		Dependencies: []ManifestDependency{
			{UUID: ids.RPHeader, Version: packVersion},
		},
	}
}

// ResourceManifest builds the resource-pack manifest.
func ResourceManifest(name, description string, ids Identifiers) *Manifest {
	return &Manifest{
		FormatVersion: ManifestFormatVersion,
		Header: ManifestHeader{
			Name:             name,
			Description:      description,
			UUID:             ids.RPHeader,
			Version:          packVersion,
			MinEngineVersion: minEngineVersion,
		},
		Modules: []ManifestModule{
			{Type: "resources", UUID: ids.RPModule, Version: packVersion},
		},
	}
}
