package addon

import (
	"encoding/json"
	"regexp"
	"testing"
)

func TestNewIdentifiers(t *testing.T) {
	ids, err := NewIdentifiers()
	if err != nil {
		t.Fatalf("NewIdentifiers failed: %v", err)
	}
	if !ids.Distinct() {
		t.Error("generated identifiers not distinct")
	}

	reUUID := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	for _, id := range []string{ids.BPHeader, ids.BPModule, ids.RPHeader, ids.RPModule} {
		if !reUUID.MatchString(id) {
			t.Errorf("identifier %q is not lowercase hex-with-hyphens 8-4-4-4-12", id)
		}
	}
}

func TestIdentifiersDistinct(t *testing.T) {
	tests := []struct {
		name string
		ids  Identifiers
		want bool
	}{
		{"all distinct", Identifiers{"a", "b", "c", "d"}, true},
		{"duplicate", Identifiers{"a", "a", "c", "d"}, false},
		{"cross-pack duplicate", Identifiers{"a", "b", "a", "d"}, false},
		{"empty", Identifiers{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ids.Distinct(); got != tt.want {
				t.Errorf("Distinct() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBehaviorManifest(t *testing.T) {
	ids := Identifiers{"bph", "bpm", "rph", "rpm"}
	m := BehaviorManifest("Gems BP", "converted", ids)

	if m.FormatVersion != 2 {
		t.Errorf("FormatVersion = %d, want 2", m.FormatVersion)
	}
	if m.Header.UUID != "bph" {
		t.Errorf("header uuid = %q, want bph", m.Header.UUID)
	}
	if m.Header.Version != [3]int{1, 0, 0} {
		t.Errorf("header version = %v, want [1 0 0]", m.Header.Version)
	}
	if m.Header.MinEngineVersion != [3]int{1, 20, 80} {
		t.Errorf("min_engine_version = %v, want [1 20 80]", m.Header.MinEngineVersion)
	}
	if len(m.Modules) != 1 || m.Modules[0].Type != "data" || m.Modules[0].UUID != "bpm" {
		t.Errorf("modules = %+v, want one data module with uuid bpm", m.Modules)
	}
	if len(m.Dependencies) != 1 || m.Dependencies[0].UUID != "rph" {
		t.Errorf("dependencies = %+v, want sole dependency on rph", m.Dependencies)
	}
}

func TestResourceManifest(t *testing.T) {
	ids := Identifiers{"bph", "bpm", "rph", "rpm"}
	m := ResourceManifest("Gems RP", "converted", ids)

	if m.Header.UUID != "rph" {
		t.Errorf("header uuid = %q, want rph", m.Header.UUID)
	}
	if len(m.Modules) != 1 || m.Modules[0].Type != "resources" || m.Modules[0].UUID != "rpm" {
		t.Errorf("modules = %+v, want one resources module with uuid rpm", m.Modules)
	}
	if len(m.Dependencies) != 0 {
		t.Errorf("resource pack should have no dependencies, got %+v", m.Dependencies)
	}
}

func TestManifestJSONShape(t *testing.T) {
	ids := Identifiers{"bph", "bpm", "rph", "rpm"}
	data, err := json.Marshal(ResourceManifest("n", "d", ids))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["dependencies"]; ok {
		t.Error("empty dependencies should be omitted from JSON")
	}
	header := decoded["header"].(map[string]interface{})
	version := header["version"].([]interface{})
	if len(version) != 3 {
		t.Errorf("version = %v, want a three-element array", version)
	}
}
