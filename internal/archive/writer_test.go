package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateZip(t *testing.T) {
	srcDir := t.TempDir()
	subDir := filepath.Join(srcDir, "behavior_pack", "items")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(subDir, "ruby.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "top.txt"), []byte("top"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	dstPath := filepath.Join(t.TempDir(), "out.zip")
	if err := CreateZip(srcDir, dstPath); err != nil {
		t.Fatalf("CreateZip failed: %v", err)
	}

	zr, err := zip.OpenReader(dstPath)
	if err != nil {
		t.Fatalf("open result: %v", err)
	}
	defer zr.Close()

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
		if strings.Contains(f.Name, "\\") {
			t.Errorf("entry %q contains backslash, want slash-separated paths", f.Name)
		}
	}
	if !names["behavior_pack/items/ruby.json"] {
		t.Errorf("archive entries = %v, missing behavior_pack/items/ruby.json", names)
	}
	if !names["top.txt"] {
		t.Errorf("archive entries = %v, missing top.txt", names)
	}
}

func TestCreateAddonArchive(t *testing.T) {
	srcDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "f.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tests := []struct {
		name    string
		dst     string
		wantExt string
	}{
		{"appends extension", "out", ".mcaddon"},
		{"keeps extension", "out.mcaddon", ".mcaddon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := filepath.Join(t.TempDir(), tt.dst)
			got, err := CreateAddonArchive(srcDir, dst)
			if err != nil {
				t.Fatalf("CreateAddonArchive failed: %v", err)
			}
			if filepath.Ext(got) != tt.wantExt {
				t.Errorf("result path %q, want extension %q", got, tt.wantExt)
			}
			if _, err := os.Stat(got); err != nil {
				t.Errorf("result archive missing: %v", err)
			}
		})
	}
}
