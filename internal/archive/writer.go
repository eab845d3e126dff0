package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
)

// CreateZip creates a ZIP archive from a source directory. Entry paths inside
// the archive are slash-separated and relative to srcDir. Directory entries
// are not written; the consuming runtime recreates them from file paths.
func CreateZip(srcDir, dstPath string) error {
	outFile, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer outFile.Close()

	zw := zip.NewWriter(outFile)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	err = filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(relPath))
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(w, file)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("failed to create archive: %w", err)
	}

	return zw.Close()
}

// CreateAddonArchive packs a staging directory into an .mcaddon container.
// The extension is appended when dstPath does not already carry it.
func CreateAddonArchive(srcDir, dstPath string) (string, error) {
	if filepath.Ext(dstPath) != ".mcaddon" {
		dstPath += ".mcaddon"
	}
	if err := CreateZip(srcDir, dstPath); err != nil {
		return "", err
	}
	return dstPath, nil
}
