// Package archive provides utilities for reading mod containers and writing
// add-on archives. Mods normally ship as ZIP-layout .jar files, but
// redistributed bundles also appear as .zip, .tar.gz and .tar.xz; all four
// are read through the same visitor interface.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	xerrors "github.com/masterotaku487-arch/Transformar/core/errors"
)

// Visitor is a callback function for iterating archive entries.
// It receives the entry path (slash-separated, as stored) and a reader over
// the entry's content. Return true to stop iteration, false to continue.
type Visitor func(path string, content io.Reader) (stop bool, err error)

// Iterate opens the container at path and walks its file entries in stored
// order, calling the visitor for each. Directory entries are skipped.
// A container that cannot be opened yields an error matching
// errors.ErrArchiveMalformed; a ZIP entry that cannot be opened is still
// passed to the visitor, with a reader whose Read returns the open error.
func Iterate(path string, visitor Visitor) error {
	switch {
	case strings.HasSuffix(path, ".tar.gz"), strings.HasSuffix(path, ".tgz"),
		strings.HasSuffix(path, ".tar.xz"):
		return iterateTar(path, visitor)
	default:
		return iterateZip(path, visitor)
	}
}

func iterateZip(path string, visitor Visitor) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return &xerrors.ArchiveError{Path: path, Err: err}
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			// A single undecompressable entry is the visitor's problem,
			// not a malformed container.
			stop, verr := visitor(f.Name, failedEntryReader{err})
			if verr != nil {
				return verr
			}
			if stop {
				return nil
			}
			continue
		}
		stop, verr := visitor(f.Name, rc)
		rc.Close()
		if verr != nil {
			return verr
		}
		if stop {
			return nil
		}
	}
	return nil
}

func iterateTar(path string, visitor Visitor) error {
	f, err := os.Open(path)
	if err != nil {
		return &xerrors.ArchiveError{Path: path, Err: err}
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(path, ".tar.xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			return &xerrors.ArchiveError{Path: path, Err: fmt.Errorf("xz reader: %w", err)}
		}
		reader = xzr
	default:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return &xerrors.ArchiveError{Path: path, Err: fmt.Errorf("gzip reader: %w", err)}
		}
		defer gzr.Close()
		reader = gzr
	}

	tr := tar.NewReader(reader)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &xerrors.ArchiveError{Path: path, Err: fmt.Errorf("read header: %w", err)}
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		stop, verr := visitor(header.Name, tr)
		if verr != nil {
			return verr
		}
		if stop {
			return nil
		}
	}
}

// failedEntryReader surfaces an open failure as a read failure so visitors
// can count the entry as corrupt without special-casing.
type failedEntryReader struct {
	err error
}

func (r failedEntryReader) Read([]byte) (int, error) {
	return 0, r.err
}

// FindFile finds the first file matching the predicate and returns its content.
func FindFile(archivePath string, predicate func(name string) bool) ([]byte, string, error) {
	var content []byte
	var foundName string
	err := Iterate(archivePath, func(name string, r io.Reader) (bool, error) {
		if predicate(name) {
			var err error
			content, err = io.ReadAll(r)
			foundName = name
			return true, err
		}
		return false, nil
	})
	if err != nil {
		return nil, "", err
	}
	if content == nil {
		return nil, "", fmt.Errorf("no matching file found")
	}
	return content, foundName, nil
}
