package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Well-known package part paths.
const (
	ContentTypesPath = "[Content_Types].xml"
	ManifestPath     = "ppt/presentation.xml"
)

var (
	ErrCorruptArchive = errors.New("corrupt archive: not a valid ZIP container")
	ErrNoContentTypes = errors.New("[Content_Types].xml not found")
	ErrNoManifest     = errors.New("ppt/presentation.xml not found")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrNoSlides       = errors.New("presentation contains no slides")
)

// Reader provides access to the contents of a PPTX (OOXML presentation) package.
type Reader struct {
	files map[string]*zip.File
}

// NewReader opens a PPTX package from an in-memory byte buffer and
// validates its basic structure.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}

	r := &Reader{files: make(map[string]*zip.File)}

	// Build file map with normalized paths
	for _, f := range zr.File {
		r.files[normalizePath(f.Name)] = f
	}

	if !r.HasFile(ContentTypesPath) {
		return nil, ErrNoContentTypes
	}
	if !r.HasFile(ManifestPath) {
		return nil, ErrNoManifest
	}

	return r, nil
}

// Open opens a PPTX package from a file on disk.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package: %w", err)
	}
	return NewReader(data)
}

// HasFile reports whether the package contains the given entry.
func (r *Reader) HasFile(path string) bool {
	_, ok := r.files[normalizePath(path)]
	return ok
}

// ReadFile reads the contents of an entry from the package.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	path = normalizePath(path)
	f, ok := r.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %s: %w", path, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// ReadText reads an entry and returns it as a UTF-8 string.
func (r *Reader) ReadText(path string) (string, error) {
	data, err := r.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// normalizePath normalizes package entry paths (removes ./ and leading / prefixes)
func normalizePath(path string) string {
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimPrefix(path, "/")
	return path
}
