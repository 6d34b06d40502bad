// Package output writes generated images into the output directory.
//
// Filenames are derived from the post slug and theme variant so reruns
// overwrite the same files:
//
//	<slug>-<variant>.svg    hero image
//	<slug>-<variant>.png    social card
//	trie-bg-<variant>.svg   background tile
//
// Every write reports the SHA-256 digest of what it wrote and whether the
// previous file already held identical bytes. Files are overwritten either
// way; there is no rollback across files.
package output

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/trieviz/pkg/errors"
)

// BackgroundPrefix starts every background tile filename.
const BackgroundPrefix = "trie-bg"

// HeroFilename returns the filename of a hero image.
func HeroFilename(slug, variant string) string { return slug + "-" + variant + ".svg" }

// CardFilename returns the filename of a social card.
func CardFilename(slug, variant string) string { return slug + "-" + variant + ".png" }

// BackgroundFilename returns the filename of a background tile.
func BackgroundFilename(variant string) string { return BackgroundPrefix + "-" + variant + ".svg" }

// Digest computes a SHA-256 hash of data.
// Returns the full 64-character hex string.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Result describes one written file.
type Result struct {
	Path      string
	Bytes     int
	Digest    string
	Unchanged bool // The file already held these exact bytes
}

// Writer writes files into one directory.
type Writer struct {
	dir string
}

// NewWriter returns a Writer for dir, creating it and any missing parents.
func NewWriter(dir string) (*Writer, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New(errors.ErrCodeOutputDir, "output directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputDir, err, "create %s", dir)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Path returns where name would be written.
func (w *Writer) Path(name string) string { return filepath.Join(w.dir, name) }

// Write stores data under name, replacing any existing file. Name must be
// a plain filename without directory components.
func (w *Writer) Write(name string, data []byte) (Result, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return Result{}, errors.New(errors.ErrCodeWriteFailed, "invalid filename %q", name)
	}
	path := w.Path(name)

	res := Result{Path: path, Bytes: len(data), Digest: Digest(data)}
	if prev, err := os.ReadFile(path); err == nil && bytes.Equal(prev, data) {
		res.Unchanged = true
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return res, nil
}
