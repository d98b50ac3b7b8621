// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package datapath locates the repository root and resolves the input and
// output paths the roster commands default to.
package datapath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissingFile matches every *MissingFileError under errors.Is.
var ErrMissingFile = errors.New("file not found")

// MissingFileError reports a required input that does not exist.
type MissingFileError struct {
	Label string
	Path  string
}

func (e *MissingFileError) Error() string {
	return e.Label + " not found: " + e.Path
}

// Is reports whether target is ErrMissingFile.
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

// rootMarker is the directory whose presence identifies the repository root.
const rootMarker = "Data"

// FindRoot walks up from start and returns the first directory that contains
// a Data directory. If none does, start itself is returned.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	for dir := abs; ; {
		if info, err := os.Stat(filepath.Join(dir, rootMarker)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}

// Under joins rel onto root unless rel is already absolute.
func Under(root, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(root, rel)
}

// Resolve picks the path for a user-supplied file argument. An empty arg
// selects def. A relative arg that does not exist as given is retried
// relative to root; if that also does not exist, arg is returned unchanged so
// the caller reports the path the user typed.
func Resolve(root, arg, def string) string {
	if arg == "" {
		return def
	}
	if exists(arg) || filepath.IsAbs(arg) {
		return arg
	}
	if candidate := filepath.Join(root, arg); exists(candidate) {
		return candidate
	}
	return arg
}

// Require returns a *MissingFileError when path does not exist. label names
// the file in the message, e.g. "Counts file".
func Require(label, path string) error {
	if exists(path) {
		return nil
	}
	return &MissingFileError{Label: label, Path: path}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
