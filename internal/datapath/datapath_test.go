// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package datapath

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Data"), 0o755))
	nested := filepath.Join(root, "Scripts", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = FindRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRootFallsBackToStart(t *testing.T) {
	// A Data directory must not exist above the temp dir for this to hold;
	// check and skip rather than fail on unusual hosts.
	start := t.TempDir()
	for dir := filepath.Dir(start); ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "Data")); err == nil {
			t.Skipf("host has a Data directory at %s", dir)
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}

	got, err := FindRoot(start)
	require.NoError(t, err)
	assert.Equal(t, start, got)
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Data"), 0o755))
	inRoot := filepath.Join(root, "Data", "counts_from_csv")
	require.NoError(t, os.WriteFile(inRoot, []byte("x"), 0o644))

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"empty uses default", "", "default-path"},
		{"relative retried under root", filepath.Join("Data", "counts_from_csv"), inRoot},
		{"absolute kept", inRoot, inRoot},
		{"missing kept as typed", "nope/missing.csv", "nope/missing.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(root, tt.arg, "default-path"))
		})
	}
}

func TestRequire(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(present, nil, 0o644))

	assert.NoError(t, Require("Counts file", present))

	missing := filepath.Join(dir, "missing")
	err := Require("Counts file", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFile)
	assert.EqualError(t, err, "Counts file not found: "+missing)

	var missingErr *MissingFileError
	require.ErrorAs(t, fmt.Errorf("loading: %w", err), &missingErr)
	assert.Equal(t, missing, missingErr.Path)
}

func TestUnder(t *testing.T) {
	assert.Equal(t, filepath.Join("/repo", "Data"), Under("/repo", "Data"))
	assert.Equal(t, "/abs/site", Under("/repo", "/abs/site"))
}
