//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var rosterBin = filepath.Join(binDir, binName)

// Counts writes Data/counts_from_csv from the roster CSV.
func Counts() error {
	mg.Deps(Build)
	return sh.RunV(rosterBin, "count")
}

// Compare prints the states whose report counts differ from the location totals.
func Compare() error {
	mg.Deps(Counts)
	return sh.RunV(rosterBin, "compare")
}

// Site rebuilds the JSON documents under site/assets/records.
func Site() error {
	mg.Deps(Counts)
	return sh.RunV(rosterBin, "site")
}

// Directory refreshes the local directory search index from the site data.
func Directory() error {
	mg.Deps(Site)
	return sh.RunV(rosterBin, "directory", "index")
}

// All runs every pipeline stage.
func All() {
	mg.SerialDeps(Counts, Site, Directory, Compare)
}
