//go:build mage

// Package main contains Mage build targets for roster developer tooling and
// the data pipeline.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the pipeline expects.
var projectDirs = []string{
	"Data",
	"Data/index",
	"site/assets/records",
}

// inputFiles lists the hand-maintained inputs under Data/.
var inputFiles = []string{
	"Data/output_remove_est.csv",
	"Data/location_counts_OCR.csv",
	"Data/all_states_industry_count.csv",
}

// Init creates the project directory structure for the pipeline.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "roster"
	cmdPkg  = "./cmd/roster"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check reports which pipeline inputs are missing from Data/.
func Check() error {
	missing := 0
	for _, f := range inputFiles {
		if _, err := os.Stat(f); err != nil {
			fmt.Printf("  missing %s\n", f)
			missing++
			continue
		}
		fmt.Printf("  ok      %s\n", f)
	}
	if missing > 0 {
		return fmt.Errorf("%d input file(s) missing", missing)
	}
	return nil
}

// Clean removes the binary and the generated site data.
func Clean() error {
	for _, path := range []string{binDir, "Data/counts_from_csv", "Data/index", "site/assets/records"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}
