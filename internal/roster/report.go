// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Section headers of the structured counts report.
const (
	StateHeader     = "Counts by state"
	StateCityHeader = "Counts by state and city"
)

// WriteReport writes counts in the structured report format: a "Counts by
// state" section of STATE: n lines, a blank line, then a "Counts by state and
// city" section with one block per state of indented city: n lines. States and
// cities are in ascending order.
func WriteReport(w io.Writer, counts Counts) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, StateHeader)
	for _, state := range sortedKeys(counts.States) {
		fmt.Fprintf(bw, "%s: %d\n", state, counts.States[state])
	}

	fmt.Fprintf(bw, "\n%s\n", StateCityHeader)
	grouped := make(map[string]map[string]int)
	for key, n := range counts.StateCities {
		if grouped[key.State] == nil {
			grouped[key.State] = make(map[string]int)
		}
		grouped[key.State][key.City] = n
	}
	for _, state := range sortedKeys(grouped) {
		fmt.Fprintf(bw, "\n%s\n", state)
		cities := grouped[state]
		for _, city := range sortedKeys(cities) {
			fmt.Fprintf(bw, "  %s: %d\n", city, cities[city])
		}
	}

	return bw.Flush()
}

// WriteReportFile writes the report to path, creating its directory.
func WriteReportFile(path string, counts Counts) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := WriteReport(f, counts); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}

// CountFile opens path and counts it.
func CountFile(path string) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counts{}, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()
	return Count(f)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
