// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare reconciles the CSV-derived state counts against an
// independently sourced location totals file.
package compare

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/roster/internal/normalize"
	"github.com/pdiddy/roster/internal/report"
	"github.com/pdiddy/roster/pkg/types"
)

const (
	totalCategory = "total"
	conjunction   = " AND "
)

// ReadLocationTotals reads state|category|count lines and sums the "total"
// rows per canonical state. A combined label such as "ALABAMA AND GEORGIA"
// with a count of zero records a zero for each named state instead of the
// combined label.
func ReadLocationTotals(r io.Reader, aliases normalize.StateAliases) (map[string]int, error) {
	totals := make(map[string]int)

	err := report.EachLine(r, func(line string) bool {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			return true
		}
		parts := strings.Split(stripped, "|")
		if len(parts) < 3 {
			return true
		}
		if strings.ToLower(strings.TrimSpace(parts[1])) != totalCategory {
			return true
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return true
		}

		label := aliases.Canonical(parts[0])
		if n == 0 && strings.Contains(label, conjunction) {
			for _, part := range strings.Split(label, conjunction) {
				totals[aliases.Canonical(part)] += n
			}
			return true
		}
		totals[label] += n
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("reading location totals: %w", err)
	}
	return totals, nil
}

// ReadLocationTotalsFile opens path and reads its totals.
func ReadLocationTotalsFile(path string, aliases normalize.StateAliases) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening location totals: %w", err)
	}
	defer f.Close()
	return ReadLocationTotals(f, aliases)
}

// Compare builds one row per state present in either map, in ascending state
// order. Unless showAll is set, rows whose two sides agree are dropped.
func Compare(counts, totals map[string]int, showAll bool) []types.ComparisonRow {
	seen := make(map[string]bool, len(counts)+len(totals))
	states := make([]string, 0, len(counts)+len(totals))
	for _, m := range []map[string]int{counts, totals} {
		for state := range m {
			if !seen[state] {
				seen[state] = true
				states = append(states, state)
			}
		}
	}
	sort.Strings(states)

	rows := []types.ComparisonRow{}
	for _, state := range states {
		row := types.ComparisonRow{State: state}
		if n, ok := counts[state]; ok {
			row.Counts = &n
		}
		if n, ok := totals[state]; ok {
			row.LocationTotal = &n
		}
		if row.Counts != nil && row.LocationTotal != nil {
			diff := *row.Counts - *row.LocationTotal
			row.Diff = &diff
		}
		if showAll || row.Differs() {
			rows = append(rows, row)
		}
	}
	return rows
}
