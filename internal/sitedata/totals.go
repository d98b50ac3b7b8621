// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitedata

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pdiddy/roster/internal/report"
	"github.com/pdiddy/roster/pkg/types"
)

// StateTotalsList flattens totals into a list sorted by state.
func StateTotalsList(totals map[string]int) []types.StateCount {
	list := make([]types.StateCount, 0, len(totals))
	for state, n := range totals {
		list = append(list, types.StateCount{State: state, Count: n})
	}
	slices.SortFunc(list, func(a, b types.StateCount) int {
		return strings.Compare(a.State, b.State)
	})
	return list
}

// StateCityCounts joins the per-city blocks onto the state totals. Every state
// in totals appears, with its total and possibly no cities; blocks for states
// missing from totals are dropped. Cities sort by count descending then name,
// states by name.
func StateCityCounts(blocks []report.StateCities, totals map[string]int) types.StateCityCounts {
	byState := make(map[string][]types.CityCount, len(blocks))
	for _, b := range blocks {
		byState[b.State] = b.Cities
	}

	states := make([]types.StateCityCount, 0, len(totals))
	for state, total := range totals {
		cities := slices.Clone(byState[state])
		if cities == nil {
			cities = []types.CityCount{}
		}
		slices.SortFunc(cities, func(a, b types.CityCount) int {
			return cmp.Or(cmp.Compare(b.Count, a.Count), strings.Compare(a.City, b.City))
		})
		states = append(states, types.StateCityCount{State: state, Count: total, Cities: cities})
	}
	slices.SortFunc(states, func(a, b types.StateCityCount) int {
		return strings.Compare(a.State, b.State)
	})
	return types.StateCityCounts{States: states}
}

// ReadIndustryTotals reads category|count lines, skipping anything else, and
// sorts by count descending then category.
func ReadIndustryTotals(r io.Reader) ([]types.IndustryCount, error) {
	totals := []types.IndustryCount{}

	err := report.EachLine(r, func(line string) bool {
		if category, n, ok := report.SplitCount(strings.TrimSpace(line), "|"); ok {
			totals = append(totals, types.IndustryCount{Category: category, Count: n})
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("reading industry totals: %w", err)
	}

	slices.SortFunc(totals, func(a, b types.IndustryCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), strings.Compare(a.Category, b.Category))
	})
	return totals, nil
}

// ReadIndustryTotalsFile opens path and reads its industry totals.
func ReadIndustryTotalsFile(path string) ([]types.IndustryCount, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening industry totals: %w", err)
	}
	defer f.Close()
	return ReadIndustryTotals(f)
}
