// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report parses the structured counts report written by the roster
// count stage. Each parser walks the file line by line with a small section
// state: before the section, inside the state totals, or inside the per-city
// detail.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/roster/internal/normalize"
	"github.com/pdiddy/roster/pkg/types"
)

const (
	stateHeader     = "counts by state"
	stateCityHeader = "counts by state and city"
)

type section int

const (
	beforeSection section = iota
	inStateTotals
	inStateCities
)

// ParseStateTotals reads the "Counts by state" section and returns counts
// keyed by canonical state label. Spellings that canonicalize to the same label
// are summed. Lines without a colon or an integer count are skipped.
func ParseStateTotals(r io.Reader, aliases normalize.StateAliases) (map[string]int, error) {
	counts := make(map[string]int)
	sec := beforeSection

	err := EachLine(r, func(line string) bool {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			return sec != inStateTotals
		}

		lower := strings.ToLower(stripped)
		if lower == stateHeader {
			sec = inStateTotals
			return true
		}
		if strings.HasPrefix(lower, stateCityHeader) {
			return false
		}
		if sec != inStateTotals {
			return true
		}

		if label, n, ok := SplitCount(stripped, ":"); ok {
			counts[aliases.Canonical(label)] += n
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("reading counts report: %w", err)
	}
	return counts, nil
}

// StateCities is one state's block from the "Counts by state and city"
// section, cities in file order.
type StateCities struct {
	State  string
	Cities []types.CityCount
}

// ParseStateCities reads the "Counts by state and city" section. A line that
// starts with a space is a city under the most recent state header; any other
// non-blank line is a state header. A state header that repeats after
// canonicalization continues the earlier block, and equal city names in it
// are summed. Blocks are returned in first-seen order.
func ParseStateCities(r io.Reader, aliases normalize.StateAliases) ([]StateCities, error) {
	var (
		blocks  []StateCities
		byState = make(map[string]int)
		current = -1
		sec     = beforeSection
	)

	err := EachLine(r, func(line string) bool {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			return true
		}
		if strings.ToLower(stripped) == stateCityHeader {
			sec = inStateCities
			return true
		}
		if sec != inStateCities {
			return true
		}

		if strings.HasPrefix(line, " ") {
			if current < 0 {
				return true
			}
			if city, n, ok := SplitCount(stripped, ":"); ok {
				blocks[current].add(city, n)
			}
			return true
		}

		label := aliases.Canonical(stripped)
		idx, seen := byState[label]
		if !seen {
			idx = len(blocks)
			byState[label] = idx
			blocks = append(blocks, StateCities{State: label, Cities: []types.CityCount{}})
		}
		current = idx
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("reading counts report: %w", err)
	}
	return blocks, nil
}

func (b *StateCities) add(city string, n int) {
	for i := range b.Cities {
		if b.Cities[i].City == city {
			b.Cities[i].Count += n
			return
		}
	}
	b.Cities = append(b.Cities, types.CityCount{City: city, Count: n})
}

// ParseStateTotalsFile opens path and parses its state totals.
func ParseStateTotalsFile(path string, aliases normalize.StateAliases) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening counts report: %w", err)
	}
	defer f.Close()
	return ParseStateTotals(f, aliases)
}

// ParseStateCitiesFile opens path and parses its per-city section.
func ParseStateCitiesFile(path string, aliases normalize.StateAliases) ([]StateCities, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening counts report: %w", err)
	}
	defer f.Close()
	return ParseStateCities(f, aliases)
}

// SplitCount splits "label<sep>count" at the first sep and parses the count.
func SplitCount(s, sep string) (string, int, bool) {
	label, raw, ok := strings.Cut(s, sep)
	if !ok {
		return "", 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(label), n, true
}
