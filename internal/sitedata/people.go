// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitedata

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/roster/internal/normalize"
	"github.com/pdiddy/roster/internal/report"
	"github.com/pdiddy/roster/pkg/types"
)

// fallbackSlug names a record whose name, city, and state slug to nothing.
const fallbackSlug = "entry"

// PeopleSummary counts the roster lines read by ReadPeople.
type PeopleSummary struct {
	Lines   int
	Records int
	Skipped int
}

// ReadPeople reads the pipe-delimited roster. The first line is a header and
// is discarded. Lines of four or more fields are state|city|name|desc, with
// any further fields rejoined into desc; three-field lines carry a combined
// name and description. Shorter lines are skipped. Records keep file order and
// get unique slug IDs, later duplicates suffixed -2, -3, and so on.
func ReadPeople(r io.Reader) ([]types.PersonRecord, PeopleSummary, error) {
	people := []types.PersonRecord{}
	var summary PeopleSummary
	ids := newIDAllocator()

	header := true
	err := report.EachLine(r, func(raw string) bool {
		if header {
			header = false
			return true
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			return true
		}
		summary.Lines++

		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		var state, city, name, desc string
		switch {
		case len(parts) >= 4:
			state, city, name = parts[0], parts[1], parts[2]
			desc = strings.TrimSpace(strings.Join(parts[3:], "|"))
		case len(parts) == 3:
			state, city = parts[0], parts[1]
			name, desc = normalize.SplitNameDesc(parts[2])
		default:
			summary.Skipped++
			return true
		}

		base := normalize.Slugify(name + "-" + city + "-" + state)
		if base == "" {
			base = fallbackSlug
		}

		people = append(people, types.PersonRecord{
			ID:        ids.next(base),
			Name:      name,
			State:     state,
			City:      city,
			Desc:      desc,
			NameNorm:  normalize.Text(name),
			StateNorm: normalize.Text(state),
			CityNorm:  normalize.Text(city),
			DescNorm:  normalize.Text(desc),
		})
		summary.Records++
		return true
	})
	if err != nil {
		return nil, summary, fmt.Errorf("reading roster: %w", err)
	}
	return people, summary, nil
}

// ReadPeopleFile opens path and reads its people records.
func ReadPeopleFile(path string) ([]types.PersonRecord, PeopleSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, PeopleSummary{}, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()
	return ReadPeople(f)
}

// idAllocator hands out unique IDs. The n-th use of a base slug gets the
// suffix -n; a suffixed ID already taken by a literal slug moves on to the
// next number.
type idAllocator struct {
	seen  map[string]int
	taken map[string]bool
}

func newIDAllocator() *idAllocator {
	return &idAllocator{seen: make(map[string]int), taken: make(map[string]bool)}
}

func (a *idAllocator) next(base string) string {
	for {
		a.seen[base]++
		id := base
		if n := a.seen[base]; n > 1 {
			id = base + "-" + strconv.Itoa(n)
		}
		if !a.taken[id] {
			a.taken[id] = true
			return id
		}
	}
}
