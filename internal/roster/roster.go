// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster tallies a delimited roster CSV by state and by state and city,
// and writes the structured counts report the other stages read.
package roster

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/roster/pkg/types"
)

// ErrMissingColumn is returned when the header lacks a State or City column.
var ErrMissingColumn = errors.New("could not find 'State' and 'City' columns in header")

const utf8BOM = "\ufeff"

// StateCity keys the per-city tally.
type StateCity struct {
	State string
	City  string
}

// Summary reports how many data rows were read and what happened to them.
type Summary struct {
	Rows      int
	Counted   int
	Malformed int
	NoState   int
}

// Skipped returns the number of rows that did not contribute to the counts.
func (s Summary) Skipped() int {
	return s.Malformed + s.NoState
}

// Counts holds the tallies for one roster file. States are counted by their
// text as written, not canonicalized.
type Counts struct {
	States      map[string]int
	StateCities map[StateCity]int
	Summary     Summary
}

func newCounts() Counts {
	return Counts{
		States:      make(map[string]int),
		StateCities: make(map[StateCity]int),
	}
}

// DetectDelimiter returns '|' if the sample contains one, else ','.
func DetectDelimiter(sample string) rune {
	if strings.Contains(sample, "|") {
		return '|'
	}
	return ','
}

// Count reads a roster CSV with a header row and tallies rows per state and
// per (state, city). Each physical line is parsed on its own, so a stray quote
// costs only the row it appears in. Rows that cannot be parsed or are too
// short are skipped.
func Count(r io.Reader) (Counts, error) {
	counts := newCounts()
	lines := bufio.NewReader(r)

	var (
		comma  rune
		header []string
	)
	for header == nil {
		line, err := lines.ReadString('\n')
		if err != nil && err != io.EOF {
			return counts, fmt.Errorf("reading header: %w", err)
		}
		if line == "" && err == io.EOF {
			return counts, nil
		}
		line = strings.TrimPrefix(line, utf8BOM)
		comma = DetectDelimiter(line)
		row, perr := parseLine(line, comma)
		if perr != nil && perr != io.EOF {
			return counts, fmt.Errorf("reading header: %w", perr)
		}
		if row != nil {
			header = row
		} else if err == io.EOF {
			return counts, nil
		}
	}

	stateIdx := columnIndex(header, "State")
	cityIdx := columnIndex(header, "City")
	if stateIdx < 0 || cityIdx < 0 {
		return counts, ErrMissingColumn
	}

	for {
		line, err := lines.ReadString('\n')
		if line != "" {
			counts.tally(line, comma, stateIdx, cityIdx)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return counts, fmt.Errorf("reading row %d: %w", counts.Summary.Rows+1, err)
		}
	}

	return counts, nil
}

// tally parses one data line and adds it to the counts. Blank lines are not
// rows.
func (c *Counts) tally(line string, comma rune, stateIdx, cityIdx int) {
	row, err := parseLine(line, comma)
	if err == io.EOF {
		return
	}
	c.Summary.Rows++
	if err != nil || len(row) <= max(stateIdx, cityIdx) {
		c.Summary.Malformed++
		return
	}

	state := strings.TrimSpace(row[stateIdx])
	city := strings.TrimSpace(row[cityIdx])
	if state == "" {
		c.Summary.NoState++
		return
	}
	if city == "" {
		city = types.BlankCity
	}
	c.States[state]++
	c.StateCities[StateCity{State: state, City: city}]++
	c.Summary.Counted++
}

// parseLine splits one physical line. It returns io.EOF for a blank line.
func parseLine(line string, comma rune) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.Read()
}

func columnIndex(header []string, name string) int {
	target := strings.ToLower(strings.TrimSpace(name))
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) == target {
			return i
		}
	}
	return -1
}
