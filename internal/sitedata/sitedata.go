// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sitedata turns the roster and the structured counts report into the
// JSON documents the static site loads: the people index, state totals, state
// and city counts, and industry totals.
package sitedata

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/roster/internal/datapath"
	"github.com/pdiddy/roster/internal/normalize"
	"github.com/pdiddy/roster/internal/report"
)

// Output file names inside the site records directory.
const (
	PeopleIndexFile     = "people_index.json"
	StateTotalsFile     = "state_totals.json"
	StateCityCountsFile = "state_city_counts.json"
	IndustryTotalsFile  = "industry_totals.json"
)

// Inputs names the files a build reads.
type Inputs struct {
	PeopleFile   string
	CountsFile   string
	IndustryFile string
}

// Result summarizes a build.
type Result struct {
	People     PeopleSummary
	States     int
	Industries int
	Written    []string
}

// Builder runs the site data transforms.
type Builder struct {
	Aliases normalize.StateAliases
	Logger  *zap.Logger
}

// NewBuilder returns a Builder. A nil logger is replaced with a no-op one.
func NewBuilder(aliases normalize.StateAliases, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{Aliases: aliases, Logger: logger}
}

// Build checks that every input exists, then writes the four documents into
// outDir, creating it if needed. A missing input fails before anything is
// written.
func (b *Builder) Build(in Inputs, outDir string) (Result, error) {
	var res Result

	for _, f := range []struct{ label, path string }{
		{"Roster file", in.PeopleFile},
		{"Counts file", in.CountsFile},
		{"Industry file", in.IndustryFile},
	} {
		if err := datapath.Require(f.label, f.path); err != nil {
			return res, err
		}
	}

	people, summary, err := ReadPeopleFile(in.PeopleFile)
	if err != nil {
		return res, err
	}
	res.People = summary

	totals, err := report.ParseStateTotalsFile(in.CountsFile, b.Aliases)
	if err != nil {
		return res, err
	}
	blocks, err := report.ParseStateCitiesFile(in.CountsFile, b.Aliases)
	if err != nil {
		return res, err
	}
	res.States = len(totals)

	industries, err := ReadIndustryTotalsFile(in.IndustryFile)
	if err != nil {
		return res, err
	}
	res.Industries = len(industries)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("creating %s: %w", outDir, err)
	}

	docs := []struct {
		name string
		v    any
	}{
		{PeopleIndexFile, people},
		{StateTotalsFile, StateTotalsList(totals)},
		{StateCityCountsFile, StateCityCounts(blocks, totals)},
		{IndustryTotalsFile, industries},
	}
	for _, d := range docs {
		path := filepath.Join(outDir, d.name)
		if err := writeJSON(path, d.v); err != nil {
			return res, err
		}
		res.Written = append(res.Written, path)
		b.Logger.Debug("wrote site data", zap.String("path", path))
	}

	b.Logger.Info("site data built",
		zap.Int("people", summary.Records),
		zap.Int("roster_lines_skipped", summary.Skipped),
		zap.Int("states", res.States),
		zap.Int("industries", res.Industries),
		zap.String("out_dir", outDir),
	)
	return res, nil
}
