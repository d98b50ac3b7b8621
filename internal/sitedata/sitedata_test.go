// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitedata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/roster/internal/datapath"
	"github.com/pdiddy/roster/internal/report"
	"github.com/pdiddy/roster/pkg/types"
)

// --- people index ---

func TestReadPeople(t *testing.T) {
	input := strings.Join([]string{
		"State|City|Name|Description",
		"NEW YORK | New York City | John Smith | Banker | broker",
		"",
		"Ohio|Akron|Jane Doe — Rubber goods",
		"Ohio|Akron|Jane Doe. Rubber goods.",
		"Ohio|Akron",
		"Maine|Bangor|!!!|",
	}, "\n")

	got, summary, err := ReadPeople(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, PeopleSummary{Lines: 5, Records: 4, Skipped: 1}, summary)

	want := []types.PersonRecord{
		{
			ID: "john-smith-new-york-city-new-york", Name: "John Smith", State: "NEW YORK",
			City: "New York City", Desc: "Banker|broker",
			NameNorm: "john smith", StateNorm: "new york", CityNorm: "new york city", DescNorm: "banker broker",
		},
		{
			ID: "jane-doe-akron-ohio", Name: "Jane Doe", State: "Ohio", City: "Akron", Desc: "Rubber goods",
			NameNorm: "jane doe", StateNorm: "ohio", CityNorm: "akron", DescNorm: "rubber goods",
		},
		{
			ID: "jane-doe-akron-ohio-2", Name: "Jane Doe", State: "Ohio", City: "Akron", Desc: "Rubber goods.",
			NameNorm: "jane doe", StateNorm: "ohio", CityNorm: "akron", DescNorm: "rubber goods",
		},
		{
			ID: "bangor-maine", Name: "!!!", State: "Maine", City: "Bangor",
			StateNorm: "maine", CityNorm: "bangor",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadPeople mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPeopleUniqueIDs(t *testing.T) {
	input := "header\n" +
		"Texas|Austin|A B|x\n" +
		"Texas|Austin|A B|y\n" +
		"Texas|Austin|A B 2|z\n" +
		"Texas|Austin|A B|w\n" +
		"||!|\n" +
		"||?|\n"

	got, _, err := ReadPeople(strings.NewReader(input))
	require.NoError(t, err)

	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{
		"a-b-austin-texas",
		"a-b-austin-texas-2",
		"a-b-2-austin-texas",
		"a-b-austin-texas-3",
		"entry",
		"entry-2",
	}, ids)
}

func TestIDAllocatorSkipsTakenSuffix(t *testing.T) {
	ids := newIDAllocator()
	assert.Equal(t, "a", ids.next("a"))
	assert.Equal(t, "a-2", ids.next("a-2"))
	assert.Equal(t, "a-3", ids.next("a"))
	assert.Equal(t, "a-2-2", ids.next("a-2"))
}

func TestReadPeopleHeaderOnly(t *testing.T) {
	got, _, err := ReadPeople(strings.NewReader("State|City|Name\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

// --- totals ---

func TestStateTotalsList(t *testing.T) {
	got := StateTotalsList(map[string]int{"TEXAS": 2, "ALABAMA": 1, "NEW YORK": 7})
	assert.Equal(t, []types.StateCount{
		{State: "ALABAMA", Count: 1},
		{State: "NEW YORK", Count: 7},
		{State: "TEXAS", Count: 2},
	}, got)
}

func TestStateCityCounts(t *testing.T) {
	blocks := []report.StateCities{
		{State: "TEXAS", Cities: []types.CityCount{
			{City: "Waco", Count: 1},
			{City: "Dallas", Count: 3},
			{City: "Austin", Count: 3},
		}},
		{State: "OREGON", Cities: []types.CityCount{{City: "Salem", Count: 1}}},
	}
	totals := map[string]int{"TEXAS": 7, "MAINE": 2}

	got := StateCityCounts(blocks, totals)
	want := types.StateCityCounts{States: []types.StateCityCount{
		{State: "MAINE", Count: 2, Cities: []types.CityCount{}},
		{State: "TEXAS", Count: 7, Cities: []types.CityCount{
			{City: "Austin", Count: 3},
			{City: "Dallas", Count: 3},
			{City: "Waco", Count: 1},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("StateCityCounts mismatch (-want +got):\n%s", diff)
	}

	// The parsed blocks are not reordered in place.
	assert.Equal(t, "Waco", blocks[0].Cities[0].City)
}

func TestReadIndustryTotals(t *testing.T) {
	input := "Banking|12\nMining | 4\nRailroads|12\nno delimiter\nShipping|many\nA|B|3\n\n"
	got, err := ReadIndustryTotals(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []types.IndustryCount{
		{Category: "Banking", Count: 12},
		{Category: "Railroads", Count: 12},
		{Category: "Mining", Count: 4},
	}, got)
}

func TestReadIndustryTotalsSkipsOversizedLine(t *testing.T) {
	input := "Banking|2\n" + strings.Repeat("x", 200*1024) + "\nMining|1\n"
	got, err := ReadIndustryTotals(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []types.IndustryCount{
		{Category: "Banking", Count: 2},
		{Category: "Mining", Count: 1},
	}, got)
}

func TestReadPeopleOversizedLine(t *testing.T) {
	input := "State|City|Name|Desc\nOhio|Akron|A|" + strings.Repeat("y", 2*1024*1024) + "\nMaine|Portland|B|Fish\n"
	people, summary, err := ReadPeople(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Maine", people[1].State)
	assert.Equal(t, 2, summary.Records)
}

// --- JSON output ---

func TestMarshalASCII(t *testing.T) {
	v := []map[string]string{{"name": "Café <Élan> & 😀"}}
	data, err := MarshalASCII(v)
	require.NoError(t, err)

	want := "[\n  {\n    \"name\": \"Caf\\u00e9 <\\u00c9lan> & \\ud83d\\ude00\"\n  }\n]"
	assert.Equal(t, want, string(data))

	var back []map[string]string
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, v, back)
}

func TestMarshalASCIIEmptyList(t *testing.T) {
	data, err := MarshalASCII([]types.IndustryCount{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

// --- build ---

func writeInputs(t *testing.T, dir string) Inputs {
	t.Helper()
	in := Inputs{
		PeopleFile:   filepath.Join(dir, "output_remove_est.csv"),
		CountsFile:   filepath.Join(dir, "counts_from_csv"),
		IndustryFile: filepath.Join(dir, "all_states_industry_count.csv"),
	}
	files := map[string]string{
		in.PeopleFile:   "State|City|Name|Desc\nTexas|Austin|A B|Cattle\nTexas|Dallas|C D|Oil\n",
		in.CountsFile:   "Counts by state\nTexas: 2\n\nCounts by state and city\n\nTexas\n  Austin: 1\n  Dallas: 1\n",
		in.IndustryFile: "Cattle|1\nOil|1\n",
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return in
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	in := writeInputs(t, dir)
	outDir := filepath.Join(dir, "site", "assets", "records")

	res, err := NewBuilder(nil, zap.NewNop()).Build(in, outDir)
	require.NoError(t, err)
	assert.Len(t, res.Written, 4)
	assert.Equal(t, 2, res.People.Records)
	assert.Equal(t, 1, res.States)
	assert.Equal(t, 2, res.Industries)

	data, err := os.ReadFile(filepath.Join(outDir, StateCityCountsFile))
	require.NoError(t, err)
	var doc types.StateCityCounts
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.States, 1)
	assert.Equal(t, "TEXAS", doc.States[0].State)
	assert.Equal(t, 2, doc.States[0].Count)
	assert.Equal(t, []types.CityCount{{City: "Austin", Count: 1}, {City: "Dallas", Count: 1}}, doc.States[0].Cities)

	data, err = os.ReadFile(filepath.Join(outDir, StateTotalsFile))
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"state\": \"TEXAS\",\n    \"count\": 2\n  }\n]", string(data))
}

func TestBuildMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := writeInputs(t, dir)
	require.NoError(t, os.Remove(in.IndustryFile))
	outDir := filepath.Join(dir, "records")

	_, err := NewBuilder(nil, nil).Build(in, outDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, datapath.ErrMissingFile)
	assert.Contains(t, err.Error(), "Industry file not found")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "no output directory should be created")
}
