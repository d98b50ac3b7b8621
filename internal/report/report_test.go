// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/roster/pkg/types"
)

const sampleReport = `Counts by state
California: 10
New York: 4
NEW YORK CITY: 3
Texas: lots
no colon here

Counts by state and city

California
  Los Angeles: 6
  San Francisco: 4

New York
  Albany: 4

NEW YORK CITY
  Manhattan: 3
  Albany: 1

Oregon
  Portland: x
  Salem: 2
`

func TestParseStateTotals(t *testing.T) {
	got, err := ParseStateTotals(strings.NewReader(sampleReport), nil)
	require.NoError(t, err)

	want := map[string]int{
		"CALIFORNIA": 10,
		"NEW YORK":   7,
	}
	assert.Equal(t, want, got)
}

func TestParseStateTotalsStopsAtCitySection(t *testing.T) {
	input := "Counts by state\nMaine: 1\nCounts by state and city\nOhio: 9\n"
	got, err := ParseStateTotals(strings.NewReader(input), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"MAINE": 1}, got)
}

func TestParseStateTotalsIgnoresLinesBeforeSection(t *testing.T) {
	input := "\nGenerated report\nOhio: 9\n\nCOUNTS BY STATE\nMaine: 1\n"
	got, err := ParseStateTotals(strings.NewReader(input), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"MAINE": 1}, got)
}

func TestParseStateTotalsEmpty(t *testing.T) {
	got, err := ParseStateTotals(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseStateCities(t *testing.T) {
	got, err := ParseStateCities(strings.NewReader(sampleReport), nil)
	require.NoError(t, err)

	want := []StateCities{
		{State: "CALIFORNIA", Cities: []types.CityCount{
			{City: "Los Angeles", Count: 6},
			{City: "San Francisco", Count: 4},
		}},
		{State: "NEW YORK", Cities: []types.CityCount{
			{City: "Albany", Count: 5},
			{City: "Manhattan", Count: 3},
		}},
		{State: "OREGON", Cities: []types.CityCount{
			{City: "Salem", Count: 2},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseStateCities mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStateCitiesSkipsOrphanCities(t *testing.T) {
	input := "Counts by state and city\n  Orphan: 3\nMaine\n  Portland: 1\n"
	got, err := ParseStateCities(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MAINE", got[0].State)
	assert.Equal(t, []types.CityCount{{City: "Portland", Count: 1}}, got[0].Cities)
}

func TestSplitCount(t *testing.T) {
	tests := []struct {
		in        string
		wantLabel string
		wantN     int
		wantOK    bool
	}{
		{"Texas: 2", "Texas", 2, true},
		{"  (blank) :  7 ", "(blank)", 7, true},
		{"Texas 2", "", 0, false},
		{"Texas: two", "", 0, false},
		{"A: B: 3", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			label, n, ok := SplitCount(strings.TrimSpace(tt.in), ":")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantN, n)
		})
	}
}
