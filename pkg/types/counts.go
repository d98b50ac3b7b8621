// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlankCity is the label a roster row with an empty city is tallied under.
const BlankCity = "(blank)"

// StateCount is the total for one canonical state label.
type StateCount struct {
	State string `json:"state" yaml:"state"`
	Count int    `json:"count" yaml:"count"`
}

// CityCount is the total for one city within a state.
type CityCount struct {
	City  string `json:"city" yaml:"city"`
	Count int    `json:"count" yaml:"count"`
}

// StateCityCount carries a state's total and its per-city breakdown.
// Cities are ordered by count descending, then name ascending.
type StateCityCount struct {
	State  string      `json:"state" yaml:"state"`
	Count  int         `json:"count" yaml:"count"`
	Cities []CityCount `json:"cities" yaml:"cities"`
}

// StateCityCounts is the document written to state_city_counts.json.
type StateCityCounts struct {
	States []StateCityCount `json:"states" yaml:"states"`
}

// IndustryCount is the total for one industry category.
type IndustryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// ComparisonRow reconciles one state between the CSV-derived counts report and
// the location totals file. A nil side means the state is missing from that
// source; Diff is set only when both sides are present.
type ComparisonRow struct {
	State         string `json:"state" yaml:"state"`
	Counts        *int   `json:"counts" yaml:"counts"`
	LocationTotal *int   `json:"location_total" yaml:"location_total"`
	Diff          *int   `json:"diff" yaml:"diff"`
}

// Differs reports whether the two sides disagree, including one side missing.
func (r ComparisonRow) Differs() bool {
	if r.Counts == nil || r.LocationTotal == nil {
		return r.Counts != r.LocationTotal
	}
	return *r.Counts != *r.LocationTotal
}
