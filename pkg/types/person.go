// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the roster tools:
// people records published to the site, state and city tallies, and the
// state-level reconciliation rows.
package types

// PersonRecord is one entry of people_index.json. The *Norm fields carry the
// search-friendly form of the display fields.
type PersonRecord struct {
	// ID is a slug of name-city-state, unique across one build.
	ID string `json:"id" yaml:"id"`

	Name  string `json:"name" yaml:"name"`
	State string `json:"state" yaml:"state"`
	City  string `json:"city" yaml:"city"`
	Desc  string `json:"desc" yaml:"desc"`

	NameNorm  string `json:"name_norm" yaml:"name_norm"`
	StateNorm string `json:"state_norm" yaml:"state_norm"`
	CityNorm  string `json:"city_norm" yaml:"city_norm"`
	DescNorm  string `json:"desc_norm" yaml:"desc_norm"`
}
