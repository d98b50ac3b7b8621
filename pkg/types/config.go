// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default locations, relative to the repository root.
const (
	DefaultDataDir  = "Data"
	DefaultSiteDir  = "site/assets/records"
	DefaultIndexDir = "Data/index"

	DefaultRosterFile   = "output_remove_est.csv"
	DefaultCountsFile   = "counts_from_csv"
	DefaultLocationFile = "location_counts_OCR.csv"
	DefaultIndustryFile = "all_states_industry_count.csv"
	DefaultMaxResults   = 50
)

// RosterConfig holds settings shared by every roster command. It is populated
// from roster.yaml, ROSTER_* environment variables, and persistent flags.
type RosterConfig struct {
	// Root is the repository root; relative paths in this config and relative
	// file arguments that do not exist are resolved against it.
	Root string `json:"root" yaml:"root" mapstructure:"root"`

	// DataDir contains the roster CSV, the counts report, and the totals files.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// SiteDir receives the JSON documents consumed by the static site.
	SiteDir string `json:"site_dir" yaml:"site_dir" mapstructure:"site_dir"`

	// IndexDir holds the SQLite directory index and its exports.
	IndexDir string `json:"index_dir" yaml:"index_dir" mapstructure:"index_dir"`

	// MaxResults is the default limit for directory searches.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// StateAliases extends the built-in state alias table.
	StateAliases map[string]string `json:"state_aliases,omitempty" yaml:"state_aliases,omitempty" mapstructure:"state_aliases"`
}
