// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/roster/internal/datapath"
	"github.com/pdiddy/roster/internal/normalize"
	"github.com/pdiddy/roster/pkg/types"
)

func init() {
	viper.SetDefault("data_dir", types.DefaultDataDir)
	viper.SetDefault("site_dir", types.DefaultSiteDir)
	viper.SetDefault("index_dir", types.DefaultIndexDir)
	viper.SetDefault("max_results", types.DefaultMaxResults)
}

// loadConfig reads the viper settings into a RosterConfig with Root found and
// every directory resolved against it.
func loadConfig() (types.RosterConfig, error) {
	var cfg types.RosterConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if cfg.Root == "" {
		root, err := datapath.FindRoot(".")
		if err != nil {
			return cfg, err
		}
		cfg.Root = root
	}
	if cfg.DataDir == "" {
		cfg.DataDir = types.DefaultDataDir
	}
	if cfg.SiteDir == "" {
		cfg.SiteDir = types.DefaultSiteDir
	}
	if cfg.IndexDir == "" {
		cfg.IndexDir = types.DefaultIndexDir
	}
	cfg.DataDir = datapath.Under(cfg.Root, cfg.DataDir)
	cfg.SiteDir = datapath.Under(cfg.Root, cfg.SiteDir)
	cfg.IndexDir = datapath.Under(cfg.Root, cfg.IndexDir)
	return cfg, nil
}

// stateAliases returns the default alias table extended by the config.
func stateAliases(cfg types.RosterConfig) normalize.StateAliases {
	return normalize.DefaultStateAliases().WithExtra(cfg.StateAliases)
}

// dataFile resolves a file argument against the data directory default.
func dataFile(cfg types.RosterConfig, arg, name string) string {
	return datapath.Resolve(cfg.Root, arg, datapath.Under(cfg.DataDir, name))
}
