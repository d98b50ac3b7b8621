// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/roster/internal/sitedata"
	"github.com/pdiddy/roster/pkg/types"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Build the JSON documents the static site loads",
	Long: `Site reads the roster, the counts report, and the industry totals and writes
people_index.json, state_totals.json, state_city_counts.json, and
industry_totals.json to the site records directory. All inputs are checked
before anything is written.`,
	Args: cobra.NoArgs,
	RunE: runSite,
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	peopleArg, _ := cmd.Flags().GetString("people-file")
	countsArg, _ := cmd.Flags().GetString("counts-file")
	industryArg, _ := cmd.Flags().GetString("industry-file")

	in := sitedata.Inputs{
		PeopleFile:   dataFile(cfg, peopleArg, types.DefaultRosterFile),
		CountsFile:   dataFile(cfg, countsArg, types.DefaultCountsFile),
		IndustryFile: dataFile(cfg, industryArg, types.DefaultIndustryFile),
	}

	builder := sitedata.NewBuilder(stateAliases(cfg), logger)
	res, err := builder.Build(in, cfg.SiteDir)
	if err != nil {
		return err
	}

	for _, path := range res.Written {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	if res.People.Skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d roster line(s) skipped\n", res.People.Skipped)
	}
	return nil
}

func init() {
	siteCmd.Flags().String("people-file", "", "roster file (default: <data-dir>/output_remove_est.csv)")
	siteCmd.Flags().String("counts-file", "", "counts report (default: <data-dir>/counts_from_csv)")
	siteCmd.Flags().String("industry-file", "", "industry totals (default: <data-dir>/all_states_industry_count.csv)")
	siteCmd.Flags().String("out-dir", "", "records directory (default: site/assets/records under the root)")

	_ = viper.BindPFlag("site_dir", siteCmd.Flags().Lookup("out-dir"))

	rootCmd.AddCommand(siteCmd)
}
