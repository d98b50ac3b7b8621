// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/roster/internal/compare"
	"github.com/pdiddy/roster/internal/datapath"
	"github.com/pdiddy/roster/internal/report"
	"github.com/pdiddy/roster/pkg/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare state totals from the counts report against the location totals",
	Long: `Compare reads the "Counts by state" section of the counts report and the
"total" rows of the location totals file (state|category|count), keys both
by canonical state name, and prints the states whose counts differ.

Use --all to list every state. Missing values print as MISSING and a
difference that cannot be computed prints as NA.`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	aliases := stateAliases(cfg)

	countsArg, _ := cmd.Flags().GetString("counts-file")
	locationArg, _ := cmd.Flags().GetString("location-file")
	showAll, _ := cmd.Flags().GetBool("all")
	format, _ := cmd.Flags().GetString("format")

	countsPath := dataFile(cfg, countsArg, types.DefaultCountsFile)
	locationPath := dataFile(cfg, locationArg, types.DefaultLocationFile)
	if err := datapath.Require("Counts file", countsPath); err != nil {
		return err
	}
	if err := datapath.Require("Location file", locationPath); err != nil {
		return err
	}

	counts, err := report.ParseStateTotalsFile(countsPath, aliases)
	if err != nil {
		return err
	}
	totals, err := compare.ReadLocationTotalsFile(locationPath, aliases)
	if err != nil {
		return err
	}

	rows := compare.Compare(counts, totals, showAll)
	logger.Debug("compared state totals",
		zap.String("counts_file", countsPath),
		zap.String("location_file", locationPath),
		zap.Int("report_states", len(counts)),
		zap.Int("location_states", len(totals)),
		zap.Int("rows", len(rows)),
	)

	return compare.Write(cmd.OutOrStdout(), rows, compare.Format(format))
}

func init() {
	compareCmd.Flags().String("counts-file", "", "counts report (default: <data-dir>/counts_from_csv)")
	compareCmd.Flags().String("location-file", "", "location totals file (default: <data-dir>/location_counts_OCR.csv)")
	compareCmd.Flags().Bool("all", false, "show all states, not just differences")
	compareCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(compareCmd)
}
