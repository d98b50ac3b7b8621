// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/roster/internal/datapath"
	"github.com/pdiddy/roster/internal/roster"
	"github.com/pdiddy/roster/pkg/types"
)

var countCmd = &cobra.Command{
	Use:   "count [csv_path]",
	Short: "Count roster rows by state and by state and city",
	Long: `Count reads the roster CSV (pipe- or comma-delimited, detected from the
first line), tallies rows per state and per state and city using the header's
State and City columns, and writes the structured counts report that compare
and site read. States are counted exactly as written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	in := dataFile(cfg, arg, types.DefaultRosterFile)
	if err := datapath.Require("File", in); err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = datapath.Under(cfg.DataDir, types.DefaultCountsFile)
	}

	counts, err := roster.CountFile(in)
	if err != nil {
		return fmt.Errorf("counting %s: %w", in, err)
	}
	if err := roster.WriteReportFile(out, counts); err != nil {
		return err
	}

	s := counts.Summary
	logger.Info("counts report written",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("rows", s.Rows),
		zap.Int("counted", s.Counted),
		zap.Int("malformed", s.Malformed),
		zap.Int("no_state", s.NoState),
		zap.Int("states", len(counts.States)),
	)
	if s.Skipped() > 0 {
		logger.Warn("roster rows skipped", zap.Int("skipped", s.Skipped()))
	}
	return nil
}

func init() {
	countCmd.Flags().String("output", "", "report path (default: <data-dir>/counts_from_csv)")

	rootCmd.AddCommand(countCmd)
}
