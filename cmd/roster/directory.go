// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/roster/internal/datapath"
	"github.com/pdiddy/roster/internal/directory"
	"github.com/pdiddy/roster/internal/sitedata"
	"github.com/pdiddy/roster/pkg/types"
)

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Index and search the published people records",
	Long: `Directory keeps a local SQLite index of people_index.json and searches it
the way the site's directory page does: by exact state, exact city, and
free text matched against names and descriptions.`,
}

// --- index subcommand ---

var directoryIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Load people_index.json into the directory index",
	Long: `Index reads people_index.json from the site records directory (or
--people-file) and replaces the indexed records. An unchanged file is
skipped.`,
	Args: cobra.NoArgs,
	RunE: runDirectoryIndex,
}

func runDirectoryIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	peopleArg, _ := cmd.Flags().GetString("people-file")
	path := datapath.Resolve(cfg.Root, peopleArg, datapath.Under(cfg.SiteDir, sitedata.PeopleIndexFile))
	if err := datapath.Require("People index", path); err != nil {
		return err
	}

	store, err := directory.NewStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Ingest(context.Background(), path, cmd.OutOrStdout())
	return err
}

// --- search subcommand ---

var directorySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the directory index",
	Long: `Search matches the query, normalized to lowercase letters and digits,
against names and descriptions, optionally narrowed by --state and --city.`,
	RunE: runDirectorySearch,
}

func runDirectorySearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := directory.NewStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		logger.Debug("no filters given, listing the first entries")
	}
	results, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	total, err := store.Count(context.Background())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(cmd.OutOrStdout(), results, total, jsonOutput)
}

func formatSearchOutput(w io.Writer, results []types.PersonRecord, total int, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	fmt.Fprintf(w, "%-30s  %-16s  %-20s  %s\n", "Name", "State", "City", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, p := range results {
		fmt.Fprintf(w, "%-30s  %-16s  %-20s  %s\n",
			truncate(p.Name, 30), truncate(p.State, 16), truncate(displayCity(p.City), 20), truncate(p.Desc, 26))
	}

	fmt.Fprintf(w, "\nShowing %d of %d entries\n", len(results), total)
	return nil
}

// displayCity shows a missing or literal "null" city as Unknown.
func displayCity(city string) string {
	if city == "" || strings.EqualFold(city, "null") {
		return "Unknown"
	}
	return city
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// --- export subcommand ---

var directoryExportCmd = &cobra.Command{
	Use:   "export [query]",
	Short: "Export directory records to YAML or JSON",
	Long: `Export writes the indexed people (or the subset matching the same filters
as search) to export.yaml or export.json in the index directory.`,
	RunE: runDirectoryExport,
}

func runDirectoryExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := directory.NewStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	path, err := store.Export(context.Background(), queryOptsFromFlags(cmd, args), format)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) directory.QueryOptions {
	state, _ := cmd.Flags().GetString("state")
	city, _ := cmd.Flags().GetString("city")
	limit, _ := cmd.Flags().GetInt("limit")

	return directory.QueryOptions{
		Query: strings.Join(args, " "),
		State: state,
		City:  city,
		Limit: limit,
	}
}

func init() {
	directoryCmd.PersistentFlags().String("index-dir", "", "directory index location (default: Data/index under the root)")
	_ = viper.BindPFlag("index_dir", directoryCmd.PersistentFlags().Lookup("index-dir"))

	directoryIndexCmd.Flags().String("people-file", "", "people index (default: <site-dir>/people_index.json)")

	for _, c := range []*cobra.Command{directorySearchCmd, directoryExportCmd} {
		c.Flags().String("state", "", "filter by exact state")
		c.Flags().String("city", "", "filter by exact city")
		c.Flags().Int("limit", 0, "maximum results (0 = configured default for search, all for export)")
	}
	directorySearchCmd.Flags().Bool("json", false, "output results as JSON")
	directoryExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	directoryCmd.AddCommand(directoryIndexCmd)
	directoryCmd.AddCommand(directorySearchCmd)
	directoryCmd.AddCommand(directoryExportCmd)

	rootCmd.AddCommand(directoryCmd)
}
