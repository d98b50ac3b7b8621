// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/roster/pkg/types"
)

// NoDifferences is printed instead of an empty table.
const NoDifferences = "No differences found."

// Format selects how comparison rows are rendered.
type Format string

const (
	FormatText  Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var headers = [4]string{"STATE", "COUNTS", "LOCATION_TOTAL", "DIFF"}

// FormatTable renders rows as a column-aligned table. Widths are the larger
// of the header and the widest value, measured in terminal cells. STATE is
// left-aligned, the numeric columns right-aligned.
func FormatTable(rows []types.ComparisonRow) string {
	cells := make([][4]string, len(rows))
	widths := [4]int{}
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for r, row := range rows {
		cells[r] = [4]string{
			row.State,
			formatCount(row.Counts),
			formatCount(row.LocationTotal),
			formatDiff(row.Diff),
		}
		for i, c := range cells[r] {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatLine(headers, widths))
	for _, c := range cells {
		lines = append(lines, formatLine(c, widths))
	}
	return strings.Join(lines, "\n")
}

func formatLine(c [4]string, widths [4]int) string {
	return runewidth.FillRight(c[0], widths[0]) + "  " +
		runewidth.FillLeft(c[1], widths[1]) + "  " +
		runewidth.FillLeft(c[2], widths[2]) + "  " +
		runewidth.FillLeft(c[3], widths[3])
}

func formatCount(n *int) string {
	if n == nil {
		return "MISSING"
	}
	return strconv.Itoa(*n)
}

func formatDiff(n *int) string {
	if n == nil {
		return "NA"
	}
	return strconv.Itoa(*n)
}

// Write renders rows to w in the given format. An empty table prints
// NoDifferences; JSON and YAML always emit a (possibly empty) list.
func Write(w io.Writer, rows []types.ComparisonRow, format Format) error {
	switch format {
	case FormatText, "":
		if len(rows) == 0 {
			_, err := fmt.Fprintln(w, NoDifferences)
			return err
		}
		_, err := fmt.Fprintln(w, FormatTable(rows))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}
