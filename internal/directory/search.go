// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/roster/internal/normalize"
	"github.com/pdiddy/roster/pkg/types"
)

// QueryOptions holds directory search parameters.
type QueryOptions struct {
	// Query is free text, normalized before matching against the name and
	// description search fields.
	Query string

	// State and City filter by exact match on the displayed values.
	State string
	City  string

	// Limit caps the result count. Zero uses the store default; negative
	// means no limit.
	Limit int
}

// IsEmpty reports whether the options select every record.
func (q QueryOptions) IsEmpty() bool {
	return normalize.Text(q.Query) == "" && q.State == "" && q.City == ""
}

// Search returns the people matching opts in roster order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]types.PersonRecord, error) {
	limit := opts.Limit
	if limit == 0 {
		limit = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT id, name, state, city, description, name_norm, state_norm, city_norm, desc_norm
		FROM people WHERE 1=1`)

	if opts.State != "" {
		qb.WriteString(` AND state = ?`)
		args = append(args, opts.State)
	}
	if opts.City != "" {
		qb.WriteString(` AND city = ?`)
		args = append(args, opts.City)
	}
	if q := normalize.Text(opts.Query); q != "" {
		qb.WriteString(` AND (instr(name_norm, ?) > 0 OR instr(desc_norm, ?) > 0)`)
		args = append(args, q, q)
	}

	qb.WriteString(` ORDER BY seq`)
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying directory: %w", err)
	}
	defer rows.Close()

	results := []types.PersonRecord{}
	for rows.Next() {
		var p types.PersonRecord
		if err := rows.Scan(
			&p.ID, &p.Name, &p.State, &p.City, &p.Desc,
			&p.NameNorm, &p.StateNorm, &p.CityNorm, &p.DescNorm,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// Count returns the number of indexed people.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM people`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting people: %w", err)
	}
	return n, nil
}
