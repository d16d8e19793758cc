// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casedb

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/nyappeal/pkg/types"
)

// QueryOptions holds parameters for case index queries.
type QueryOptions struct {
	// Query is an FTS5 match expression over the free-text fields.
	Query string

	// Court and County filter by exact value.
	Court  string
	County string

	// Criminal restricts results to criminal (true) or civil (false)
	// cases. Nil means both.
	Criminal *bool

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Court == "" && q.County == "" && q.Criminal == nil
}

// Case is one indexed record and the run that wrote it.
type Case struct {
	RunID     string
	IndexedAt string
	Record    types.Record
}

// Query returns cases matching opts. Full-text queries are ranked by
// relevance; structured-only queries are sorted by file name.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]Case, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
		cols   = columnList(types.Fields, "c.")
	)

	if useFTS {
		qb.WriteString(`SELECT c.run_id, c.indexed_at, ` + cols + `
			FROM cases_fts
			JOIN cases c ON c.rowid = cases_fts.rowid
			WHERE cases_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(`SELECT c.run_id, c.indexed_at, ` + cols + `
			FROM cases c
			WHERE 1=1`)
	}

	if opts.Court != "" {
		qb.WriteString(` AND c.court = ?`)
		args = append(args, opts.Court)
	}
	if opts.County != "" {
		qb.WriteString(` AND c.county = ?`)
		args = append(args, opts.County)
	}
	if opts.Criminal != nil {
		flag := "C"
		if *opts.Criminal {
			flag = "K"
		}
		qb.WriteString(` AND c.civilcriminal = ?`)
		args = append(args, flag)
	}

	if useFTS {
		qb.WriteString(` ORDER BY cases_fts.rank, c.file`)
	} else {
		qb.WriteString(` ORDER BY c.file`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying case index: %w", err)
	}
	defer rows.Close()

	var results []Case
	for rows.Next() {
		values := make([]string, len(types.Fields))
		c := Case{}
		dest := []any{&c.RunID, &c.IndexedAt}
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		c.Record = types.NewRecord()
		for i, k := range types.Fields {
			c.Record[k] = values[i]
		}
		results = append(results, c)
	}
	return results, rows.Err()
}
