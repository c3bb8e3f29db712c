package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Record is one normalized result row. Every value is a string, number,
// bool, or nil; nothing database-native survives serialization.
type Record map[string]any

// Result holds the normalized output of one SQL query.
type Result struct {
	Columns  []string
	Records  []Record
	RowCount int
}

// QueryError carries the offending SQL text alongside the driver error so
// generated queries can be surfaced to the user for diagnostics.
type QueryError struct {
	SQL string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v (sql: %s)", e.Err, e.SQL)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

var sqlFence = regexp.MustCompile("```(?:sql)?")

// CleanSQL strips the markdown fences models sometimes wrap SQL in, and
// trims surrounding whitespace.
func CleanSQL(sqlText string) string {
	return strings.TrimSpace(sqlFence.ReplaceAllString(sqlText, ""))
}

// EnsureLimit appends a LIMIT clause with the given cap when the SQL has no
// case-insensitive "limit" substring; SQL that already mentions one passes
// through unchanged. Textual and non-parsing: a query with "limit" inside
// an identifier or string literal defeats the check. Acceptable for
// model-generated SELECTs, but not a hard guarantee.
func EnsureLimit(sqlText string, rowCap int) string {
	if strings.Contains(strings.ToUpper(sqlText), "LIMIT") {
		return sqlText
	}
	return strings.TrimRight(strings.TrimSpace(sqlText), ";") + fmt.Sprintf(" LIMIT %d", rowCap)
}

// Query executes a single SQL statement with the row cap enforced and
// returns normalized records. Every statement routed here has gone through
// EnsureLimit before touching the database.
func (s *Store) Query(ctx context.Context, sqlText string, rowCap int) (*Result, error) {
	capped := EnsureLimit(sqlText, rowCap)

	rows, err := s.db.QueryContext(ctx, capped)
	if err != nil {
		return nil, &QueryError{SQL: capped, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{SQL: capped, Err: err}
	}

	var records []Record
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{SQL: capped, Err: err}
		}

		record := make(Record, len(cols))
		for i, col := range cols {
			record[col] = normalizeValue(vals[i])
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{SQL: capped, Err: err}
	}

	return &Result{
		Columns:  cols,
		Records:  records,
		RowCount: len(records),
	}, nil
}
