package store

import (
	"context"
	"fmt"

	"salesql/internal/schema"
)

type TableStats struct {
	RowCount int64 `json:"row_count"`
}

type Stats struct {
	Tables         map[string]TableStats `json:"tables"`
	DatabaseSizeMB float64               `json:"database_size_mb"`
}

// Stats reports per-table row counts and the on-disk database size. Used by
// the health, stats, and datasets endpoints.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Tables: make(map[string]TableStats, len(schema.Tables))}

	for _, table := range schema.Tables {
		var count int64
		// Table names come from the static schema list, never from input.
		q := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := s.db.QueryRowContext(ctx, q).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		stats.Tables[table] = TableStats{RowCount: count}
	}

	var sizeBytes int64
	err := s.db.QueryRowContext(ctx,
		"SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()",
	).Scan(&sizeBytes)
	if err != nil {
		return nil, fmt.Errorf("database size: %w", err)
	}
	stats.DatabaseSizeMB = float64(sizeBytes) / (1024 * 1024)

	return stats, nil
}
