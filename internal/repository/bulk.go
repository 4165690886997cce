package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dataset is one table's worth of rows ready for bulk load.
type Dataset struct {
	Table   string
	Columns []string
	Rows    [][]any
}

// BulkLoader streams datasets into Postgres with COPY, chunked so a failure
// partway through a large load reports the offending range.
type BulkLoader struct {
	pool      *pgxpool.Pool
	batchSize int
	logger    *slog.Logger
}

func NewBulkLoader(pool *pgxpool.Pool, batchSize int, logger *slog.Logger) *BulkLoader {
	if batchSize <= 0 {
		batchSize = 5000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BulkLoader{pool: pool, batchSize: batchSize, logger: logger}
}

// Load copies all rows of ds into its table.
func (l *BulkLoader) Load(ctx context.Context, ds Dataset) error {
	l.logger.Info("bulk loading", "table", ds.Table, "rows", len(ds.Rows))
	for off := 0; off < len(ds.Rows); off += l.batchSize {
		end := off + l.batchSize
		if end > len(ds.Rows) {
			end = len(ds.Rows)
		}
		n, err := l.pool.CopyFrom(ctx,
			pgx.Identifier{ds.Table},
			ds.Columns,
			pgx.CopyFromRows(ds.Rows[off:end]))
		if err != nil {
			return fmt.Errorf("copy into %s rows %d-%d: %w", ds.Table, off, end, err)
		}
		if int(n) != end-off {
			return fmt.Errorf("copy into %s: wrote %d of %d rows", ds.Table, n, end-off)
		}
	}
	return nil
}

// Truncate empties the given tables in one statement, cascading to
// dependents. Table names come from a fixed internal list, never from input.
func (l *BulkLoader) Truncate(ctx context.Context, tables ...string) error {
	l.logger.Info("truncating tables", "tables", tables)
	sql := "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE"
	if _, err := l.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("truncate %s: %w", strings.Join(tables, ", "), err)
	}
	return nil
}

// ResetSequence moves a serial sequence past the highest inserted id so
// later manual inserts do not collide.
func (l *BulkLoader) ResetSequence(ctx context.Context, sequence string, value int) error {
	if _, err := l.pool.Exec(ctx, "SELECT setval($1, $2)", sequence, value); err != nil {
		return fmt.Errorf("reset sequence %s: %w", sequence, err)
	}
	return nil
}
