package provider

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/claude/healthdash/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteSource reads a read-only SQLite snapshot of provider records.
type SQLiteSource struct {
	db *sql.DB
}

// Compile-time check: SQLiteSource satisfies Source.
var _ Source = (*SQLiteSource)(nil)

// OpenSQLite opens the snapshot at path in read-only mode.
func OpenSQLite(path string) (*SQLiteSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w: %v", path, ErrUnavailable, err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

// ReadRecords returns matching payloads ordered by start time.
func (s *SQLiteSource) ReadRecords(ctx context.Context, req models.ReadRequest) (*models.ReadResponse, error) {
	start, end := filterBounds(req)
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM records
		 WHERE record_type = ? AND start_time < ? AND end_time >= ?
		 ORDER BY start_time`,
		req.RecordType, end, start)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var payloads []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning snapshot record: %w", err)
		}
		payloads = append(payloads, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return collect(payloads), nil
}

// Ping checks that the snapshot is readable and has a records table.
func (s *SQLiteSource) Ping(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return fmt.Errorf("snapshot not readable: %w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close closes the snapshot database.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
