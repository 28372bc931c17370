package provider

import (
	"context"
	"fmt"

	"github.com/claude/healthdash/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads provider records mirrored into a Postgres records
// table with the same layout as the SQLite snapshot.
type PostgresSource struct {
	Pool *pgxpool.Pool
}

// Compile-time check: PostgresSource satisfies Source.
var _ Source = (*PostgresSource)(nil)

// NewPostgres creates a PostgresSource with a connection pool.
func NewPostgres(ctx context.Context, dsn string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w: %v", ErrUnavailable, err)
	}
	return &PostgresSource{Pool: pool}, nil
}

// ReadRecords returns matching payloads ordered by start time.
func (s *PostgresSource) ReadRecords(ctx context.Context, req models.ReadRequest) (*models.ReadResponse, error) {
	start, end := filterBounds(req)
	rows, err := s.Pool.Query(ctx,
		`SELECT payload::text FROM records
		 WHERE record_type = $1 AND start_time < $2 AND end_time >= $3
		 ORDER BY start_time`,
		req.RecordType, end, start)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var payloads []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		payloads = append(payloads, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return collect(payloads), nil
}

// Ping checks the connection.
func (s *PostgresSource) Ping(ctx context.Context) error {
	if err := s.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("pinging database: %w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresSource) Close() {
	s.Pool.Close()
}
