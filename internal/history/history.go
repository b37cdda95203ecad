// Package history provides optional PostgreSQL persistence of generated
// letters for auditing. The core never depends on it; surfaces record an
// entry after a successful generation when a store is configured.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Entry is one generated-letter audit row.
type Entry struct {
	ID           uuid.UUID
	EmployeeName string
	TemplateKey  string
	Filename     string
	CreatedAt    time.Time
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the audit table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS generated_letters (
			id UUID PRIMARY KEY,
			employee_name TEXT NOT NULL,
			template_key TEXT NOT NULL,
			filename TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure history schema: %w", err)
	}
	return nil
}

// Record stores one audit row and returns its id.
func (s *Store) Record(ctx context.Context, employeeName, templateKey, filename string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO generated_letters (id, employee_name, template_key, filename)
		 VALUES ($1, $2, $3, $4)`,
		id, employeeName, templateKey, filename,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record generated letter: %w", err)
	}
	return id, nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, employee_name, template_key, filename, created_at
		 FROM generated_letters ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated letters: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.EmployeeName, &e.TemplateKey, &e.Filename, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
