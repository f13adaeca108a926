// Package store provides the PostgreSQL-backed content source: template
// files stored as JSON documents keyed by path, served through the same
// Fetcher interface as the filesystem source.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/duskhall/engine/internal/data"
	"github.com/duskhall/engine/internal/store/migrations"
)

// Store wraps a pgx connection pool for content document operations.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a Store handle.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Fetch returns the document body for path. A missing document reports as
// FileLoadError so the loader treats it like any other transport miss.
func (s *Store) Fetch(ctx context.Context, path string) ([]byte, error) {
	var body []byte
	err := s.pool.QueryRow(ctx,
		`SELECT body FROM content_documents WHERE path = $1`, path,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &data.FileLoadError{Path: path, StatusCode: 404}
	}
	if err != nil {
		return nil, &data.FileLoadError{Path: path, Err: err}
	}
	return body, nil
}

// Put upserts a content document. Used by content-publishing tooling, not
// by the load path.
func (s *Store) Put(ctx context.Context, path string, body []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO content_documents (path, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (path) DO UPDATE SET body = EXCLUDED.body, updated_at = now()
	`, path, body)
	if err != nil {
		return fmt.Errorf("storing document %s: %w", path, err)
	}
	return nil
}

// Paths lists all stored document paths in order.
func (s *Store) Paths(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT path FROM content_documents ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning document path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// RunMigrations runs goose migrations on the given DSN.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
