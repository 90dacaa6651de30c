// Package sqlite provides SQLite-based storage implementations for tutorials services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragmas are applied to every connection after it is opened.
var pragmas = []string{
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// One connection serializes writers and keeps pragmas in effect.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("connect to database: %w", err)
	}

	stmts := append([]string(nil), pragmas...)
	if db.path != ":memory:" {
		stmts = append(stmts, "PRAGMA journal_mode = WAL")
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}

	db.db = conn
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			source_path TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL,
			abstract TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			html TEXT NOT NULL DEFAULT '',
			searchable_text TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			built_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS post_keywords (
			post_id TEXT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			keyword TEXT NOT NULL,
			PRIMARY KEY (post_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_post_keywords_keyword ON post_keywords(keyword);
	`

	_, err := db.db.Exec(schema)
	return err
}
