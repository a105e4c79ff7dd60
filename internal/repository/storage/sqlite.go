package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

const createMatchesTable = `CREATE TABLE IF NOT EXISTS matches (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL,
	winner      TEXT NOT NULL,
	moves       INTEGER NOT NULL,
	squares     TEXT NOT NULL,
	finished_at TIMESTAMP NOT NULL
)`

const createMatchesIndex = `CREATE INDEX IF NOT EXISTS matches_finished_at ON matches (finished_at)`

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// ":memory:" databases exist per connection
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	for _, query := range []string{createMatchesTable, createMatchesIndex} {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
