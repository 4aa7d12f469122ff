package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

type sqliteStore struct {
	conn *sql.DB
}

// NewSQLiteStore expects the kv table created by storage.Storage.Init.
func NewSQLiteStore(conn *sql.DB) KeyValueStore {
	return &sqliteStore{
		conn: conn,
	}
}

func (that *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value string

	err := that.conn.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: key %s", apperror.ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("can't get key %s: %w", key, err)
	}

	return value, nil
}

func (that *sqliteStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := that.conn.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("can't set key %s: %w", key, err)
	}

	return nil
}

func (that *sqliteStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv WHERE key = ?`

	if _, err := that.conn.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("can't delete key %s: %w", key, err)
	}

	return nil
}
