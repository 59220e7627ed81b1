package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteBackend keeps the serialized history in one row of kv_store.
type SQLiteBackend struct {
	db  *sql.DB
	key string
}

func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db, key: Key}
}

func (b *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, b.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select kv_store %s: %w", b.key, err)
	}
	return []byte(value), nil
}

func (b *SQLiteBackend) Save(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, b.key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert kv_store %s: %w", b.key, err)
	}
	return nil
}

func (b *SQLiteBackend) Remove(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, b.key); err != nil {
		return fmt.Errorf("delete kv_store %s: %w", b.key, err)
	}
	return nil
}
