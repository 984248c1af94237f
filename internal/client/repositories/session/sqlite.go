package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/resumerag/internal/common"
	"github.com/dmitrijs2005/resumerag/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session_values WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session value[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_values (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session value[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (string, string, error) {
	token, err := r.get(ctx, common.StorageKeyToken)
	if err != nil {
		return "", "", err
	}
	user, err := r.get(ctx, common.StorageKeyUser)
	if err != nil {
		return "", "", err
	}
	return token, user, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, token, user string) error {
	if err := r.set(ctx, common.StorageKeyToken, token); err != nil {
		return err
	}
	return r.set(ctx, common.StorageKeyUser, user)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_values WHERE key IN (?, ?)`,
		common.StorageKeyToken, common.StorageKeyUser)
	if err != nil {
		return fmt.Errorf("failed to clear session values: %w", err)
	}
	return nil
}
