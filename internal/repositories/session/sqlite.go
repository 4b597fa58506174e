package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/avasiljevs/linkstorage/internal/dbx"
	"github.com/avasiljevs/linkstorage/internal/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Save writes access token, refresh token, and the serialized user in one
// transaction, so the store never holds a partial session.
func (r *SQLiteRepository) Save(ctx context.Context, s *models.Session) error {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, KeyAccessToken, []byte(s.AccessToken)); err != nil {
			return err
		}
		if err := set(ctx, tx, KeyRefreshToken, []byte(s.RefreshToken)); err != nil {
			return err
		}
		return set(ctx, tx, KeyUser, userJSON)
	})
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Session, error) {
	access, err := get(ctx, r.db, KeyAccessToken)
	if err != nil {
		return nil, err
	}
	refresh, err := get(ctx, r.db, KeyRefreshToken)
	if err != nil {
		return nil, err
	}
	userJSON, err := get(ctx, r.db, KeyUser)
	if err != nil {
		return nil, err
	}

	if access == nil || refresh == nil || userJSON == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		return nil, fmt.Errorf("failed to decode stored user: %w", err)
	}

	return &models.Session{
		User:         user,
		AccessToken:  string(access),
		RefreshToken: string(refresh),
	}, nil
}

func (r *SQLiteRepository) SaveUser(ctx context.Context, u *models.User) error {
	userJSON, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	return set(ctx, r.db, KeyUser, userJSON)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?, ?)`,
		KeyAccessToken, KeyRefreshToken, KeyUser)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) AccessToken(ctx context.Context) (string, error) {
	value, err := get(ctx, r.db, KeyAccessToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (r *SQLiteRepository) RefreshToken(ctx context.Context) (string, error) {
	value, err := get(ctx, r.db, KeyRefreshToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}
