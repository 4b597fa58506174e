package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avasiljevs/linkstorage/internal/migrations"
	"github.com/pressly/goose/v3"
)

// Open opens (creating if needed) the local session database and applies
// the embedded migrations. The "sqlite" driver must be registered by the
// importer (blank import of modernc.org/sqlite).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating session db: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
