package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/resumerag/internal/client/migrations"
	"github.com/dmitrijs2005/resumerag/internal/filex"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, creating its directory
// when needed, and brings the schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if !filex.IsMemoryDSN(dsn) {
		abs, err := filex.EnsureParentDir(dsn)
		if err != nil {
			return nil, err
		}
		dsn = abs
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// every new connection would see a fresh, empty database
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}
