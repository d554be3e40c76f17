package client

import (
	"context"
	"database/sql"
	"log"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/migrations"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/repositories/state"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local storage layer built on the state database.
type Repositories struct {
	State state.Repository
	DB    *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite state database at dsn, applies migrations and
// returns the repositories bound to it. Session and poem draft live here
// under fixed keys, so both survive restarts.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		State: state.NewSQLiteRepository(db),
		DB:    db,
	}, nil
}
