// Package store opens the local sqlite database and wires up the client
// repositories.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/drezzle/drezzle-cli/internal/client/migrations"
	"github.com/drezzle/drezzle-cli/internal/client/repositories/savedcontents"
	"github.com/drezzle/drezzle-cli/internal/client/repositories/settings"
)

type Repositories struct {
	Settings      settings.Repository
	SavedContents savedcontents.Repository

	db *sql.DB
}

func (r *Repositories) Close() error {
	return r.db.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repositories{
		Settings:      settings.NewSQLiteRepository(db),
		SavedContents: savedcontents.NewSQLiteRepository(db),
		db:            db,
	}, nil
}

// EnsureClientID returns the stored installation id, generating and
// persisting a fresh one on first run.
func EnsureClientID(ctx context.Context, repo settings.Repository) (string, error) {
	value, err := repo.Get(ctx, settings.KeyClientID)
	if err != nil {
		return "", err
	}
	if len(value) > 0 {
		return string(value), nil
	}
	id := uuid.NewString()
	if err := repo.Set(ctx, settings.KeyClientID, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}
