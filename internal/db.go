package internal

import (
	"embed"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

//go:embed migrations
var migrationFS embed.FS

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// MustDB connects to Postgres (via the pgx stdlib driver) and runs the
// embedded migrations. The database may still be starting up, so the
// connect is retried for up to 30 seconds.
func MustDB(url string) *sqlx.DB {
	var db *sqlx.DB
	var err error

	deadline := time.Now().Add(30 * time.Second)
	for {
		db, err = sqlx.Connect("pgx", url)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatal().Err(err).Msg("failed to connect DB after retries")
		}
		time.Sleep(1 * time.Second)
	}
	db.SetMaxOpenConns(10)

	if err := runMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	return db
}

func runMigrations(db *sqlx.DB) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create database driver: %w", err)
	}
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("run up migrations: %w", err)
	}
	return nil
}
