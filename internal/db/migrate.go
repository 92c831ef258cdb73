// Package db applies the genenet schema using goose (github.com/pressly/goose/v3).
//
// Migration files live in internal/db/migrations/ and are embedded via //go:embed.
// `genenet serve` applies pending migrations on startup; `genenet migrate`
// does the same without starting the server.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/dbpool"
)

// RunMigrations applies all pending migrations from the provided filesystem
// and returns the number applied.
func RunMigrations(ctx context.Context, pool *dbpool.Pool, log *logrus.Logger, fsys fs.FS) (int, error) {
	// goose requires a *sql.DB; open one over the pool's connection string.
	sqlDB, err := sql.Open("pgx", pool.ConnString())
	if err != nil {
		return 0, fmt.Errorf("opening sql.DB for migrations: %w", err)
	}
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys)
	if err != nil {
		return 0, fmt.Errorf("creating goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("applying migrations: %w", err)
	}

	for _, r := range results {
		if r.Error != nil {
			return 0, fmt.Errorf("migration %d (%s) failed: %w", r.Source.Version, r.Source.Path, r.Error)
		}

		log.WithFields(logrus.Fields{
			"version":  r.Source.Version,
			"file":     r.Source.Path,
			"duration": r.Duration,
		}).Info("migration applied")
	}

	if len(results) == 0 {
		log.Debug("all migrations already applied")
	}

	return len(results), nil
}
