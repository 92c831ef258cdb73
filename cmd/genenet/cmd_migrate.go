package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/persistorai/genenet/internal/config"
	"github.com/persistorai/genenet/internal/db"
	"github.com/persistorai/genenet/internal/db/migrations"
	"github.com/persistorai/genenet/internal/dbpool"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.PersistenceEnabled() {
				return errors.New("DATABASE_URL is required")
			}

			log, err := newLogger()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value(), dbpool.Options{MaxConns: 2})
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer pool.Close()

			n, err := db.RunMigrations(ctx, pool, log, migrations.FS)
			if err != nil {
				return err
			}

			fmt.Printf("applied %d migration(s), schema version %d\n", n, db.SchemaVersion())
			return nil
		},
	}
}
