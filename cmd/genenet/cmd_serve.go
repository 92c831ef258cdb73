package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/persistorai/genenet/internal/api"
	"github.com/persistorai/genenet/internal/config"
	"github.com/persistorai/genenet/internal/db"
	"github.com/persistorai/genenet/internal/db/migrations"
	"github.com/persistorai/genenet/internal/dbpool"
	"github.com/persistorai/genenet/internal/service"
	"github.com/persistorai/genenet/internal/store"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: "Serves the run and network endpoints. With DATABASE_URL set, runs are\n" +
			"stored in PostgreSQL and pending migrations are applied on startup;\n" +
			"otherwise they are kept in memory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if flagLogLvl == "" {
				flagLogLvl = cfg.LogLevel
			}

			log, err := newLogger()
			if err != nil {
				return err
			}
			log.SetFormatter(&logrus.JSONFormatter{})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	deps := &api.RouterDeps{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	}

	var runStore service.RunStore
	if cfg.PersistenceEnabled() {
		pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value(), dbpool.Options{MaxConns: cfg.DBMaxConns})
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		if _, err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
			return err
		}

		runStore = store.NewRunStore(store.Base{Pool: pool, Log: log})
		deps.DB = pool
		log.Info("runs stored in postgres")
	} else {
		runStore = store.NewMemoryRunStore()
		log.Warn("DATABASE_URL not set, runs are kept in memory")
	}

	svc := newRunService(cfg, runStore, true, log)
	deps.Runs = svc
	deps.Networks = svc

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Run creation blocks until fetch and annotation finish.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"version": config.Version,
		}).Info("genenet listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
