package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/glossary/internal/bootstrap"
	"github.com/at-ishikawa/glossary/internal/config"
	"github.com/at-ishikawa/glossary/internal/database"
	"github.com/at-ishikawa/glossary/internal/glossary"
	"github.com/at-ishikawa/glossary/internal/server"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "glossary-server",
		Short:         "Glossary service HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCmd.AddCommand(newMigrateCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	logger := setupLogger(cfg.Log.Level)
	return serve(ctx, cfg, bootstrap.New(logger), logger)
}

// serve sets up the server on app and runs it until shutdown.
// Resources already registered on app are released when setup fails.
func serve(ctx context.Context, cfg *config.Config, app *bootstrap.App, logger *slog.Logger) error {
	srv, err := newServer(ctx, cfg, app, logger)
	if err != nil {
		return errors.Join(err, app.Shutdown(ctx))
	}

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("Starting server",
			"addr", srv.Addr,
			"storage", cfg.Storage.Driver,
			"max_concurrent_requests", cfg.Server.MaxConcurrentRequests,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func newServer(ctx context.Context, cfg *config.Config, app *bootstrap.App, logger *slog.Logger) (*http.Server, error) {
	repo, err := openRepository(ctx, cfg, app)
	if err != nil {
		return nil, err
	}

	if cfg.Seed.Enabled {
		if err := seed(ctx, repo, cfg.Seed.Source); err != nil {
			return nil, err
		}
	}

	handler, err := server.NewGlossaryHandler(repo, logger)
	if err != nil {
		return nil, fmt.Errorf("server.NewGlossaryHandler() > %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	h, err := server.NewHTTPHandler(cfg.Server, handler, registry, logger)
	if err != nil {
		return nil, fmt.Errorf("server.NewHTTPHandler() > %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook("http server", srv.Shutdown)
	return srv, nil
}

// openRepository returns the term store selected by storage.driver.
// SQL stores are pinged and migrated. The connection is registered on app
// before migrating, so app releases it even when migration fails.
func openRepository(ctx context.Context, cfg *config.Config, app *bootstrap.App) (glossary.Repository, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		return glossary.NewMemoryRepository(glossary.SystemClock{}), nil
	}

	repo, closeDB, err := openDBRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.AddShutdownHook("database", func(context.Context) error {
		return closeDB()
	})
	if err := repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("repo.Migrate() > %w", err)
	}
	return repo, nil
}

func openDBRepository(ctx context.Context, cfg *config.Config) (*glossary.DBRepository, func() error, error) {
	db, err := database.Open(cfg.Storage.Driver, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Ping(ctx, db, cfg.Database.ConnectAttempts); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("database.Ping() > %w", err)
	}
	return glossary.NewDBRepository(db, glossary.SystemClock{}), db.Close, nil
}

func seed(ctx context.Context, repo glossary.Repository, source string) error {
	loader := glossary.NewSeedLoader()
	defer func() {
		_ = loader.Close()
	}()

	entries, err := loader.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("loader.Load() > %w", err)
	}
	created, err := glossary.Seed(ctx, repo, entries)
	if err != nil {
		return fmt.Errorf("glossary.Seed() > %w", err)
	}
	slog.Default().Info("seeded glossary", "created", created, "skipped", len(entries)-created)
	return nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the terms table for the configured SQL storage driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			setupLogger(cfg.Log.Level)

			if cfg.Storage.Driver == config.DriverMemory {
				return fmt.Errorf("storage driver %q has no schema to migrate", cfg.Storage.Driver)
			}
			repo, closeDB, err := openDBRepository(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeDB()
			}()

			if err := repo.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("repo.Migrate() > %w", err)
			}
			slog.Default().Info("migrated", "driver", cfg.Storage.Driver)
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// setupLogger configures the default logger from the configured level; --debug wins.
func setupLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	if debugMode {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	}))
	slog.SetDefault(logger)
	return logger
}
