package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/glossary/internal/bootstrap"
	"github.com/at-ishikawa/glossary/internal/config"
	"github.com/at-ishikawa/glossary/internal/glossary"
	"github.com/at-ishikawa/glossary/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		debugMode bool
		wantDebug bool
		wantInfo  bool
	}{
		{name: "info level", level: "info", wantInfo: true},
		{name: "debug level", level: "debug", wantDebug: true, wantInfo: true},
		{name: "warn level", level: "warn"},
		{name: "debug flag overrides the level", level: "error", debugMode: true, wantDebug: true, wantInfo: true},
		{name: "unknown level falls back to info", level: "verbose", wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := slog.Default()
			defer slog.SetDefault(original)
			debugMode = tt.debugMode
			defer func() { debugMode = false }()

			logger := setupLogger(tt.level)
			assert.Equal(t, logger, slog.Default())
			assert.Equal(t, tt.wantDebug, logger.Enabled(context.Background(), slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, logger.Enabled(context.Background(), slog.LevelInfo))
		})
	}
}

func TestOpenRepository(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		wantType any
	}{
		{name: "memory", driver: config.DriverMemory, wantType: &glossary.MemoryRepository{}},
		{name: "sqlite", driver: config.DriverSQLite, wantType: &glossary.DBRepository{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := &config.Config{
				Storage: config.StorageConfig{Driver: tt.driver},
				Database: config.DatabaseConfig{
					SQLitePath:      filepath.Join(t.TempDir(), "glossary.db"),
					ConnectAttempts: 1,
				},
			}
			app := bootstrap.New(nil)

			repo, err := openRepository(ctx, cfg, app)
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, repo)

			require.NoError(t, seed(ctx, repo, ""))
			all, err := repo.ListAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 5)

			// Seeding again leaves the store unchanged.
			require.NoError(t, seed(ctx, repo, ""))
			all, err = repo.ListAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 5)

			assert.NoError(t, app.Run(ctx, func(context.Context) error { return nil }))
		})
	}
}

func TestNewMigrateCommand(t *testing.T) {
	cmd := newMigrateCommand()

	assert.Equal(t, "migrate", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestMigrateCommand(t *testing.T) {
	tests := []struct {
		name    string
		opts    []testutil.ConfigOption
		wantErr string
	}{
		{name: "sqlite"},
		{name: "memory has no schema", opts: []testutil.ConfigOption{testutil.WithStorageDriver(config.DriverMemory)}, wantErr: `storage driver "memory" has no schema to migrate`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := slog.Default()
			defer slog.SetDefault(original)
			configFile = testutil.SetupTestConfig(t, t.TempDir(), tt.opts...)
			defer func() { configFile = "" }()

			cmd := newMigrateCommand()
			cmd.SetContext(context.Background())
			err := cmd.RunE(cmd, nil)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			// Migrating an existing schema is a no-op.
			assert.NoError(t, cmd.RunE(cmd, nil))
		})
	}
}

func TestSeedFromConfiguredSource(t *testing.T) {
	configFile = testutil.SetupTestConfig(t, t.TempDir(), testutil.WithSeedEnabled())
	defer func() { configFile = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.True(t, cfg.Seed.Enabled)

	ctx := context.Background()
	app := bootstrap.New(nil)
	repo, err := openRepository(ctx, cfg, app)
	require.NoError(t, err)
	require.NoError(t, seed(ctx, repo, cfg.Seed.Source))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	var got []string
	for _, e := range all {
		got = append(got, e.Term)
	}
	assert.Equal(t, []string{"gRPC", "REST", "GraphQL"}, got)

	assert.NoError(t, app.Run(ctx, func(context.Context) error { return nil }))
}

func TestServe_ReleasesDatabaseWhenSetupFails(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte("terms:\n  - term: Incomplete\n"), 0644))

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: 18080, MaxConcurrentRequests: 1},
		Storage: config.StorageConfig{Driver: config.DriverSQLite},
		Database: config.DatabaseConfig{
			SQLitePath:      filepath.Join(dir, "glossary.db"),
			ConnectAttempts: 1,
		},
		Seed: config.SeedConfig{Enabled: true, Source: seedPath},
	}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	app := bootstrap.New(logger)

	err := serve(context.Background(), cfg, app, logger)
	assert.ErrorContains(t, err, "loader.Load()")
	assert.Contains(t, logs.String(), "msg=released resource=database")
	assert.NotContains(t, logs.String(), "Starting server")
}
