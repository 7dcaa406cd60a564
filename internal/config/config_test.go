package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                  8080,
			CORS:                  CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			MaxConcurrentRequests: 10,
			Metrics:               MetricsConfig{Enabled: true},
		},
		Storage: StorageConfig{Driver: DriverMemory},
		Database: DatabaseConfig{
			Host:            "localhost",
			Database:        "glossary",
			Username:        "user",
			SQLitePath:      "glossary.db",
			ConnectAttempts: 5,
		},
		Seed:   SeedConfig{Enabled: true},
		Client: ClientConfig{BaseURL: "http://localhost:8080"},
		Log:    LogConfig{Level: "info"},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte("[]\n"), 0644))

	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `server:
  port: 9090
  max_concurrent_requests: 4
  metrics:
    enabled: false
storage:
  driver: postgres
database:
  host: db.example.com
  port: 5432
  database: terms
seed:
  enabled: false
log:
  level: debug
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 9090
				cfg.Server.MaxConcurrentRequests = 4
				cfg.Server.Metrics.Enabled = false
				cfg.Storage.Driver = DriverPostgres
				cfg.Database.Host = "db.example.com"
				cfg.Database.Port = 5432
				cfg.Database.Database = "terms"
				cfg.Seed.Enabled = false
				cfg.Log.Level = "debug"
				return cfg
			},
		},
		{
			name: "postgres without a port leaves the driver default",
			configContent: `storage:
  driver: postgres
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Storage.Driver = DriverPostgres
				return cfg
			},
		},
		{
			name: "database port out of range",
			configContent: `database:
  port: 70000
`,
			wantErrorContains: []string{"invalid configuration", "port must be"},
		},
		{
			name: "explicit config file path with seed file",
			configContent: `storage:
  driver: sqlite
database:
  sqlite_path: /tmp/glossary-test.db
seed:
  source: ` + seedFile + `
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Storage.Driver = DriverSQLite
				cfg.Database.SQLitePath = "/tmp/glossary-test.db"
				cfg.Seed.Source = seedFile
				return cfg
			},
		},
		{
			name: "environment variables override",
			env: map[string]string{
				"DB_PASSWORD":       "secret",
				"GLOSSARY_BASE_URL": "http://glossary.internal:8080",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Password = "secret"
				cfg.Client.BaseURL = "http://glossary.internal:8080"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 8080
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown storage driver",
			configContent: `storage:
  driver: mongodb
`,
			wantErrorContains: []string{"invalid configuration", "driver must be one of"},
		},
		{
			name: "unknown log level",
			configContent: `log:
  level: verbose
`,
			wantErrorContains: []string{"invalid configuration", "level must be one of"},
		},
		{
			name: "seed source that is neither a URL nor a file",
			configContent: `seed:
  source: does/not/exist.yaml
`,
			wantErrorContains: []string{"seed.source must be an http(s) URL or an existing and readable file"},
		},
		{
			name: "seed source URL",
			configContent: `seed:
  source: https://example.com/glossary.yaml
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Seed.Source = "https://example.com/glossary.yaml"
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_PASSWORD", "")
			t.Setenv("GLOSSARY_BASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			tempDir := t.TempDir()
			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "glossary.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}
