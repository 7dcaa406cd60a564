// Package testutil provides shared test helpers for creating config files and seed fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// SeedTerm is one entry of a seed fixture.
type SeedTerm struct {
	Term         string   `yaml:"term"`
	Definition   string   `yaml:"definition"`
	Category     string   `yaml:"category"`
	RelatedTerms []string `yaml:"related_terms,omitempty"`
	Source       string   `yaml:"source,omitempty"`
}

// ConfigOption configures optional fields when creating a config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	driver  string
	baseURL string
	seed    bool
}

// WithStorageDriver sets storage.driver. The default is sqlite.
func WithStorageDriver(driver string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.driver = driver
	}
}

// WithBaseURL sets client.base_url.
func WithBaseURL(baseURL string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.baseURL = baseURL
	}
}

// WithSeedEnabled turns on seeding from the seed fixture in the same directory.
func WithSeedEnabled() ConfigOption {
	return func(cfg *testConfig) {
		cfg.seed = true
	}
}

// SetupTestConfig creates a config file whose SQLite database and seed fixture live in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		driver:  "sqlite",
		baseURL: "http://localhost:8080",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	seedPath := CreateSeedFile(t, tmpDir, DefaultSeedTerms()...)
	configContent := fmt.Sprintf(`server:
  port: 18080
  metrics:
    enabled: false
storage:
  driver: %s
database:
  sqlite_path: %s
  connect_attempts: 1
seed:
  enabled: %t
  source: %s
client:
  base_url: %s
log:
  level: error
`,
		cfg.driver,
		filepath.Join(tmpDir, "glossary.db"),
		cfg.seed,
		seedPath,
		cfg.baseURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DefaultSeedTerms returns a small fixture with two categories.
func DefaultSeedTerms() []SeedTerm {
	return []SeedTerm{
		{Term: "gRPC", Definition: "Remote procedure call framework", Category: "RPC", RelatedTerms: []string{"Protobuf"}},
		{Term: "REST", Definition: "Architectural style for web APIs", Category: "API"},
		{Term: "GraphQL", Definition: "Query language for APIs", Category: "API"},
	}
}

// CreateSeedFile writes terms to dir/seed.yaml and returns its path.
func CreateSeedFile(t *testing.T, dir string, terms ...SeedTerm) string {
	t.Helper()

	content, err := yaml.Marshal(map[string][]SeedTerm{"terms": terms})
	require.NoError(t, err)

	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}
