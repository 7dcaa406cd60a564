package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSetupTestConfig(t *testing.T) {
	tests := []struct {
		name     string
		opts     []ConfigOption
		contains []string
	}{
		{
			name:     "defaults",
			contains: []string{"driver: sqlite", "enabled: false", "base_url: http://localhost:8080"},
		},
		{
			name:     "with options",
			opts:     []ConfigOption{WithStorageDriver("memory"), WithBaseURL("http://127.0.0.1:9999"), WithSeedEnabled()},
			contains: []string{"driver: memory", "enabled: true", "base_url: http://127.0.0.1:9999"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			got := SetupTestConfig(t, tmpDir, tt.opts...)
			assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

			content, err := os.ReadFile(got)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(content), want)
			}
			assert.Contains(t, string(content), filepath.Join(tmpDir, "glossary.db"))
			assert.FileExists(t, filepath.Join(tmpDir, "seed.yaml"))
		})
	}
}

func TestCreateSeedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := CreateSeedFile(t, tmpDir, DefaultSeedTerms()...)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var got struct {
		Terms []SeedTerm `yaml:"terms"`
	}
	require.NoError(t, yaml.Unmarshal(content, &got))
	assert.Equal(t, DefaultSeedTerms(), got.Terms)
}
