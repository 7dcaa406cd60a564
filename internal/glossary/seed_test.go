package glossary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customSeed = `terms:
  - term: Kubernetes
    definition: Open source container orchestration system
    category: Containerization
    related_terms: [Docker, Containers, Orchestration]
    source: Google
  - term: OpenAPI
    definition: Specification for describing HTTP APIs
    category: API
`

func TestSeedLoader_Load(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(customSeed), 0644))

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/glossary.yaml":
			_, _ = w.Write([]byte(customSeed))
		case "/flaky.yaml":
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(customSeed))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	tests := []struct {
		name      string
		source    string
		wantTerms []string
		errMsg    string
	}{
		{
			name:      "embedded default",
			source:    "",
			wantTerms: []string{"gRPC", "Protobuf", "REST", "GraphQL", "Docker"},
		},
		{
			name:      "local file",
			source:    seedPath,
			wantTerms: []string{"Kubernetes", "OpenAPI"},
		},
		{
			name:      "remote file",
			source:    server.URL + "/glossary.yaml",
			wantTerms: []string{"Kubernetes", "OpenAPI"},
		},
		{
			name:      "remote file after a retried server error",
			source:    server.URL + "/flaky.yaml",
			wantTerms: []string{"Kubernetes", "OpenAPI"},
		},
		{
			name:   "remote file not found",
			source: server.URL + "/missing.yaml",
			errMsg: "status code: 404",
		},
		{
			name:   "missing local file",
			source: filepath.Join(t.TempDir(), "missing.yaml"),
			errMsg: "os.ReadFile",
		},
	}

	loader := NewSeedLoader()
	defer loader.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loader.Load(context.Background(), tt.source)
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTerms, terms(got))
		})
	}
}

func TestParseSeed(t *testing.T) {
	got, err := ParseSeed([]byte(customSeed))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Entry{
		Term:         "Kubernetes",
		Definition:   "Open source container orchestration system",
		Category:     "Containerization",
		RelatedTerms: []string{"Docker", "Containers", "Orchestration"},
		Source:       "Google",
	}, got[0])
	assert.Equal(t, "", got[1].Source)

	_, err = ParseSeed([]byte("terms:\n  - term: Incomplete\n"))
	assert.ErrorContains(t, err, "seed entry #1")

	_, err = ParseSeed([]byte("terms: [[["))
	assert.ErrorContains(t, err, "yaml.Unmarshal")
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(newFakeClock())
	_, err := repo.Create(ctx, entry("REST", "kept as is", "API"))
	require.NoError(t, err)

	entries, err := ParseSeed(defaultSeed)
	require.NoError(t, err)

	created, err := Seed(ctx, repo, entries)
	require.NoError(t, err)
	assert.Equal(t, 4, created)

	rest, err := repo.Get(ctx, "REST")
	require.NoError(t, err)
	assert.Equal(t, "kept as is", rest.Definition)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"REST", "gRPC", "Protobuf", "GraphQL", "Docker"}, terms(all))

	// Seeding again is a no-op.
	created, err = Seed(ctx, repo, entries)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}
