package glossary

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		entry("gRPC", "Remote procedure call framework over HTTP/2", "RPC"),
		entry("Protobuf", "Serialization format used by gRPC", "Serialization"),
		entry("REST", "Architectural style for web APIs", "API"),
		entry("GraphQL", "Query language for APIs", "API"),
		entry("Docker", "Platform for running containers", "Containerization"),
		entry("OpenAPI", "Specification for describing HTTP apis", "api"),
	}
}

func TestPaginate(t *testing.T) {
	entries := sampleEntries()

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []string
		wantErr  error
	}{
		{name: "first page", page: 1, pageSize: 2, want: []string{"gRPC", "Protobuf"}},
		{name: "middle page", page: 2, pageSize: 2, want: []string{"REST", "GraphQL"}},
		{name: "last partial page", page: 2, pageSize: 4, want: []string{"Docker", "OpenAPI"}},
		{name: "page size larger than collection", page: 1, pageSize: 100, want: terms(entries)},
		{name: "page past the end is empty", page: 4, pageSize: 2, want: []string{}},
		{name: "page exactly at the end is empty", page: 3, pageSize: 3, want: []string{}},
		{name: "zero page", page: 0, pageSize: 10, wantErr: ErrInvalidPage},
		{name: "negative page", page: -1, pageSize: 10, wantErr: ErrInvalidPage},
		{name: "zero page size", page: 1, pageSize: 0, wantErr: ErrInvalidPage},
		{name: "negative page size", page: 1, pageSize: -5, wantErr: ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Paginate(entries, tt.page, tt.pageSize)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, terms(got))
		})
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	got, err := Paginate(nil, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginate_PagesCoverCollection(t *testing.T) {
	for n := 0; n <= 12; n++ {
		entries := make([]Entry, n)
		for i := range entries {
			entries[i] = entry(fmt.Sprintf("t%02d", i), "def", "cat")
		}
		for pageSize := 1; pageSize <= 5; pageSize++ {
			t.Run(fmt.Sprintf("n=%d/size=%d", n, pageSize), func(t *testing.T) {
				pages := (n + pageSize - 1) / pageSize
				var concatenated []Entry
				for page := 1; page <= pages; page++ {
					got, err := Paginate(entries, page, pageSize)
					require.NoError(t, err)
					require.NotEmpty(t, got)
					concatenated = append(concatenated, got...)
				}
				assert.Equal(t, terms(entries), terms(concatenated))

				// Repeated calls over an unchanged set return the same window.
				if pages > 0 {
					first, _ := Paginate(entries, pages, pageSize)
					again, _ := Paginate(entries, pages, pageSize)
					assert.Equal(t, first, again)
				}
			})
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	entries := sampleEntries()

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "exact match keeps insertion order", category: "API", want: []string{"REST", "GraphQL"}},
		{name: "case sensitive", category: "api", want: []string{"OpenAPI"}},
		{name: "no match", category: "Databases", want: []string{}},
		{name: "empty category matches nothing", category: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, terms(FilterByCategory(entries, tt.category)))
		})
	}
}

func TestSearch(t *testing.T) {
	entries := sampleEntries()

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{name: "lower case term", query: "grpc", want: []string{"gRPC", "Protobuf"}},
		{name: "upper case term", query: "GRPC", want: []string{"gRPC", "Protobuf"}},
		{name: "matches definition", query: "containers", want: []string{"Docker"}},
		{name: "matches category", query: "serial", want: []string{"Protobuf"}},
		{name: "matches any field", query: "api", want: []string{"REST", "GraphQL", "OpenAPI"}},
		{name: "category filter is exact and case sensitive", query: "api", category: "API", want: []string{"REST", "GraphQL"}},
		{name: "lower case category filter", query: "api", category: "api", want: []string{"OpenAPI"}},
		{name: "category filter with no text match", query: "docker", category: "API", want: []string{}},
		{name: "empty query matches everything", query: "", want: terms(entries)},
		{name: "empty query with category", query: "", category: "RPC", want: []string{"gRPC"}},
		{name: "no match", query: "kubernetes", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, terms(Search(entries, tt.query, tt.category)))
		})
	}
}

func seededEngine(t *testing.T) *QueryEngine {
	t.Helper()
	repo := NewMemoryRepository(newFakeClock())
	for _, e := range sampleEntries() {
		_, err := repo.Create(context.Background(), e)
		require.NoError(t, err)
	}
	return NewQueryEngine(repo)
}

func TestQueryEngine_List(t *testing.T) {
	engine := seededEngine(t)

	got, err := engine.List(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, got.TotalCount)
	assert.Equal(t, []string{"Docker", "OpenAPI"}, terms(got.Entries))

	got, err = engine.List(context.Background(), 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, got.TotalCount)
	assert.Empty(t, got.Entries)

	_, err = engine.List(context.Background(), 0, 4)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestQueryEngine_ListEmptyStore(t *testing.T) {
	engine := NewQueryEngine(NewMemoryRepository(nil))

	got, err := engine.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalCount)
	assert.Empty(t, got.Entries)
}

func TestQueryEngine_Search(t *testing.T) {
	engine := seededEngine(t)

	got, err := engine.Search(context.Background(), "API", "")
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalCount)
	assert.Equal(t, []string{"REST", "GraphQL", "OpenAPI"}, terms(got.Entries))
}

func TestQueryEngine_ByCategory(t *testing.T) {
	engine := seededEngine(t)

	got, err := engine.ByCategory(context.Background(), "API")
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalCount)
	assert.Equal(t, []string{"REST", "GraphQL"}, terms(got.Entries))
}
