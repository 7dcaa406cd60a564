package glossary

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/glossary/internal/config"
	"github.com/at-ishikawa/glossary/internal/database"
)

// fakeClock advances by step on every call to Now.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		step: time.Second,
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// frozenClock always returns the same instant.
type frozenClock struct {
	now time.Time
}

func (c frozenClock) Now() time.Time {
	return c.now
}

func newSQLiteRepository(t *testing.T, clock Clock) *DBRepository {
	t.Helper()

	db, err := database.Open(config.DriverSQLite, config.DatabaseConfig{
		SQLitePath: filepath.Join(t.TempDir(), "glossary.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	repo := NewDBRepository(db, clock)
	require.NoError(t, repo.Migrate(t.Context()))
	return repo
}

func ptr[T any](v T) *T {
	return &v
}

func entry(term, definition, category string) Entry {
	return Entry{Term: term, Definition: definition, Category: category}
}

func terms(entries []Entry) []string {
	result := make([]string, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.Term)
	}
	return result
}
