package glossary

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository implements Repository with an in-process map.
// A single RWMutex guards the whole collection: writers are exclusive, readers share.
type MemoryRepository struct {
	clock Clock

	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
}

// NewMemoryRepository creates an empty MemoryRepository. A nil clock means SystemClock.
func NewMemoryRepository(clock Clock) *MemoryRepository {
	if clock == nil {
		clock = SystemClock{}
	}
	return &MemoryRepository{
		clock:   clock,
		entries: make(map[string]*Entry),
	}
}

func (r *MemoryRepository) Get(_ context.Context, term string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[term]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e.Clone(), nil
}

func (r *MemoryRepository) Create(_ context.Context, entry Entry) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.Term]; ok {
		return Entry{}, ErrAlreadyExists
	}

	stored := entry.Clone()
	now := stamp(r.clock)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.entries[stored.Term] = &stored
	r.order = append(r.order, stored.Term)
	return stored.Clone(), nil
}

func (r *MemoryRepository) Update(_ context.Context, term string, patch EntryPatch) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[term]
	if !ok {
		return Entry{}, ErrNotFound
	}

	updated := patch.Apply(e.Clone())
	updated.UpdatedAt = nextUpdatedAt(r.clock, e.UpdatedAt)
	*e = updated
	return updated.Clone(), nil
}

func (r *MemoryRepository) Delete(_ context.Context, term string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[term]; !ok {
		return ErrNotFound
	}
	delete(r.entries, term)
	r.order = slices.DeleteFunc(r.order, func(t string) bool {
		return t == term
	})
	return nil
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, 0, len(r.order))
	for _, term := range r.order {
		result = append(result, r.entries[term].Clone())
	}
	return result, nil
}
