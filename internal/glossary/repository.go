package glossary

import (
	"context"
)

//go:generate mockgen -source=repository.go -destination=../mocks/glossary/mock_repository.go -package=mock_glossary

// Repository is the term store. Implementations must make every method atomic with respect to the others.
type Repository interface {
	// Get returns ErrNotFound if term is absent.
	Get(ctx context.Context, term string) (Entry, error)
	// Create stores entry with server-assigned timestamps, or returns ErrAlreadyExists without changing state.
	Create(ctx context.Context, entry Entry) (Entry, error)
	// Update merges patch into an existing entry, or returns ErrNotFound.
	Update(ctx context.Context, term string, patch EntryPatch) (Entry, error)
	// Delete returns ErrNotFound if term is absent.
	Delete(ctx context.Context, term string) error
	// ListAll returns every entry in insertion order.
	ListAll(ctx context.Context) ([]Entry, error)
}
