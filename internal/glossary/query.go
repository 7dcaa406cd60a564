package glossary

import (
	"context"
	"fmt"
	"strings"
)

// Paginate returns the 1-indexed page of entries. A page past the end is empty, not an error.
func Paginate(entries []Entry, page, pageSize int) ([]Entry, error) {
	if page < 1 || pageSize <= 0 {
		return nil, ErrInvalidPage
	}

	start := (page - 1) * pageSize
	if start >= len(entries) {
		return []Entry{}, nil
	}
	end := min(start+pageSize, len(entries))
	return entries[start:end], nil
}

// FilterByCategory keeps entries whose category equals category exactly.
func FilterByCategory(entries []Entry, category string) []Entry {
	result := make([]Entry, 0)
	for _, e := range entries {
		if e.Category == category {
			result = append(result, e)
		}
	}
	return result
}

// Search keeps entries whose term, definition or category contains query, ignoring case.
// A non-empty category additionally requires an exact category match. An empty query matches everything.
func Search(entries []Entry, query, category string) []Entry {
	q := strings.ToLower(query)
	result := make([]Entry, 0)
	for _, e := range entries {
		if !matches(e, q) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		result = append(result, e)
	}
	return result
}

func matches(e Entry, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(e.Term), lowerQuery) ||
		strings.Contains(strings.ToLower(e.Definition), lowerQuery) ||
		strings.Contains(strings.ToLower(e.Category), lowerQuery)
}

// Result is a derived view with the number of matches before pagination.
type Result struct {
	Entries    []Entry
	TotalCount int
}

// QueryEngine derives views over a Repository without mutating it.
// Each call takes a fresh snapshot, so there is no cursor state between calls.
type QueryEngine struct {
	repo Repository
}

func NewQueryEngine(repo Repository) *QueryEngine {
	return &QueryEngine{repo: repo}
}

// List returns one page of all entries.
func (q *QueryEngine) List(ctx context.Context, page, pageSize int) (Result, error) {
	all, err := q.repo.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("repo.ListAll() > %w", err)
	}
	entries, err := Paginate(all, page, pageSize)
	if err != nil {
		return Result{}, err
	}
	return Result{Entries: entries, TotalCount: len(all)}, nil
}

// Search returns every entry matching query, optionally restricted to category.
func (q *QueryEngine) Search(ctx context.Context, query, category string) (Result, error) {
	all, err := q.repo.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("repo.ListAll() > %w", err)
	}
	entries := Search(all, query, category)
	return Result{Entries: entries, TotalCount: len(entries)}, nil
}

// ByCategory returns every entry in category.
func (q *QueryEngine) ByCategory(ctx context.Context, category string) (Result, error) {
	all, err := q.repo.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("repo.ListAll() > %w", err)
	}
	entries := FilterByCategory(all, category)
	return Result{Entries: entries, TotalCount: len(entries)}, nil
}
