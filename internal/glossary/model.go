// Package glossary provides the glossary entry model, the term stores and the query engine over them.
package glossary

import (
	"errors"
	"slices"
	"time"
)

// TimestampLayout is a fixed-width UTC layout, so that rendered timestamps sort lexically.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

var (
	ErrNotFound      = errors.New("term not found")
	ErrAlreadyExists = errors.New("term already exists")
	ErrInvalidPage   = errors.New("page must be >= 1 and page size must be > 0")
)

// Entry is a single glossary record keyed by Term.
type Entry struct {
	Term         string    `yaml:"term"`
	Definition   string    `yaml:"definition"`
	Category     string    `yaml:"category"`
	RelatedTerms []string  `yaml:"related_terms"`
	Source       string    `yaml:"source"`
	CreatedAt    time.Time `yaml:"-"`
	UpdatedAt    time.Time `yaml:"-"`
}

// Clone returns a copy of the entry that shares no memory with e.
func (e Entry) Clone() Entry {
	e.RelatedTerms = slices.Clone(e.RelatedTerms)
	if e.RelatedTerms == nil {
		e.RelatedTerms = []string{}
	}
	return e
}

// EntryPatch holds the fields to change on update. A nil field keeps its prior value.
type EntryPatch struct {
	Definition   *string
	Category     *string
	RelatedTerms *[]string
	Source       *string
}

// Apply merges the patch into e and returns the result.
func (p EntryPatch) Apply(e Entry) Entry {
	if p.Definition != nil {
		e.Definition = *p.Definition
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.RelatedTerms != nil {
		e.RelatedTerms = slices.Clone(*p.RelatedTerms)
	}
	if p.Source != nil {
		e.Source = *p.Source
	}
	return e
}

// Clock reports the current time. Stores take it as a dependency so tests can control timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a string produced by FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

func stamp(clock Clock) time.Time {
	return clock.Now().UTC().Truncate(time.Microsecond)
}

// nextUpdatedAt returns the timestamp for a mutation of an entry last updated at prev.
// The result is always strictly after prev, even when the clock has not advanced.
func nextUpdatedAt(clock Clock, prev time.Time) time.Time {
	now := stamp(clock)
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
