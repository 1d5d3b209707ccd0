// internal/store/memory.go
//
// In-memory store of finished solving sessions.
// Used by the bench command, where sessions for different targets run in
// parallel and report into one place.
//
// Characteristics:
//   - Records are keyed by target word; a later Save for the same target replaces it.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNotFound is returned by Get for an unknown target.
var ErrNotFound = errors.New("not found")

// Record is the outcome of one solving session.
type Record struct {
	Target  string
	Guesses []string
	Solved  bool
	Err     string // fatal error message, empty on success
}

// Count returns the number of guesses taken.
func (r Record) Count() int { return len(r.Guesses) }

// Summary aggregates all records in a store.
type Summary struct {
	Sessions  int
	Solved    int
	Failed    int
	Mean      float64 // mean guesses over solved sessions
	Max       int     // most guesses over solved sessions
	MaxTarget string
}

// Store defines the persistence interface for session results.
type Store interface {
	// Save persists or replaces a record.
	Save(ctx context.Context, r Record) error

	// Get retrieves a record by target.
	// Returns ErrNotFound if the target has no record.
	Get(ctx context.Context, target string) (Record, error)

	// All returns every record ordered by target.
	All(ctx context.Context) ([]Record, error)

	// Summary aggregates the stored records.
	Summary(ctx context.Context) (Summary, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards records map
	records map[string]Record // keyed by Record.Target
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[string]Record)}
}

func (m *memory) Save(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.Guesses = append([]string(nil), r.Guesses...)
	m.records[r.Target] = r
	return nil
}

func (m *memory) Get(ctx context.Context, target string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[target]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

func (m *memory) All(ctx context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b Record) int { return cmp.Compare(a.Target, b.Target) })
	return out, nil
}

func (m *memory) Summary(ctx context.Context) (Summary, error) {
	all, err := m.All(ctx)
	if err != nil {
		return Summary{}, err
	}
	var s Summary
	total := 0
	for _, r := range all {
		s.Sessions++
		if !r.Solved {
			s.Failed++
			continue
		}
		s.Solved++
		total += r.Count()
		if r.Count() > s.Max {
			s.Max, s.MaxTarget = r.Count(), r.Target
		}
	}
	if s.Solved > 0 {
		s.Mean = float64(total) / float64(s.Solved)
	}
	return s, nil
}
