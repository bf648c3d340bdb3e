// Package history keeps an in-memory log of search runs.
//
// A [Store] records [search.RunResult] and [search.EscalationTrace] values
// in the order they finish and summarizes them per strategy label. Nothing
// is persisted; the store lives as long as the process.
package history

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/search"
)

// Entry is one recorded run.
type Entry struct {
	ID         string    `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
	Strategy   string    `json:"strategy"`
	K          int       `json:"k"`
	Success    bool      `json:"success"`
	Iterations int       `json:"iterations"`
	Conflicts  int       `json:"conflicts"`
	ElapsedMs  float64   `json:"elapsed_ms"`
	ColorsUsed int       `json:"colors_used"`

	// Escalation fields, zero for single-k runs.
	InitialK int `json:"initial_k,omitempty"`
	FinalK   int `json:"final_k,omitempty"`
	Attempts int `json:"attempts,omitempty"`
}

// Escalated reports whether the entry came from an escalation run.
func (e Entry) Escalated() bool { return e.Attempts > 0 }

// StrategySummary aggregates entries that share a strategy label.
type StrategySummary struct {
	Strategy       string  `json:"strategy"`
	Runs           int     `json:"runs"`
	Successes      int     `json:"successes"`
	SuccessRate    float64 `json:"success_rate"`
	MeanIterations float64 `json:"mean_iterations"`
	MeanElapsedMs  float64 `json:"mean_elapsed_ms"`
}

// Store is a concurrency-safe, append-only run log.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
	limit   int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLimit caps the number of retained entries. Oldest entries are dropped
// first. Zero means unlimited.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.limit = n
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends a single-k run and returns the stored entry.
func (s *Store) Record(r *search.RunResult) Entry {
	return s.add(entryFor(r))
}

// RecordEscalation appends an escalation run and returns the stored entry.
func (s *Store) RecordEscalation(tr *search.EscalationTrace) Entry {
	e := entryFor(tr.Result)
	e.InitialK = tr.InitialK
	e.FinalK = tr.FinalK
	e.Attempts = len(tr.Attempts)
	return s.add(e)
}

// List returns all entries, oldest first.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Latest returns the most recent entry.
func (s *Store) Latest() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Summary aggregates the entries per strategy label, in order of first
// appearance.
func (s *Store) Summary() []StrategySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []StrategySummary
	index := make(map[string]int)
	for _, e := range s.entries {
		i, ok := index[e.Strategy]
		if !ok {
			i = len(out)
			index[e.Strategy] = i
			out = append(out, StrategySummary{Strategy: e.Strategy})
		}
		sum := &out[i]
		sum.Runs++
		if e.Success {
			sum.Successes++
		}
		sum.MeanIterations += float64(e.Iterations)
		sum.MeanElapsedMs += e.ElapsedMs
	}
	for i := range out {
		n := float64(out[i].Runs)
		out[i].SuccessRate = float64(out[i].Successes) / n
		out[i].MeanIterations /= n
		out[i].MeanElapsedMs /= n
	}
	return out
}

func (s *Store) add(e Entry) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.NewString()
	e.RecordedAt = s.now()
	s.entries = append(s.entries, e)
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = slices.Delete(s.entries, 0, len(s.entries)-s.limit)
	}
	return e
}

func entryFor(r *search.RunResult) Entry {
	return Entry{
		Strategy:   r.Strategy,
		K:          r.K,
		Success:    r.Success,
		Iterations: r.Iterations,
		Conflicts:  r.Conflicts,
		ElapsedMs:  r.ElapsedMs,
		ColorsUsed: graph.CountColorsUsed(r.Vertices),
	}
}
