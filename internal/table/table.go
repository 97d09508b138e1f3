package table

import (
	"fmt"
	"sync"

	"demondeduce/internal/solver"
)

// Table is one live deduction session: a mutable scenario plus the most
// recent solve result. Every mutation bumps the version so stale solve
// results can be discarded.
type Table struct {
	mu      sync.Mutex
	ID      string
	puzzle  *solver.Puzzle
	result  *solver.Result
	version int
}

// NewTable creates an empty table.
func NewTable(id string) *Table {
	return &Table{ID: id}
}

// SetScenario replaces the whole scenario and returns the new version.
func (t *Table) SetScenario(p *solver.Puzzle) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.puzzle = clonePuzzle(p)
	t.result = nil
	t.version++
	return t.version, nil
}

// Observe records one seat's observation and returns the new version.
func (t *Table) Observe(seat int, card solver.Card) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.puzzle == nil {
		return 0, fmt.Errorf("no scenario set")
	}
	if seat < 0 || seat >= len(t.puzzle.Cards) {
		return 0, fmt.Errorf("seat %d out of range", seat)
	}
	t.puzzle.Cards[seat] = card
	t.result = nil
	t.version++
	return t.version, nil
}

// Snapshot returns a copy of the current scenario and its version, or
// nil if none is set.
func (t *Table) Snapshot() (*solver.Puzzle, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.puzzle == nil {
		return nil, t.version
	}
	return clonePuzzle(t.puzzle), t.version
}

// SetResult stores a solve result. Results computed against an older
// version are dropped; it reports whether the result was kept.
func (t *Table) SetResult(version int, res *solver.Result) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if version != t.version {
		return false
	}
	t.result = res
	return true
}

// Result returns the stored result (nil while a solve is pending) and
// the current version.
func (t *Table) Result() (*solver.Result, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result, t.version
}

func clonePuzzle(p *solver.Puzzle) *solver.Puzzle {
	out := *p
	out.Cards = make([]solver.Card, len(p.Cards))
	copy(out.Cards, p.Cards)
	return &out
}
