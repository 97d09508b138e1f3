package solver

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Options tunes a solve run.
type Options struct {
	// Workers caps concurrent top-level branches; 0 means GOMAXPROCS.
	Workers int
	// MaxWorlds bounds how many candidate worlds are explored; 0 means
	// unlimited. A hit run reports StatusTruncated with a partial Result.
	MaxWorlds int
	// Strict makes unsupported roles or statements fatal instead of
	// caveats.
	Strict bool
	// CountResolutions counts each (assignment, resolution) pair
	// separately in Worlds and Support. When false, an assignment counts
	// once no matter how many resolutions back it.
	CountResolutions bool
}

// DefaultOptions counts resolutions and uses every CPU.
func DefaultOptions() Options {
	return Options{CountResolutions: true}
}

// Solve enumerates every internally consistent world for the puzzle and
// aggregates them. The search is pure and CPU-bound: distinct top-level
// branches run on separate workers and the partial results merge at the
// end. Cancellation is honored at assignment boundaries.
func Solve(ctx context.Context, p *Puzzle, opts Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	caveats, enforce, err := auditObservations(p, opts.Strict)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var explored atomic.Int64
	var truncated atomic.Bool
	budget := int64(opts.MaxWorlds)

	branches := firstSeatCandidates(p)
	partials := make([]*partial, len(branches))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for bi, first := range branches {
		first := first
		acc := newPartial(p.Seats())
		partials[bi] = acc
		g.Go(func() error {
			forEachAssignment(p, first, func(roles []Role) bool {
				if ctx.Err() != nil {
					return false
				}
				if budget > 0 && explored.Load() >= budget {
					truncated.Store(true)
					return false
				}
				kept := 0
				forEachResolution(p, roles, func(w *World) bool {
					explored.Add(1)
					if p.Consistent(w, enforce) {
						kept++
					}
					return true
				})
				if kept > 0 {
					if !opts.CountResolutions {
						kept = 1
					}
					acc.keep(roles, kept)
				}
				return true
			})
			return ctx.Err()
		})
	}
	err = g.Wait()

	total := newPartial(p.Seats())
	for _, acc := range partials {
		total.merge(acc)
	}

	status := StatusExhaustive
	switch {
	case truncated.Load() || err != nil:
		status = StatusTruncated
	case total.worlds == 0:
		status = StatusContradictory
	}
	return total.result(status, caveats), err
}

// Consistent compares the world's visible state against the observations,
// seat by seat, short-circuiting on the first mismatch. Seats whose
// observations the catalog cannot enforce are skipped per the audit.
func (p *Puzzle) Consistent(w *World, enforce []bool) bool {
	for i, card := range p.Cards {
		if card.Shown != RoleNone && w.Display[i] != card.Shown {
			return false
		}
		if card.Confirmed != RoleNone && w.Roles[i] != card.Confirmed {
			return false
		}
		st := card.Statement
		if st == nil || (enforce != nil && !enforce[i]) {
			continue
		}
		// The statement must be one the displayed role can produce, and a
		// reliable seat must have told the truth. Unreliable seats are
		// unconstrained by truth value.
		if !Info(w.Display[i]).CanProduce(st.Kind()) {
			return false
		}
		if w.Reliable(i) && !Evaluate(w, p, i, st) {
			return false
		}
	}
	return true
}

// auditObservations flags observations with no evaluation rule. In strict
// mode they are fatal; otherwise each becomes a caveat and its seat's
// statement check is skipped.
func auditObservations(p *Puzzle, strict bool) (caveats []string, enforce []bool, err error) {
	enforce = make([]bool, p.Seats())
	for i, card := range p.Cards {
		enforce[i] = true
		if card.Statement == nil {
			continue
		}
		var why string
		switch {
		case card.Statement.Kind() == StatementNone:
			why = fmt.Sprintf("seat %d: no evaluation rule for statement %q", i, card.Statement)
		case card.Shown != RoleNone && Info(card.Shown).FeasibilityOnly:
			why = fmt.Sprintf("seat %d: role %s is feasibility-only, statement not checked", i, card.Shown)
		default:
			continue
		}
		if strict {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnsupported, why)
		}
		caveats = append(caveats, why)
		enforce[i] = false
	}
	return caveats, enforce, nil
}
