// Package watch polls the system clipboard for scenario lines and
// re-solves whenever a new one appears, so a scenario can be pasted from
// anywhere without re-running the command.
package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"demondeduce/internal/render"
	"demondeduce/internal/scenario"
	"demondeduce/internal/solver"
)

// Watcher re-solves clipboard scenarios on a fixed interval.
type Watcher struct {
	interval time.Duration
	opts     solver.Options
	renderer *render.Renderer
	out      io.Writer

	// read is swappable under test; it defaults to the system clipboard.
	read func() (string, error)
	last string
}

func New(interval time.Duration, opts solver.Options, renderer *render.Renderer, out io.Writer) *Watcher {
	return &Watcher{
		interval: interval,
		opts:     opts,
		renderer: renderer,
		out:      out,
		read:     clipboard.ReadAll,
	}
}

// Run polls until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	log.Info().Dur("interval", w.interval).Msg("watching clipboard for scenarios")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

// poll solves the clipboard content if it changed and parses as a
// scenario. Non-scenario clipboard content is ignored without noise.
func (w *Watcher) poll(ctx context.Context) {
	text, err := w.read()
	if err != nil {
		log.Debug().Err(err).Msg("clipboard read failed")
		return
	}
	if text == w.last {
		return
	}
	w.last = text

	p, err := scenario.ParseLine(text)
	if err != nil {
		log.Debug().Err(err).Msg("clipboard content is not a scenario")
		return
	}
	if err := p.Validate(); err != nil {
		log.Debug().Err(err).Msg("clipboard scenario invalid")
		return
	}

	res, err := solver.Solve(ctx, p, w.opts)
	if err != nil {
		log.Warn().Err(err).Msg("solve failed")
		return
	}

	fmt.Fprint(w.out, w.renderer.Puzzle(p))
	fmt.Fprint(w.out, w.renderer.Result(res))
}
