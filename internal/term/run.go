package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifeboard/internal/core"
	"lifeboard/internal/logging"
	"lifeboard/internal/sim"
)

// Options controls a headless run.
type Options struct {
	// FPS is how often a frame is drawn, independent of the tick delay.
	FPS int
	// Generations stops the run after this many generations; 0 runs until
	// the context is cancelled.
	Generations int
	Logger      *slog.Logger
}

// Run starts the session and drives it with sched while drawing frames with r
// until the generation limit is reached or ctx is cancelled. Cancellation of
// ctx is a clean exit, not an error.
func Run(ctx context.Context, session *sim.Session, sched *sim.Scheduler, r *Renderer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}

	if opts.Generations > 0 {
		limit := opts.Generations
		sched.OnTick(func(_ *core.Grid, generation int) {
			if generation >= limit {
				session.Stop()
			}
		})
	}

	done := make(chan struct{})
	eg, gctx := errgroup.WithContext(ctx)

	session.Start()
	eg.Go(func() error {
		defer close(done)
		return sched.Run(gctx)
	})
	eg.Go(func() error {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return r.Frame(session.Grid(), session.Parameters())
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := r.Frame(session.Grid(), session.Parameters()); err != nil {
					return err
				}
			}
		}
	})

	err := eg.Wait()
	session.Stop()
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		err = nil
	}
	stats := session.Stats()
	logger.Info("headless run finished",
		"generations", session.Generation(),
		"population", stats.Population,
		"avg_population", stats.AveragePopulation,
	)
	return err
}
