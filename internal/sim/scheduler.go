package sim

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
	"lifeboard/internal/logging"
)

// ErrLoopActive is returned by Run when another Run on the same scheduler has
// not returned yet.
var ErrLoopActive = errors.New("scheduler loop already active")

// SleepFunc waits for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Scheduler repeatedly ticks a Session while it is running.
type Scheduler struct {
	session *Session
	sleep   SleepFunc
	onTick  func(g *core.Grid, generation int)
	log     *slog.Logger
	active  atomic.Bool
}

// NewScheduler returns a scheduler using wall-clock sleeps.
func NewScheduler(session *Session, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Scheduler{session: session, sleep: Sleep, log: logger}
}

// SetSleep replaces the delay primitive.
func (s *Scheduler) SetSleep(fn SleepFunc) {
	if fn == nil {
		fn = Sleep
	}
	s.sleep = fn
}

// OnTick registers a hook called after every generation, on the loop's
// goroutine, with the new board.
func (s *Scheduler) OnTick(fn func(g *core.Grid, generation int)) {
	s.onTick = fn
}

// Run ticks the session until it is stopped or ctx is done. The running flag
// is checked right before each generation, so once Stop returns no further
// generation is produced. Run returns nil after a stop and ctx.Err() after
// cancellation. The delay is re-read before every wait.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.active.CompareAndSwap(false, true) {
		return ErrLoopActive
	}
	defer s.active.Store(false)

	s.log.Debug("scheduler loop entered")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		grid, generation, ok := s.session.tick()
		if !ok {
			s.log.Debug("scheduler loop exited", "generation", s.session.Generation())
			return nil
		}
		if s.onTick != nil {
			s.onTick(grid, generation)
		}
		if err := s.sleep(ctx, s.session.Delay()); err != nil {
			return err
		}
	}
}

// Active reports whether Run is currently looping.
func (s *Scheduler) Active() bool { return s.active.Load() }
