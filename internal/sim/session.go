// Package sim owns the mutable simulation state and the loop that advances it.
package sim

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"lifeboard/internal/config"
	"lifeboard/internal/core"
	"lifeboard/internal/logging"
	"lifeboard/internal/sims/life"
)

// DelayKey identifies the tick delay on the HUD, in milliseconds.
const DelayKey = "delay_ms"

// Session is the explicit state shared by the scheduler and the controls.
// Grids are never written after they are published; every change swaps in a
// new grid, so a snapshot returned by Grid stays valid while ticks continue.
type Session struct {
	mu sync.Mutex

	grid       *core.Grid
	running    bool
	delay      time.Duration
	generation int
	lastTick   time.Time
	stats      Stats

	prob float64
	rng  *rand.Rand
	now  func() time.Time
	log  *slog.Logger
}

// NewSession builds a stopped session from cfg.
func NewSession(cfg config.Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Session{
		delay: config.ClampDelay(cfg.Delay),
		prob:  cfg.AliveProbability,
		rng:   core.NewRand(cfg.Seed),
		now:   time.Now,
		log:   logger,
	}
	if cfg.RandomStart {
		s.grid = life.Random(cfg.Rows, cfg.Cols, s.prob, s.rng)
	} else {
		s.grid = life.Empty(cfg.Rows, cfg.Cols)
	}
	s.stats.Population = s.grid.Population()
	return s
}

// Grid returns the current board. The result must not be written.
func (s *Session) Grid() *core.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Size returns the board dimensions.
func (s *Session) Size() core.Size {
	return s.Grid().Size()
}

// Running reports whether the loop should keep ticking.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Generation reports how many generations ran since the last Clear or Randomize.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Stats returns a copy of the throughput counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Start sets the running flag and reports whether it was previously clear.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	s.lastTick = time.Time{}
	s.log.Debug("simulation started", "generation", s.generation, "delay", s.delay)
	return true
}

// Stop clears the running flag. The next Tick is a no-op.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.log.Debug("simulation stopped", "generation", s.generation)
}

// StartStop flips the running flag and returns the new value.
func (s *Session) StartStop() bool {
	if s.Start() {
		return true
	}
	s.Stop()
	return false
}

// Tick advances one generation if the session is running and reports whether
// it did.
func (s *Session) Tick() bool {
	_, _, ok := s.tick()
	return ok
}

// tick is Tick returning the board and generation it produced.
func (s *Session) tick() (*core.Grid, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil, 0, false
	}
	s.advanceLocked()
	return s.grid, s.generation, true
}

// Step advances one generation regardless of the running flag. A step taken
// while stopped does not count the paused time toward the rate.
func (s *Session) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		s.lastTick = time.Time{}
	}
	s.advanceLocked()
}

func (s *Session) advanceLocked() {
	s.grid = life.Next(s.grid)
	s.generation++

	now := s.now()
	var elapsed time.Duration
	if !s.lastTick.IsZero() {
		elapsed = now.Sub(s.lastTick)
	}
	s.lastTick = now
	s.stats.Update(s.grid.Population(), elapsed)
	s.log.Log(context.Background(), logging.LevelTrace, "tick", "generation", s.generation, "population", s.stats.Population)
}

// Toggle flips cell (i, k).
func (s *Session) Toggle(i, k int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = life.Toggle(s.grid, i, k)
	s.stats.Population = s.grid.Population()
}

// Randomize replaces the board with a fresh random fill.
func (s *Session) Randomize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = life.Random(s.grid.Rows, s.grid.Cols, s.prob, s.rng)
	s.resetCountersLocked()
	s.log.Debug("board randomized", "population", s.stats.Population)
}

// Clear replaces the board with an empty one of the same size.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = life.Empty(s.grid.Rows, s.grid.Cols)
	s.resetCountersLocked()
	s.log.Debug("board cleared")
}

func (s *Session) resetCountersLocked() {
	s.generation = 0
	s.lastTick = time.Time{}
	s.stats = Stats{Population: s.grid.Population()}
}

// Delay returns the pause between generations.
func (s *Session) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay
}

// SetDelay changes the pause between generations, clamped to the allowed range.
func (s *Session) SetDelay(d time.Duration) {
	d = config.ClampDelay(d)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// ParameterControls exposes the speed slider.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:   DelayKey,
		Label: "Lifetime",
		Type:  core.ParamTypeInt,
		Step:  1,
		Min:   float64(config.MinDelay / time.Millisecond),
		Max:   float64(config.MaxDelay / time.Millisecond),
	}}
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != DelayKey {
		return false
	}
	s.SetDelay(time.Duration(value) * time.Millisecond)
	return true
}

// IntParameter implements core.IntParameterGetter.
func (s *Session) IntParameter(key string) (int, bool) {
	if key != DelayKey {
		return 0, false
	}
	return int(s.Delay() / time.Millisecond), true
}

// Parameters returns the status values shown next to the board.
func (s *Session) Parameters() []core.Parameter {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := "stopped"
	switch {
	case s.running:
		state = "running"
	case s.generation > 0 && s.stats.Population == 0:
		state = "extinct"
	}
	return []core.Parameter{
		{Key: "state", Label: "State", Type: core.ParamTypeText, Value: state},
		{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(s.generation)},
		{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(s.stats.Population)},
		{Key: "avg_population", Label: "Avg population", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.stats.AveragePopulation, 'f', 1, 64)},
		{Key: "rate", Label: "Rate", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.stats.GenerationsPerSecond, 'f', 1, 64) + " gen/s"},
		{Key: "alive_probability", Label: "Random fill", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.prob, 'f', -1, 64)},
	}
}
