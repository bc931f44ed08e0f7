package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeboard/internal/core"
)

func blinkerSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(testConfig(), nil)
	s.Toggle(2, 1)
	s.Toggle(2, 2)
	s.Toggle(2, 3)
	return s
}

func TestRunReturnsWhenNotRunning(t *testing.T) {
	s := blinkerSession(t)
	sched := NewScheduler(s, nil)
	sched.SetSleep(func(context.Context, time.Duration) error {
		t.Fatal("stopped loop must not sleep")
		return nil
	})
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Generation() != 0 {
		t.Fatalf("generation %d, expected 0", s.Generation())
	}
}

func TestRunStopsWithoutFurtherMutation(t *testing.T) {
	s := blinkerSession(t)
	sched := NewScheduler(s, nil)

	sleeps := 0
	var atStop *core.Grid
	sched.SetSleep(func(context.Context, time.Duration) error {
		sleeps++
		if sleeps == 3 {
			s.Stop()
			atStop = s.Grid()
		}
		return nil
	})

	s.Start()
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Generation() != 3 {
		t.Fatalf("generation %d, expected 3", s.Generation())
	}
	if s.Grid() != atStop {
		t.Fatal("grid replaced after Stop")
	}
	if sched.Active() {
		t.Fatal("scheduler still marked active after Run returned")
	}
}

func TestRunRereadsDelay(t *testing.T) {
	s := blinkerSession(t)
	sched := NewScheduler(s, nil)

	var delays []time.Duration
	sched.SetSleep(func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		switch len(delays) {
		case 1:
			s.SetDelay(40 * time.Millisecond)
		case 2:
			s.Stop()
		}
		return nil
	})

	s.Start()
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(delays) != 2 || delays[0] != 500*time.Millisecond || delays[1] != 40*time.Millisecond {
		t.Fatalf("unexpected delays %v", delays)
	}
}

func TestRunOnTickSeesEveryGeneration(t *testing.T) {
	s := blinkerSession(t)
	sched := NewScheduler(s, nil)
	sched.SetSleep(func(context.Context, time.Duration) error { return nil })

	var gens []int
	sched.OnTick(func(g *core.Grid, generation int) {
		gens = append(gens, generation)
		wantVertical := generation%2 == 1
		if g.Alive(1, 2) != wantVertical {
			t.Fatalf("generation %d: unexpected blinker phase", generation)
		}
		if generation == 4 {
			s.Stop()
		}
	})

	s.Start()
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(gens) != 4 || gens[0] != 1 || gens[3] != 4 {
		t.Fatalf("unexpected generations %v", gens)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	s := blinkerSession(t)
	sched := NewScheduler(s, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.SetSleep(func(ctx context.Context, d time.Duration) error {
		cancel()
		return Sleep(ctx, d)
	})

	s.Start()
	err := sched.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if s.Generation() != 1 {
		t.Fatalf("generation %d, expected 1", s.Generation())
	}
}

func TestRunRejectsSecondLoop(t *testing.T) {
	s := blinkerSession(t)
	sched := NewScheduler(s, nil)

	var nested error
	sched.SetSleep(func(ctx context.Context, _ time.Duration) error {
		nested = sched.Run(ctx)
		s.Stop()
		return nil
	})

	s.Start()
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !errors.Is(nested, ErrLoopActive) {
		t.Fatalf("expected ErrLoopActive, got %v", nested)
	}
}

func TestSleepWaits(t *testing.T) {
	start := time.Now()
	if err := Sleep(context.Background(), 5*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Fatal("Sleep returned early")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
