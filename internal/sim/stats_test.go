package sim

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	var s Stats
	s.Update(100, 0)
	if s.GenerationsPerSecond != 0 {
		t.Fatalf("zero duration should leave rate unset, got %v", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Fatalf("first sample should seed the average, got %v", s.AveragePopulation)
	}

	s.Update(200, 250*time.Millisecond)
	if math.Abs(s.GenerationsPerSecond-4) > 1e-9 {
		t.Fatalf("rate %v, expected 4", s.GenerationsPerSecond)
	}
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average %v, expected 110", s.AveragePopulation)
	}
	if s.Population != 200 {
		t.Fatalf("population %d, expected 200", s.Population)
	}
}
