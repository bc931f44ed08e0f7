package sim

import "time"

// Stats tracks throughput and population for the status line.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Population           int
}

// Update records one generation that took duration to produce. A zero
// duration leaves the rate unchanged.
func (s *Stats) Update(population int, duration time.Duration) {
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average, seeded by the first sample.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
