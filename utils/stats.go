package utils

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Stats tracks population and timing across generations
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Generation           int // index of the last recorded generation
	TotalGenerations     int // generations recorded so far
	StartTime            time.Time
	Populations          []float64

	history  []string
	stagnant bool
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. hash identifies the grid state and is compared with
// recent generations to flag still lifes and short oscillators.
func (s *Stats) Update(generation int, population int, hash string, duration time.Duration) {
	s.Generation = generation
	s.TotalGenerations = generation + 1
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if len(s.Populations) == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
	s.Populations = append(s.Populations, float64(population))

	s.stagnant = false
	for _, h := range s.history {
		if h == hash {
			s.stagnant = true
			break
		}
	}
	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the last recorded generation repeats a recent one
func (s *Stats) IsStagnant() bool {
	return s.stagnant
}

// Status summarises the last recorded generation for the status line
func (s *Stats) Status(population, cells int) string {
	state := "Active"
	switch {
	case population == 0:
		state = "Extinct"
	case s.stagnant:
		state = "Stagnant"
	}
	density := 0.0
	if cells > 0 {
		density = float64(population) / float64(cells) * 100
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		s.Generation, population, density, state)
}

// Summary returns the run totals followed by a population chart
func (s *Stats) Summary() string {
	summary := fmt.Sprintf("Final stats: %d generations in %.1f seconds | Avg population: %.1f\n",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(), s.AveragePopulation)
	if len(s.Populations) == 0 {
		return summary
	}
	return summary + asciigraph.Plot(s.Populations,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("living cells per generation"),
	) + "\n"
}
