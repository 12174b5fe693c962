package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 500*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("first average: got %v, expected 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("generations per second: got %v, expected 2", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("moving average: got %v, expected 110", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.ActiveCells != 200 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
