package utils

import (
	"fmt"
	"time"
)

// StepStats captures the outcome of a single evolution step
type StepStats struct {
	PopulationBefore int
	PopulationAfter  int
	Elapsed          time.Duration
	StartTime        time.Time
}

func NewStepStats() *StepStats {
	return &StepStats{StartTime: time.Now()}
}

// Record stores the populations and finalizes the elapsed time
func (s *StepStats) Record(populationBefore, populationAfter int) {
	s.PopulationBefore = populationBefore
	s.PopulationAfter = populationAfter
	s.Elapsed = time.Since(s.StartTime)
}

// Summary returns a single status line for the step
func (s *StepStats) Summary() string {
	return fmt.Sprintf("Living: %d to %d | Step time: %.3fms",
		s.PopulationBefore, s.PopulationAfter,
		float64(s.Elapsed.Microseconds())/1000)
}
