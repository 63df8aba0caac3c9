package application

import (
	"time"

	"github.com/bnema/sortcell/internal/domain"
)

type BatchReport struct {
	RunID       string
	Cycle       int
	Destination domain.BinID
	Items       []domain.Container
	TotalMass   float64
	Next        domain.Container
	StartedAt   time.Time
	FinishedAt  time.Time
}

func (r BatchReport) Empty() bool {
	return len(r.Items) == 0
}

type RunSummary struct {
	RunID      string
	Cycles     int
	Containers int
	TotalMass  float64
	EmptyTrips int
	Deliveries map[domain.BinID]int
}

func (s *RunSummary) record(report BatchReport) {
	s.Cycles++
	s.Containers += len(report.Items)
	s.TotalMass += report.TotalMass
	if report.Empty() {
		s.EmptyTrips++
	}
	if s.Deliveries == nil {
		s.Deliveries = map[domain.BinID]int{}
	}
	s.Deliveries[report.Destination] += len(report.Items)
}

type RunOptions struct {
	// RunID names the run. Empty draws a fresh id.
	RunID string
	// Cycles stops the run after that many deliveries. Zero runs until the
	// context ends.
	Cycles  int
	OnBatch func(BatchReport)
}
