package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/sortcell/internal/ports"
	"github.com/google/uuid"
)

// CycleService runs the load, deliver and return loop.
type CycleService struct {
	loader    *LoadingService
	navigator *NavigationService
	clock     ports.Clock
	logger    ports.Logger
	newRunID  func() string
}

func NewCycleService(loader *LoadingService, navigator *NavigationService, clock ports.Clock, logger ports.Logger) *CycleService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = ports.NopLogger{}
	}

	return &CycleService{
		loader:    loader,
		navigator: navigator,
		clock:     clock,
		logger:    logger,
		newRunID:  uuid.NewString,
	}
}

// Run homes the carrier, dispenses the first container and then repeats
// load, deliver and return. A cancelled context ends the run without error.
func (s *CycleService) Run(ctx context.Context, opts RunOptions) (RunSummary, error) {
	summary := RunSummary{RunID: opts.RunID}
	if summary.RunID == "" {
		summary.RunID = s.newRunID()
	}
	s.logger.Info("run started", "run_id", summary.RunID, "cycles", opts.Cycles)

	err := s.run(ctx, opts, &summary)
	if err != nil && errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		s.logger.Error("run failed", "run_id", summary.RunID, "cycle", summary.Cycles+1, "error", err)
		return summary, err
	}

	s.logger.Info("run finished", "run_id", summary.RunID, "cycles", summary.Cycles, "containers", summary.Containers)
	return summary, nil
}

func (s *CycleService) run(ctx context.Context, opts RunOptions, summary *RunSummary) error {
	if err := s.navigator.ReturnHome(ctx); err != nil {
		return fmt.Errorf("initial return home: %w", err)
	}

	next, err := s.loader.NextContainer(ctx)
	if err != nil {
		return err
	}

	for cycle := 1; opts.Cycles <= 0 || cycle <= opts.Cycles; cycle++ {
		started := s.clock.Now()

		result, err := s.loader.LoadBatch(ctx, next)
		if err != nil {
			return fmt.Errorf("load batch: %w", err)
		}
		next = result.Next

		if err := s.navigator.TravelTo(ctx, result.Destination); err != nil {
			return fmt.Errorf("deliver to %s: %w", result.Destination, err)
		}
		if err := s.navigator.ReturnHome(ctx); err != nil {
			return fmt.Errorf("return home: %w", err)
		}

		report := BatchReport{
			RunID:       summary.RunID,
			Cycle:       cycle,
			Destination: result.Destination,
			Items:       result.Batch.Items,
			TotalMass:   result.Batch.TotalMass(),
			Next:        result.Next,
			StartedAt:   started,
			FinishedAt:  s.clock.Now(),
		}
		summary.record(report)
		if opts.OnBatch != nil {
			opts.OnBatch(report)
		}
	}

	return nil
}
