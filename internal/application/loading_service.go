package application

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
)

// SeedSource picks the container kind the dispenser produces next.
type SeedSource func() int

// DefaultSeedSource draws uniformly from 1..5.
func DefaultSeedSource() int {
	return rand.IntN(5) + 1
}

type LoadResult struct {
	Destination domain.BinID
	Next        domain.Container
	Batch       domain.Batch
}

type LoadingService struct {
	arm       ports.Manipulator
	dispenser ports.Dispenser
	clock     ports.Clock
	logger    ports.Logger
	layout    domain.Layout
	seed      SeedSource
}

func NewLoadingService(arm ports.Manipulator, dispenser ports.Dispenser, layout domain.Layout, clock ports.Clock, logger ports.Logger) *LoadingService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = ports.NopLogger{}
	}

	return &LoadingService{
		arm:       arm,
		dispenser: dispenser,
		clock:     clock,
		logger:    logger,
		layout:    layout,
		seed:      DefaultSeedSource,
	}
}

// SetSeedSource replaces the random container kind selection.
func (s *LoadingService) SetSeedSource(seed SeedSource) {
	if seed == nil {
		seed = DefaultSeedSource
	}
	s.seed = seed
}

// LoadBatch loads containers starting from initial until the next one would
// break the mass budget, the batch cap or the destination rule. The container
// that stopped the batch is left on the table and returned as Next. The
// destination must be one of the layout's bins; nothing is transferred
// otherwise.
func (s *LoadingService) LoadBatch(ctx context.Context, initial domain.Container) (LoadResult, error) {
	if err := initial.Validate(); err != nil {
		return LoadResult{}, err
	}
	if _, err := s.layout.ResolveBin(initial.BinID); err != nil {
		return LoadResult{}, fmt.Errorf("destination of %s: %w", initial, err)
	}

	limits := s.layout.Limits
	batch := domain.NewBatch(initial.BinID)
	s.logger.Info("reference container", "bin_id", initial.BinID, "mass", initial.Mass)

	current := initial
	for batch.CanAdmit(current, limits) {
		if err := ctx.Err(); err != nil {
			return LoadResult{}, err
		}

		slot, err := s.layout.Slots.Assign(batch.Count())
		if err != nil {
			return LoadResult{}, err
		}
		if err := s.transfer(ctx, slot); err != nil {
			return LoadResult{}, fmt.Errorf("transfer container to slot %d: %w", slot.Index, err)
		}
		if err := batch.Admit(current, limits); err != nil {
			return LoadResult{}, err
		}
		s.logger.Info("container loaded", "count", batch.Count(), "total_mass", batch.TotalMass())

		next, err := s.NextContainer(ctx)
		if err != nil {
			return LoadResult{}, err
		}
		current = next
	}

	s.logger.Info("batch ready", "bin_id", batch.Reference, "count", batch.Count(), "total_mass", batch.TotalMass())

	return LoadResult{
		Destination: batch.Reference,
		Next:        current,
		Batch:       batch,
	}, nil
}

// NextContainer asks the table for the properties of a fresh container and
// dispenses it.
func (s *LoadingService) NextContainer(ctx context.Context) (domain.Container, error) {
	next, err := s.dispenser.NextContainer(ctx, s.seed())
	if err != nil {
		return domain.Container{}, fmt.Errorf("query next container: %w", err)
	}
	s.logger.Info("next container", "bin_id", next.BinID, "mass", next.Mass)

	if err := s.dispenser.Dispense(ctx); err != nil {
		return domain.Container{}, fmt.Errorf("dispense container: %w", err)
	}

	return next, nil
}

func (s *LoadingService) transfer(ctx context.Context, slot domain.Slot) error {
	poses := s.layout.Transfer

	if err := s.arm.MoveTo(ctx, poses.Pickup); err != nil {
		return fmt.Errorf("reach pickup: %w", err)
	}
	if err := s.clock.Sleep(ctx, poses.GripSettle); err != nil {
		return err
	}
	if err := s.arm.SetGripper(ctx, poses.GripClose); err != nil {
		return fmt.Errorf("grip container: %w", err)
	}
	for _, waypoint := range []domain.Pose{poses.Lift, poses.Carry, slot.Pose} {
		if err := s.arm.MoveTo(ctx, waypoint); err != nil {
			return fmt.Errorf("move to %s: %w", waypoint, err)
		}
	}

	if err := s.arm.RotateJoint(ctx, poses.ElbowTilt); err != nil {
		return fmt.Errorf("lower container: %w", err)
	}
	if err := s.arm.SetGripper(ctx, poses.GripOpen); err != nil {
		return fmt.Errorf("release container: %w", err)
	}
	if err := s.arm.RotateJoint(ctx, -poses.ElbowTilt); err != nil {
		return fmt.Errorf("raise arm: %w", err)
	}
	if err := s.arm.Home(ctx); err != nil {
		return fmt.Errorf("home arm: %w", err)
	}

	return nil
}
