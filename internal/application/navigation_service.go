package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
)

const DefaultStallTimeout = 2 * time.Minute

type Dumper interface {
	Dump(ctx context.Context) error
}

// Progress is one step of a navigation stage. Reading is the proximity
// distance while approaching a bin and the count of line-lost ticks while
// homing.
type Progress struct {
	Stage   domain.Stage
	Ticks   int
	Reading float64
}

type NavigationService struct {
	carrier      ports.Carrier
	dumper       Dumper
	clock        ports.Clock
	logger       ports.Logger
	progress     func(Progress)
	plan         domain.ApproachPlan
	stallTimeout time.Duration
}

func NewNavigationService(carrier ports.Carrier, dumper Dumper, plan domain.ApproachPlan, clock ports.Clock, logger ports.Logger) *NavigationService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = ports.NopLogger{}
	}

	return &NavigationService{
		carrier:      carrier,
		dumper:       dumper,
		clock:        clock,
		logger:       logger,
		plan:         plan,
		stallTimeout: DefaultStallTimeout,
	}
}

// SetStallTimeout bounds every sensor wait. Zero or less waits forever.
func (s *NavigationService) SetStallTimeout(timeout time.Duration) {
	s.stallTimeout = timeout
}

// SetProgress registers fn to observe every sensor tick and every open-loop
// stage. fn runs on the navigating goroutine. Nil stops reporting.
func (s *NavigationService) SetProgress(fn func(Progress)) {
	s.progress = fn
}

func (s *NavigationService) report(progress Progress) {
	if s.progress != nil {
		s.progress(progress)
	}
}

// TravelTo drives the carrier to bin, deposits its load and clears the loop
// intersection.
func (s *NavigationService) TravelTo(ctx context.Context, bin domain.BinID) (err error) {
	plan := s.plan
	s.logger.Info("transferring containers", "bin_id", bin)

	if err := s.carrier.Spin(ctx, plan.TurnAround, plan.TurnAroundDuration); err != nil {
		return fmt.Errorf("turn around: %w", err)
	}
	if err := s.clock.Sleep(ctx, plan.Settle); err != nil {
		return err
	}

	if err := s.carrier.EnableSensor(ctx); err != nil {
		return fmt.Errorf("enable proximity sensor: %w", err)
	}
	sensorOn := true
	defer func() {
		if !sensorOn {
			return
		}
		if disableErr := s.carrier.DisableSensor(context.WithoutCancel(ctx)); disableErr != nil {
			err = errors.Join(err, fmt.Errorf("disable proximity sensor: %w", disableErr))
		}
	}()

	if err := s.approach(ctx, domain.StageFast, bin, plan.OuterThreshold, plan.FastSpeed); err != nil {
		return err
	}
	if err := s.approach(ctx, domain.StageSlow, bin, plan.InnerThreshold, plan.SlowSpeed); err != nil {
		return err
	}

	s.logger.Debug("docking", "bin_id", bin, "duration", plan.DockDuration)
	s.report(Progress{Stage: domain.StageDock})
	if err := s.carrier.DriveFor(ctx, plan.DockDuration); err != nil {
		return fmt.Errorf("%s: %w", domain.StageDock, err)
	}
	if err := s.clock.Sleep(ctx, plan.Settle); err != nil {
		return err
	}

	if err := s.deposit(ctx); err != nil {
		return err
	}

	if err := s.approach(ctx, domain.StageCross, plan.CrossingBin, plan.CrossingThreshold, plan.CrossingSpeed); err != nil {
		return err
	}

	sensorOn = false
	if err := s.carrier.DisableSensor(ctx); err != nil {
		return fmt.Errorf("disable proximity sensor: %w", err)
	}

	if err := s.carrier.SetSpeed(ctx, plan.TraverseSpeed); err != nil {
		return fmt.Errorf("set traverse speed: %w", err)
	}
	if err := s.carrier.DriveFor(ctx, plan.TraverseDuration); err != nil {
		return fmt.Errorf("traverse intersection: %w", err)
	}
	if err := s.carrier.SetSpeed(ctx, plan.CruiseSpeed); err != nil {
		return fmt.Errorf("restore cruise speed: %w", err)
	}

	return nil
}

// ReturnHome follows the guide line to its end and creeps onto the home
// reference surface. The creep is open loop.
func (s *NavigationService) ReturnHome(ctx context.Context) error {
	plan := s.plan
	s.logger.Info("returning home")

	err := s.poll(ctx, domain.StageHoming, func(ctx context.Context) (float64, bool, error) {
		reading, err := s.followStep(ctx, plan.HomeSpeed)
		if err != nil {
			return 0, false, err
		}
		return float64(reading.LostSteps), reading.Lost(), nil
	})
	if err != nil {
		return err
	}

	if err := s.carrier.SetSpeed(ctx, plan.CruiseSpeed); err != nil {
		return fmt.Errorf("set cruise speed: %w", err)
	}
	s.report(Progress{Stage: domain.StageCreep})
	if err := s.carrier.TravelForward(ctx, plan.CreepDistance); err != nil {
		return fmt.Errorf("creep to home: %w", err)
	}

	return s.clock.Sleep(ctx, plan.Settle)
}

func (s *NavigationService) deposit(ctx context.Context) (err error) {
	if err := s.carrier.EngageActuator(ctx); err != nil {
		return fmt.Errorf("engage actuator: %w", err)
	}
	defer func() {
		if releaseErr := s.carrier.ReleaseActuator(context.WithoutCancel(ctx)); releaseErr != nil {
			err = errors.Join(err, fmt.Errorf("release actuator: %w", releaseErr))
		}
	}()

	if err := s.dumper.Dump(ctx); err != nil {
		return fmt.Errorf("dump containers: %w", err)
	}

	return nil
}

// approach follows the line at speed while the proximity reading to bin
// stays above threshold.
func (s *NavigationService) approach(ctx context.Context, stage domain.Stage, bin domain.BinID, threshold, speed float64) error {
	return s.poll(ctx, stage, func(ctx context.Context) (float64, bool, error) {
		distance, err := s.carrier.ReadProximity(ctx, bin)
		if err != nil {
			return 0, false, fmt.Errorf("read proximity to %s: %w", bin, err)
		}
		if distance <= threshold {
			return distance, true, nil
		}

		_, err = s.followStep(ctx, speed)
		return distance, false, err
	})
}

func (s *NavigationService) followStep(ctx context.Context, speed float64) (ports.LineReading, error) {
	reading, err := s.carrier.FollowLine(ctx, speed)
	if err != nil {
		return ports.LineReading{}, fmt.Errorf("follow line: %w", err)
	}
	if err := s.carrier.DriveAtVelocity(ctx, reading.Velocity); err != nil {
		return ports.LineReading{}, fmt.Errorf("drive: %w", err)
	}

	return reading, nil
}

type pollTick func(ctx context.Context) (reading float64, done bool, err error)

// poll runs tick until it reports done, ctx ends or the stall timeout passes.
func (s *NavigationService) poll(ctx context.Context, stage domain.Stage, tick pollTick) error {
	started := s.clock.Now()
	var last float64

	for ticks := 1; ; ticks++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", stage, err)
		}

		reading, done, err := tick(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", stage, err)
		}
		last = reading
		s.report(Progress{Stage: stage, Ticks: ticks, Reading: reading})
		if done {
			s.logger.Debug("stage complete", "stage", stage, "ticks", ticks, "reading", last)
			return nil
		}

		if s.stallTimeout > 0 && s.clock.Now().Sub(started) >= s.stallTimeout {
			return fmt.Errorf("%s: last reading %.3f after %d ticks in %s: %w",
				stage, last, ticks, s.stallTimeout, domain.ErrSensorStalled)
		}
	}
}
