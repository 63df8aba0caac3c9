package application

import (
	"context"
	"fmt"

	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
)

type DumpService struct {
	carrier     ports.Carrier
	profiles    ports.ProfileSource
	clock       ports.Clock
	logger      ports.Logger
	profileName string
}

func NewDumpService(carrier ports.Carrier, profiles ports.ProfileSource, profileName string, clock ports.Clock, logger ports.Logger) *DumpService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = ports.NopLogger{}
	}
	if profileName == "" {
		profileName = domain.DefaultProfileName
	}

	return &DumpService{
		carrier:     carrier,
		profiles:    profiles,
		clock:       clock,
		logger:      logger,
		profileName: profileName,
	}
}

// Dump tilts the hopper through the profile setpoints. The caller holds the
// actuator engaged for the whole call.
func (s *DumpService) Dump(ctx context.Context) error {
	profile, err := s.profiles.Load(ctx, s.profileName)
	if err != nil {
		return fmt.Errorf("load dump profile %q: %w", s.profileName, err)
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	steps := profile.Steps()
	s.logger.Debug("dumping", "profile", s.profileName, "steps", len(steps), "duration", profile.Duration())

	for _, step := range steps {
		if err := s.carrier.RotateHopper(ctx, step.Angle); err != nil {
			return fmt.Errorf("rotate hopper to %.2f: %w", step.Angle, err)
		}
		if err := s.clock.Sleep(ctx, step.Hold); err != nil {
			return err
		}
	}

	return nil
}
