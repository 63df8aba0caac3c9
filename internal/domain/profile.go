package domain

import (
	"fmt"
	"time"
)

const DefaultProfileName = "dump.txt"

type ProfilePoint struct {
	At    time.Duration
	Angle float64
}

// DumpProfile is an ordered time/angle series driving the hopper tilt.
type DumpProfile struct {
	Name   string
	Points []ProfilePoint
}

// ProfileStep is one hopper setpoint and how long to hold it.
type ProfileStep struct {
	Angle float64
	Hold  time.Duration
}

func (p DumpProfile) Validate() error {
	if len(p.Points) == 0 {
		return fmt.Errorf("%w: %q has no points", ErrMalformedProfile, p.Name)
	}

	for i := 1; i < len(p.Points); i++ {
		if p.Points[i].At <= p.Points[i-1].At {
			return fmt.Errorf("%w: %q point %d at %s does not follow %s",
				ErrMalformedProfile, p.Name, i, p.Points[i].At, p.Points[i-1].At)
		}
	}

	return nil
}

// Steps returns the setpoints after the first point, each paired with the
// delay to the previous timestamp.
func (p DumpProfile) Steps() []ProfileStep {
	if len(p.Points) < 2 {
		return nil
	}

	steps := make([]ProfileStep, 0, len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		steps = append(steps, ProfileStep{
			Angle: p.Points[i].Angle,
			Hold:  p.Points[i].At - p.Points[i-1].At,
		})
	}

	return steps
}

func (p DumpProfile) Duration() time.Duration {
	if len(p.Points) == 0 {
		return 0
	}

	return p.Points[len(p.Points)-1].At - p.Points[0].At
}

func (p DumpProfile) MaxAngle() float64 {
	var max float64
	for _, point := range p.Points {
		if point.Angle > max {
			max = point.Angle
		}
	}

	return max
}
