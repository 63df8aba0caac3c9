package domain

import (
	"fmt"
	"time"
)

type Stage string

const (
	StageFast   Stage = "fast_approach"
	StageSlow   Stage = "slow_approach"
	StageDock   Stage = "dock"
	StageCross  Stage = "crossing"
	StageHoming Stage = "homing"
	StageCreep  Stage = "creep"
)

// WheelSpeeds are left/right wheel commands for an in-place maneuver.
type WheelSpeeds struct {
	Left  float64
	Right float64
}

type ApproachPlan struct {
	OuterThreshold float64
	InnerThreshold float64
	FastSpeed      float64
	SlowSpeed      float64
	DockDuration   time.Duration

	CrossingBin       BinID
	CrossingThreshold float64
	CrossingSpeed     float64
	TraverseSpeed     float64
	TraverseDuration  time.Duration
	CruiseSpeed       float64

	HomeSpeed     float64
	CreepDistance float64

	TurnAround         WheelSpeeds
	TurnAroundDuration time.Duration
	Settle             time.Duration
}

func DefaultApproachPlan() ApproachPlan {
	return ApproachPlan{
		OuterThreshold: 0.13,
		InnerThreshold: 0.11,
		FastSpeed:      0.2,
		SlowSpeed:      0.1,
		DockDuration:   2750 * time.Millisecond,

		CrossingBin:       CrossingBin,
		CrossingThreshold: 0.15,
		CrossingSpeed:     0.25,
		TraverseSpeed:     0.25,
		TraverseDuration:  5 * time.Second,
		CruiseSpeed:       0.1,

		HomeSpeed:     0.25,
		CreepDistance: 0.179,

		TurnAround:         WheelSpeeds{Left: 0.05, Right: -0.05},
		TurnAroundDuration: 8 * time.Second,
		Settle:             500 * time.Millisecond,
	}
}

func (p ApproachPlan) Validate() error {
	if p.InnerThreshold <= 0 || p.OuterThreshold <= 0 {
		return fmt.Errorf("approach thresholds must be positive")
	}
	if p.InnerThreshold > p.OuterThreshold {
		return fmt.Errorf("inner threshold %v is beyond outer threshold %v", p.InnerThreshold, p.OuterThreshold)
	}
	if p.FastSpeed <= 0 || p.SlowSpeed <= 0 || p.HomeSpeed <= 0 || p.CrossingSpeed <= 0 {
		return fmt.Errorf("line following speeds must be positive")
	}
	if p.CrossingBin == "" {
		return fmt.Errorf("crossing bin is required")
	}
	if p.CreepDistance < 0 {
		return fmt.Errorf("creep distance must not be negative")
	}

	return nil
}
