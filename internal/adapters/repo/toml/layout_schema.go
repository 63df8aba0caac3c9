package toml

import (
	"fmt"
	"time"

	"github.com/bnema/sortcell/internal/domain"
)

const currentLayoutVersion = 1

type layoutSchema struct {
	Version  int            `toml:"version"`
	Bins     []string       `toml:"bins"`
	Limits   limitsSchema   `toml:"limits"`
	Slots    []poseSchema   `toml:"slots"`
	Transfer transferSchema `toml:"transfer"`
	Approach approachSchema `toml:"approach"`
}

func (s *layoutSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentLayoutVersion
	}
}

func (s layoutSchema) validateVersion() error {
	if s.Version > currentLayoutVersion {
		return fmt.Errorf("unsupported layout schema version %d (current %d)", s.Version, currentLayoutVersion)
	}

	return nil
}

type limitsSchema struct {
	MaxMass  float64 `toml:"max_mass"`
	MaxCount int     `toml:"max_count"`
}

type poseSchema struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

type transferSchema struct {
	Pickup     poseSchema `toml:"pickup"`
	Lift       poseSchema `toml:"lift"`
	Carry      poseSchema `toml:"carry"`
	GripClose  float64    `toml:"grip_close"`
	GripOpen   float64    `toml:"grip_open"`
	ElbowTilt  float64    `toml:"elbow_tilt"`
	GripSettle string     `toml:"grip_settle"`
}

type wheelSchema struct {
	Left  float64 `toml:"left"`
	Right float64 `toml:"right"`
}

type approachSchema struct {
	OuterThreshold     float64     `toml:"outer_threshold"`
	InnerThreshold     float64     `toml:"inner_threshold"`
	FastSpeed          float64     `toml:"fast_speed"`
	SlowSpeed          float64     `toml:"slow_speed"`
	DockDuration       string      `toml:"dock_duration"`
	CrossingBin        string      `toml:"crossing_bin"`
	CrossingThreshold  float64     `toml:"crossing_threshold"`
	CrossingSpeed      float64     `toml:"crossing_speed"`
	TraverseSpeed      float64     `toml:"traverse_speed"`
	TraverseDuration   string      `toml:"traverse_duration"`
	CruiseSpeed        float64     `toml:"cruise_speed"`
	HomeSpeed          float64     `toml:"home_speed"`
	CreepDistance      float64     `toml:"creep_distance"`
	TurnAround         wheelSchema `toml:"turn_around"`
	TurnAroundDuration string      `toml:"turn_around_duration"`
	Settle             string      `toml:"settle"`
}

func toLayoutSchema(layout domain.Layout) layoutSchema {
	bins := make([]string, 0, len(layout.Bins))
	for _, bin := range layout.Bins {
		bins = append(bins, string(bin))
	}

	slots := make([]poseSchema, 0, len(layout.Slots))
	for _, pose := range layout.Slots {
		slots = append(slots, toPoseSchema(pose))
	}

	t := layout.Transfer
	a := layout.Approach

	return layoutSchema{
		Version: currentLayoutVersion,
		Bins:    bins,
		Limits: limitsSchema{
			MaxMass:  layout.Limits.MaxMass,
			MaxCount: layout.Limits.MaxCount,
		},
		Slots: slots,
		Transfer: transferSchema{
			Pickup:     toPoseSchema(t.Pickup),
			Lift:       toPoseSchema(t.Lift),
			Carry:      toPoseSchema(t.Carry),
			GripClose:  t.GripClose,
			GripOpen:   t.GripOpen,
			ElbowTilt:  t.ElbowTilt,
			GripSettle: formatDuration(t.GripSettle),
		},
		Approach: approachSchema{
			OuterThreshold:     a.OuterThreshold,
			InnerThreshold:     a.InnerThreshold,
			FastSpeed:          a.FastSpeed,
			SlowSpeed:          a.SlowSpeed,
			DockDuration:       formatDuration(a.DockDuration),
			CrossingBin:        string(a.CrossingBin),
			CrossingThreshold:  a.CrossingThreshold,
			CrossingSpeed:      a.CrossingSpeed,
			TraverseSpeed:      a.TraverseSpeed,
			TraverseDuration:   formatDuration(a.TraverseDuration),
			CruiseSpeed:        a.CruiseSpeed,
			HomeSpeed:          a.HomeSpeed,
			CreepDistance:      a.CreepDistance,
			TurnAround:         wheelSchema{Left: a.TurnAround.Left, Right: a.TurnAround.Right},
			TurnAroundDuration: formatDuration(a.TurnAroundDuration),
			Settle:             formatDuration(a.Settle),
		},
	}
}

func fromLayoutSchema(s layoutSchema) (domain.Layout, error) {
	bins := make([]domain.BinID, 0, len(s.Bins))
	for _, bin := range s.Bins {
		bins = append(bins, domain.BinID(bin))
	}

	slots := make(domain.SlotTable, 0, len(s.Slots))
	for _, pose := range s.Slots {
		slots = append(slots, fromPoseSchema(pose))
	}

	durations := map[string]string{
		"transfer.grip_settle":          s.Transfer.GripSettle,
		"approach.dock_duration":        s.Approach.DockDuration,
		"approach.traverse_duration":    s.Approach.TraverseDuration,
		"approach.turn_around_duration": s.Approach.TurnAroundDuration,
		"approach.settle":               s.Approach.Settle,
	}
	parsed := make(map[string]time.Duration, len(durations))
	for key, raw := range durations {
		d, err := parseDuration(raw)
		if err != nil {
			return domain.Layout{}, fmt.Errorf("decode %s: %w", key, err)
		}
		parsed[key] = d
	}

	return domain.Layout{
		Limits: domain.BatchLimits{MaxMass: s.Limits.MaxMass, MaxCount: s.Limits.MaxCount},
		Slots:  slots,
		Transfer: domain.TransferPoses{
			Pickup:     fromPoseSchema(s.Transfer.Pickup),
			Lift:       fromPoseSchema(s.Transfer.Lift),
			Carry:      fromPoseSchema(s.Transfer.Carry),
			GripClose:  s.Transfer.GripClose,
			GripOpen:   s.Transfer.GripOpen,
			ElbowTilt:  s.Transfer.ElbowTilt,
			GripSettle: parsed["transfer.grip_settle"],
		},
		Approach: domain.ApproachPlan{
			OuterThreshold:     s.Approach.OuterThreshold,
			InnerThreshold:     s.Approach.InnerThreshold,
			FastSpeed:          s.Approach.FastSpeed,
			SlowSpeed:          s.Approach.SlowSpeed,
			DockDuration:       parsed["approach.dock_duration"],
			CrossingBin:        domain.BinID(s.Approach.CrossingBin),
			CrossingThreshold:  s.Approach.CrossingThreshold,
			CrossingSpeed:      s.Approach.CrossingSpeed,
			TraverseSpeed:      s.Approach.TraverseSpeed,
			TraverseDuration:   parsed["approach.traverse_duration"],
			CruiseSpeed:        s.Approach.CruiseSpeed,
			HomeSpeed:          s.Approach.HomeSpeed,
			CreepDistance:      s.Approach.CreepDistance,
			TurnAround:         domain.WheelSpeeds{Left: s.Approach.TurnAround.Left, Right: s.Approach.TurnAround.Right},
			TurnAroundDuration: parsed["approach.turn_around_duration"],
			Settle:             parsed["approach.settle"],
		},
		Bins: bins,
	}, nil
}

func toPoseSchema(p domain.Pose) poseSchema {
	return poseSchema{X: p.X, Y: p.Y, Z: p.Z}
}

func fromPoseSchema(p poseSchema) domain.Pose {
	return domain.Pose{X: p.X, Y: p.Y, Z: p.Z}
}

func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}

	return time.ParseDuration(raw)
}

func formatDuration(value time.Duration) string {
	if value == 0 {
		return ""
	}

	return value.String()
}
