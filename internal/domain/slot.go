package domain

import (
	"fmt"
	"time"
)

type Pose struct {
	X float64
	Y float64
	Z float64
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}

// Slot is a drop pose above the carrier hopper.
type Slot struct {
	Index int
	Pose  Pose
}

type SlotTable []Pose

func DefaultSlotTable() SlotTable {
	return SlotTable{
		{X: -0.1433, Y: -0.3938, Z: 0.6197},
		{X: 0.0, Y: -0.3819, Z: 0.6216},
		{X: 0.1053, Y: -0.3928, Z: 0.6207},
	}
}

// Assign returns the slot reserved for the index-th container of a batch.
func (t SlotTable) Assign(index int) (Slot, error) {
	if index < 0 || index >= len(t) {
		return Slot{}, fmt.Errorf("%w: index %d, table has %d slots", ErrNoFreeSlot, index, len(t))
	}

	return Slot{Index: index, Pose: t[index]}, nil
}

// TransferPoses are the manipulator waypoints of one pick-transfer-place cycle.
type TransferPoses struct {
	Pickup     Pose
	Lift       Pose
	Carry      Pose
	GripClose  float64
	GripOpen   float64
	ElbowTilt  float64
	GripSettle time.Duration
}

func DefaultTransferPoses() TransferPoses {
	return TransferPoses{
		Pickup:     Pose{X: 0.6791, Y: 0.0, Z: 0.2684},
		Lift:       Pose{X: 0.372, Y: 0.0, Z: 0.241},
		Carry:      Pose{X: 0.3819, Y: 0.0, Z: 0.6216},
		GripClose:  45,
		GripOpen:   -27,
		ElbowTilt:  27,
		GripSettle: 250 * time.Millisecond,
	}
}
