package domain

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Layout is the calibration of one workcell.
type Layout struct {
	Limits   BatchLimits
	Slots    SlotTable
	Transfer TransferPoses
	Approach ApproachPlan
	Bins     []BinID
}

func DefaultLayout() Layout {
	return Layout{
		Limits:   DefaultBatchLimits(),
		Slots:    DefaultSlotTable(),
		Transfer: DefaultTransferPoses(),
		Approach: DefaultApproachPlan(),
		Bins:     []BinID{"Bin01", "Bin02", "Bin03", "Bin04"},
	}
}

func (l Layout) Validate() error {
	if err := l.Limits.Validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	if len(l.Slots) < l.Limits.MaxCount {
		return fmt.Errorf("slots: %d slots for a batch cap of %d", len(l.Slots), l.Limits.MaxCount)
	}
	if err := l.Approach.Validate(); err != nil {
		return fmt.Errorf("approach: %w", err)
	}
	if len(l.Bins) > 0 && !l.HasBin(l.Approach.CrossingBin) {
		return fmt.Errorf("approach: crossing %w", l.unknownBin(l.Approach.CrossingBin))
	}

	return nil
}

func (l Layout) HasBin(id BinID) bool {
	for _, bin := range l.Bins {
		if bin == id {
			return true
		}
	}

	return false
}

// ResolveBin checks that id names a configured bin. An empty bin list
// accepts any id.
func (l Layout) ResolveBin(id BinID) (BinID, error) {
	if len(l.Bins) == 0 || l.HasBin(id) {
		return id, nil
	}

	return "", l.unknownBin(id)
}

func (l Layout) unknownBin(id BinID) error {
	if suggestion := l.closestBin(id); suggestion != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownBin, id, suggestion)
	}

	return fmt.Errorf("%w %q", ErrUnknownBin, id)
}

func (l Layout) closestBin(id BinID) BinID {
	target := strings.ToLower(string(id))
	best := BinID("")
	bestDistance := -1
	for _, bin := range l.Bins {
		distance := levenshtein.ComputeDistance(target, strings.ToLower(string(bin)))
		if bestDistance < 0 || distance < bestDistance {
			best = bin
			bestDistance = distance
		}
	}

	if bestDistance < 0 || bestDistance > len(target)/2 {
		return ""
	}

	return best
}
