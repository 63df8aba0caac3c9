package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	DefaultMaxMass  = 90.0
	DefaultMaxCount = 3
)

type BatchLimits struct {
	MaxMass  float64
	MaxCount int
}

func DefaultBatchLimits() BatchLimits {
	return BatchLimits{MaxMass: DefaultMaxMass, MaxCount: DefaultMaxCount}
}

func (l BatchLimits) Validate() error {
	if l.MaxMass < 0 {
		return fmt.Errorf("max mass must not be negative")
	}
	if l.MaxCount <= 0 {
		return fmt.Errorf("max count must be positive")
	}

	return nil
}

// Batch accumulates the containers loaded onto the carrier during one
// loading session. The zero value is an empty batch with no reference bin and
// admits nothing; NewBatch sets the reference.
type Batch struct {
	Reference BinID
	Items     []Container
	total     decimal.Decimal
}

func NewBatch(reference BinID) Batch {
	return Batch{Reference: reference}
}

func (b Batch) Count() int {
	return len(b.Items)
}

func (b Batch) TotalMass() float64 {
	return b.total.InexactFloat64()
}

func (b Batch) IsEmpty() bool {
	return len(b.Items) == 0
}

// CanAdmit reports whether c fits the mass budget, the count cap and the
// reference destination.
func (b Batch) CanAdmit(c Container, limits BatchLimits) bool {
	return b.rejectReason(c, limits) == ""
}

func (b *Batch) Admit(c Container, limits BatchLimits) error {
	if reason := b.rejectReason(c, limits); reason != "" {
		return fmt.Errorf("%w: %s", ErrBatchRejected, reason)
	}

	b.Items = append(b.Items, c)
	b.total = b.total.Add(decimal.NewFromFloat(c.Mass))
	return nil
}

func (b Batch) rejectReason(c Container, limits BatchLimits) string {
	if b.total.Add(decimal.NewFromFloat(c.Mass)).GreaterThan(decimal.NewFromFloat(limits.MaxMass)) {
		return fmt.Sprintf("mass %v exceeds remaining budget", c.Mass)
	}
	if len(b.Items) >= limits.MaxCount {
		return fmt.Sprintf("batch already holds %d containers", len(b.Items))
	}
	if c.BinID != b.Reference {
		return fmt.Sprintf("bin %s does not match %s", c.BinID, b.Reference)
	}

	return ""
}
