package domain

import (
	"fmt"
	"strings"
)

type BinID string

// CrossingBin is the bin nearest the loop intersection.
const CrossingBin BinID = "Bin04"

type Container struct {
	Material string
	Mass     float64
	BinID    BinID
}

func (c Container) Validate() error {
	if c.Mass < 0 {
		return fmt.Errorf("%w: negative mass %v", ErrInvalidContainer, c.Mass)
	}
	if strings.TrimSpace(string(c.BinID)) == "" {
		return fmt.Errorf("%w: bin id is required", ErrInvalidContainer)
	}

	return nil
}

func (c Container) String() string {
	if c.Material == "" {
		return fmt.Sprintf("%s %.2fg", c.BinID, c.Mass)
	}

	return fmt.Sprintf("%s %s %.2fg", c.BinID, c.Material, c.Mass)
}
