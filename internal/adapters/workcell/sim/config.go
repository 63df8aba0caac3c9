package sim

import (
	"time"

	"github.com/bnema/sortcell/internal/domain"
)

// BinSite places a bin beside the guide line.
type BinSite struct {
	Start float64
	Width float64
}

type Config struct {
	// TrackLength is the guide line length. The home bay joins both ends.
	TrackLength float64
	// LineEnd is how far before the home wall the line follower loses the line.
	LineEnd     float64
	Bins        map[domain.BinID]BinSite
	BinOffset   float64
	SensorRange float64
	Tick        time.Duration
	DumpAngle   float64
	Catalog     []domain.Container
	// KeepAliveFailEvery makes every n-th keep-alive ping fail. Zero never fails.
	KeepAliveFailEvery int
}

func DefaultConfig() Config {
	return Config{
		TrackLength: 8.0,
		LineEnd:     0.179,
		Bins: map[domain.BinID]BinSite{
			"Bin01": {Start: 1.0, Width: 0.4},
			"Bin02": {Start: 2.5, Width: 0.4},
			"Bin03": {Start: 4.0, Width: 0.4},
			"Bin04": {Start: 5.5, Width: 0.4},
		},
		BinOffset:   0.1,
		SensorRange: 2.5,
		Tick:        50 * time.Millisecond,
		DumpAngle:   45,
		Catalog: []domain.Container{
			{Material: "metal", Mass: 15, BinID: "Bin01"},
			{Material: "paper", Mass: 10, BinID: "Bin02"},
			{Material: "plastic", Mass: 9.25, BinID: "Bin03"},
			{Material: "metal", Mass: 42.5, BinID: "Bin01"},
			{Material: "plastic", Mass: 35, BinID: "Bin04"},
		},
	}
}
