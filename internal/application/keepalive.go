package application

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bnema/sortcell/internal/ports"
	"golang.org/x/sync/errgroup"
)

const DefaultKeepAliveInterval = 2 * time.Second

// KeepAlive pings the dispenser on a fixed interval. Ping failures are
// logged and never stop the task.
type KeepAlive struct {
	dispenser ports.Dispenser
	ticks     ports.TickSource
	logger    ports.Logger
	interval  time.Duration

	pings    atomic.Int64
	failures atomic.Int64
}

// NewKeepAlive pings every interval as measured by ticks. A nil ticks uses
// wall-clock time.
func NewKeepAlive(dispenser ports.Dispenser, interval time.Duration, ticks ports.TickSource, logger ports.Logger) *KeepAlive {
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}
	if ticks == nil {
		ticks = ports.SystemClock{}
	}
	if logger == nil {
		logger = ports.NopLogger{}
	}

	return &KeepAlive{dispenser: dispenser, ticks: ticks, interval: interval, logger: logger}
}

func (k *KeepAlive) Run(ctx context.Context) error {
	ticker := k.ticks.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C():
			k.pings.Add(1)
			if err := k.dispenser.KeepAlive(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				k.failures.Add(1)
				k.logger.Warn("keep-alive failed", "error", err)
			}
		}
	}
}

func (k *KeepAlive) Pings() int64 {
	return k.pings.Load()
}

func (k *KeepAlive) Failures() int64 {
	return k.failures.Load()
}

// RunSupervised runs work alongside keepAlive. The keep-alive stops as soon
// as work returns.
func RunSupervised(ctx context.Context, keepAlive *KeepAlive, work func(context.Context) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	workCtx, stop := context.WithCancel(groupCtx)
	defer stop()

	group.Go(func() error {
		defer stop()
		return work(workCtx)
	})
	if keepAlive != nil {
		group.Go(func() error {
			return keepAlive.Run(workCtx)
		})
	}

	return group.Wait()
}
