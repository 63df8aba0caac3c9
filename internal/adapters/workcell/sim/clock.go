package sim

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/sortcell/internal/ports"
)

// Clock is virtual time. Sleeping advances it instantly, and tickers fire as
// advances cross their period.
type Clock struct {
	tickers map[*ticker]struct{}
	now     time.Time
	mu      sync.Mutex
	elapsed time.Duration
}

var (
	_ ports.Clock      = (*Clock)(nil)
	_ ports.TickSource = (*Clock)(nil)
)

func NewClock(start time.Time) *Clock {
	return &Clock{now: start, tickers: map[*ticker]struct{}{}}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Advance(d)
	return nil
}

// Advance moves time forward by d. Each due ticker gets at most one tick per
// advance and none if its previous tick is still unread.
func (c *Clock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
	c.elapsed += d

	for t := range c.tickers {
		if c.now.Before(t.next) {
			continue
		}
		select {
		case t.c <- c.now:
		default:
		}
		missed := c.now.Sub(t.next) / t.period
		t.next = t.next.Add((missed + 1) * t.period)
	}
}

func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.elapsed
}

// NewTicker fires every d of virtual time. It panics on a non-positive d
// like time.NewTicker.
func (c *Clock) NewTicker(d time.Duration) ports.Ticker {
	if d <= 0 {
		panic("sim: non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := &ticker{clock: c, c: make(chan time.Time, 1), period: d, next: c.now.Add(d)}
	c.tickers[t] = struct{}{}
	return t
}

type ticker struct {
	clock  *Clock
	c      chan time.Time
	next   time.Time
	period time.Duration
}

func (t *ticker) C() <-chan time.Time {
	return t.c
}

func (t *ticker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	delete(t.clock.tickers, t)
}
