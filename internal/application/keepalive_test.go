package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/sortcell/internal/adapters/workcell/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepAliveKeepsTickingAfterFailures(t *testing.T) {
	t.Parallel()

	transient := errors.New("connection reset")
	dispenser := &queueDispenser{pingErrs: []error{transient, nil, transient}}
	logger := &recordingLogger{}
	keepAlive := NewKeepAlive(dispenser, 5*time.Millisecond, nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- keepAlive.Run(ctx) }()

	require.Eventually(t, func() bool {
		return keepAlive.Failures() == 2 && dispenser.pingCount() >= 4
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, keepAlive.Pings(), int64(4))
	assert.Equal(t, int64(2), keepAlive.Failures())
	assert.Equal(t, 2, logger.count("warn keep-alive failed"))
}

func TestKeepAliveFollowsVirtualClock(t *testing.T) {
	t.Parallel()

	clock := sim.NewClock(time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC))
	dispenser := &queueDispenser{}
	keepAlive := NewKeepAlive(dispenser, time.Hour, clock, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- keepAlive.Run(ctx) }()

	require.Eventually(t, func() bool {
		clock.Advance(time.Hour)
		return dispenser.pingCount() >= 3
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, keepAlive.Pings(), int64(3))
}

func TestKeepAliveDefaultsInterval(t *testing.T) {
	t.Parallel()

	keepAlive := NewKeepAlive(&queueDispenser{}, 0, nil, nil)
	assert.Equal(t, DefaultKeepAliveInterval, keepAlive.interval)
}

func TestRunSupervisedStopsKeepAliveWhenWorkReturns(t *testing.T) {
	t.Parallel()

	dispenser := &queueDispenser{}
	keepAlive := NewKeepAlive(dispenser, 5*time.Millisecond, nil, nil)

	err := RunSupervised(context.Background(), keepAlive, func(ctx context.Context) error {
		for dispenser.pingCount() < 2 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Millisecond):
			}
		}
		return nil
	})
	require.NoError(t, err)

	pings := dispenser.pingCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, pings, dispenser.pingCount())
}

func TestRunSupervisedReturnsWorkError(t *testing.T) {
	t.Parallel()

	boom := errors.New("arm fault")
	keepAlive := NewKeepAlive(&queueDispenser{}, time.Hour, nil, nil)

	err := RunSupervised(context.Background(), keepAlive, func(context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRunSupervisedWithoutKeepAlive(t *testing.T) {
	t.Parallel()

	called := false
	err := RunSupervised(context.Background(), nil, func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
