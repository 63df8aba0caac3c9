package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/sortcell/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimWorkcellKeepAliveRunsOnVirtualTime(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SORTCELL_SIM_KEEPALIVE_FAIL_EVERY", "1")
	t.Setenv("SORTCELL_KEEPALIVE_INTERVAL", "1s")

	app, err := wireApp()
	require.NoError(t, err)
	assert.Equal(t, 1, app.settings.SimKeepAliveFailEvery)

	cell, err := app.newSimWorkcell(context.Background(), ports.NopLogger{}, workcellOptions{Start: simHomePosition})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cell.keepAlive.Run(ctx) }()

	require.Eventually(t, func() bool {
		cell.cell.Clock().Advance(time.Second)
		return cell.keepAlive.Failures() >= 2
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, cell.keepAlive.Pings(), cell.keepAlive.Failures())
	assert.GreaterOrEqual(t, cell.cell.Snapshot().Pings, 2)
}

func TestWireRejectsNegativeKeepAliveFailSchedule(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SORTCELL_SIM_KEEPALIVE_FAIL_EVERY", "-2")

	_, err := wireApp()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sim.keepalive_fail_every must not be negative")
}
