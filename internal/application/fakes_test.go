package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
	"github.com/stretchr/testify/mock"
)

func anyContext() interface{} {
	return mock.Anything
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) recordedSleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// queueDispenser hands out containers in order.
type queueDispenser struct {
	queue     []domain.Container
	seeds     []int
	dispensed int
	nextErr   error
	pingErrs  []error
	pings     int
	mu        sync.Mutex
}

func (d *queueDispenser) NextContainer(ctx context.Context, seed int) (domain.Container, error) {
	if err := ctx.Err(); err != nil {
		return domain.Container{}, err
	}
	d.seeds = append(d.seeds, seed)
	if d.nextErr != nil {
		return domain.Container{}, d.nextErr
	}
	if len(d.queue) == 0 {
		return domain.Container{}, errors.New("dispenser queue exhausted")
	}
	next := d.queue[0]
	d.queue = d.queue[1:]
	return next, nil
}

func (d *queueDispenser) Dispense(ctx context.Context) error {
	d.dispensed++
	return ctx.Err()
}

func (d *queueDispenser) KeepAlive(ctx context.Context) error {
	d.mu.Lock()
	var err error
	if d.pings < len(d.pingErrs) {
		err = d.pingErrs[d.pings]
	}
	d.pings++
	d.mu.Unlock()

	return err
}

func (d *queueDispenser) pingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pings
}

type recordingArm struct {
	calls   []string
	failOn  string
	failErr error
}

func (a *recordingArm) record(call string) error {
	a.calls = append(a.calls, call)
	if a.failOn != "" && call == a.failOn {
		return a.failErr
	}
	return nil
}

func (a *recordingArm) MoveTo(_ context.Context, pose domain.Pose) error {
	return a.record("move " + pose.String())
}

func (a *recordingArm) SetGripper(_ context.Context, position float64) error {
	return a.record(fmt.Sprintf("grip %.0f", position))
}

func (a *recordingArm) RotateJoint(_ context.Context, delta float64) error {
	return a.record(fmt.Sprintf("elbow %.0f", delta))
}

func (a *recordingArm) Home(context.Context) error {
	return a.record("home")
}

// scriptedCarrier replays proximity and line readings and records every
// command it receives. Each velocity command advances the clock by tick.
type scriptedCarrier struct {
	clock *fakeClock
	tick  time.Duration

	proximity map[domain.BinID][]float64
	lostAfter int
	lineTicks int

	events     []string
	velocities []float64
	sensorOn   bool
	actuatorOn bool

	failOn  string
	failErr error
}

var _ ports.Carrier = (*scriptedCarrier)(nil)

func newScriptedCarrier(clock *fakeClock) *scriptedCarrier {
	return &scriptedCarrier{
		clock:     clock,
		tick:      50 * time.Millisecond,
		proximity: map[domain.BinID][]float64{},
		lostAfter: 3,
	}
}

func (c *scriptedCarrier) record(event string) error {
	c.events = append(c.events, event)
	if c.failOn != "" && event == c.failOn {
		return c.failErr
	}
	return nil
}

func (c *scriptedCarrier) SetSpeed(_ context.Context, speed float64) error {
	return c.record(fmt.Sprintf("speed %.2f", speed))
}

func (c *scriptedCarrier) DriveAtVelocity(ctx context.Context, velocity float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.velocities = append(c.velocities, velocity)
	c.clock.advance(c.tick)
	return nil
}

func (c *scriptedCarrier) DriveFor(_ context.Context, duration time.Duration) error {
	c.clock.advance(duration)
	return c.record("drive " + duration.String())
}

func (c *scriptedCarrier) TravelForward(_ context.Context, distance float64) error {
	return c.record(fmt.Sprintf("forward %.3f", distance))
}

func (c *scriptedCarrier) Spin(_ context.Context, wheels domain.WheelSpeeds, duration time.Duration) error {
	c.clock.advance(duration)
	return c.record(fmt.Sprintf("spin %.2f/%.2f %s", wheels.Left, wheels.Right, duration))
}

func (c *scriptedCarrier) FollowLine(ctx context.Context, speed float64) (ports.LineReading, error) {
	if err := ctx.Err(); err != nil {
		return ports.LineReading{}, err
	}
	c.lineTicks++
	reading := ports.LineReading{Velocity: speed}
	if c.lostAfter > 0 && c.lineTicks >= c.lostAfter {
		reading.LostSteps = 1
	}
	return reading, nil
}

func (c *scriptedCarrier) EnableSensor(context.Context) error {
	c.sensorOn = true
	return c.record("sensor on")
}

func (c *scriptedCarrier) DisableSensor(context.Context) error {
	c.sensorOn = false
	return c.record("sensor off")
}

// ReadProximity pops the next scripted reading for bin. The last reading
// repeats once the script runs out.
func (c *scriptedCarrier) ReadProximity(ctx context.Context, bin domain.BinID) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	script := c.proximity[bin]
	if len(script) == 0 {
		return 0, fmt.Errorf("no proximity script for %s", bin)
	}
	reading := script[0]
	if len(script) > 1 {
		c.proximity[bin] = script[1:]
	}
	c.events = append(c.events, fmt.Sprintf("read %s %.3f", bin, reading))
	return reading, nil
}

func (c *scriptedCarrier) EngageActuator(context.Context) error {
	c.actuatorOn = true
	return c.record("actuator on")
}

func (c *scriptedCarrier) ReleaseActuator(context.Context) error {
	c.actuatorOn = false
	return c.record("actuator off")
}

func (c *scriptedCarrier) RotateHopper(_ context.Context, angle float64) error {
	return c.record(fmt.Sprintf("hopper %.0f", angle))
}

type recordingDumper struct {
	carrier *scriptedCarrier
	calls   int
	err     error
}

func (d *recordingDumper) Dump(context.Context) error {
	d.calls++
	if d.carrier != nil {
		d.carrier.events = append(d.carrier.events, "dump")
	}
	return d.err
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+" "+msg)
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.log("debug", msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.log("info", msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.log("warn", msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.log("error", msg) }

func (l *recordingLogger) count(entry string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e == entry {
			n++
		}
	}
	return n
}
