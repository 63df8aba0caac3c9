// Package sim is an in-process workcell: a manipulator, a dispensing table
// and a line-following carrier on a one-dimensional loop.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
)

// FloorBin collects containers dumped away from any bin.
const FloorBin domain.BinID = "floor"

var (
	ErrSensorDisabled   = errors.New("proximity sensor disabled")
	ErrActuatorReleased = errors.New("hopper actuator not engaged")
	ErrTableEmpty       = errors.New("no container on table")
	ErrUnknownSeed      = errors.New("unknown container seed")
	ErrTransient        = errors.New("transient connection reset")
)

type State struct {
	Position    float64
	AtHome      bool
	Speed       float64
	SensorOn    bool
	ActuatorOn  bool
	HopperAngle float64
	ArmPose     domain.Pose
	OnTable     *domain.Container
	Loaded      []domain.Container
	Delivered   map[domain.BinID][]domain.Container
	Pings       int
}

type Workcell struct {
	mu    sync.Mutex
	cfg   Config
	clock *Clock

	position    float64
	speed       float64
	sensorOn    bool
	actuatorOn  bool
	hopperAngle float64

	armPose  domain.Pose
	holding  *domain.Container
	onTable  *domain.Container
	pending  *domain.Container
	loaded   []domain.Container
	delivery map[domain.BinID][]domain.Container
	pings    int
}

var (
	_ ports.Manipulator = (*Workcell)(nil)
	_ ports.Dispenser   = (*Workcell)(nil)
	_ ports.Carrier     = (*Workcell)(nil)
)

// New places the carrier at start along the loop.
func New(cfg Config, clock *Clock, start float64) *Workcell {
	if clock == nil {
		clock = NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	}

	return &Workcell{
		cfg:      cfg,
		clock:    clock,
		position: clampTrack(start, cfg.TrackLength),
		speed:    0.1,
		delivery: map[domain.BinID][]domain.Container{},
	}
}

func (w *Workcell) Clock() *Clock {
	return w.clock
}

func (w *Workcell) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	delivered := make(map[domain.BinID][]domain.Container, len(w.delivery))
	for bin, items := range w.delivery {
		delivered[bin] = append([]domain.Container(nil), items...)
	}

	var onTable *domain.Container
	if w.onTable != nil {
		c := *w.onTable
		onTable = &c
	}

	return State{
		Position:    w.position,
		AtHome:      w.inHomeBay(),
		Speed:       w.speed,
		SensorOn:    w.sensorOn,
		ActuatorOn:  w.actuatorOn,
		HopperAngle: w.hopperAngle,
		ArmPose:     w.armPose,
		OnTable:     onTable,
		Loaded:      append([]domain.Container(nil), w.loaded...),
		Delivered:   delivered,
		Pings:       w.pings,
	}
}

// Manipulator

func (w *Workcell) MoveTo(ctx context.Context, pose domain.Pose) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.armPose = pose
	return nil
}

func (w *Workcell) SetGripper(ctx context.Context, position float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case position > 0 && w.holding == nil:
		if w.onTable == nil {
			return ErrTableEmpty
		}
		w.holding = w.onTable
		w.onTable = nil
	case position < 0 && w.holding != nil:
		w.loaded = append(w.loaded, *w.holding)
		w.holding = nil
	}

	return nil
}

func (w *Workcell) RotateJoint(ctx context.Context, _ float64) error {
	return ctx.Err()
}

func (w *Workcell) Home(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.armPose = domain.Pose{}
	return nil
}

// Dispenser

func (w *Workcell) NextContainer(ctx context.Context, seed int) (domain.Container, error) {
	if err := ctx.Err(); err != nil {
		return domain.Container{}, err
	}
	if seed < 1 || seed > len(w.cfg.Catalog) {
		return domain.Container{}, fmt.Errorf("%w %d", ErrUnknownSeed, seed)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	c := w.cfg.Catalog[seed-1]
	w.pending = &c
	return c, nil
}

func (w *Workcell) Dispense(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return errors.New("no container properties drawn")
	}
	w.onTable = w.pending
	w.pending = nil
	return nil
}

func (w *Workcell) KeepAlive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pings++
	if w.cfg.KeepAliveFailEvery > 0 && w.pings%w.cfg.KeepAliveFailEvery == 0 {
		return ErrTransient
	}
	return nil
}

// Carrier

func (w *Workcell) SetSpeed(ctx context.Context, speed float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.speed = speed
	return nil
}

func (w *Workcell) DriveAtVelocity(ctx context.Context, velocity float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	w.advance(velocity * w.cfg.Tick.Seconds())
	w.mu.Unlock()

	w.clock.Advance(w.cfg.Tick)
	return nil
}

func (w *Workcell) DriveFor(ctx context.Context, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	w.advance(w.speed * duration.Seconds())
	w.mu.Unlock()

	w.clock.Advance(duration)
	return nil
}

func (w *Workcell) TravelForward(ctx context.Context, distance float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	w.advance(distance)
	speed := w.speed
	w.mu.Unlock()

	if speed > 0 {
		w.clock.Advance(time.Duration(distance / speed * float64(time.Second)))
	}
	return nil
}

// Spin turns the carrier in place. Turning inside the home bay faces it back
// onto the start of the guide line.
func (w *Workcell) Spin(ctx context.Context, _ domain.WheelSpeeds, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	if w.inHomeBay() {
		w.position = 0
	}
	w.mu.Unlock()

	w.clock.Advance(duration)
	return nil
}

func (w *Workcell) FollowLine(ctx context.Context, speed float64) (ports.LineReading, error) {
	if err := ctx.Err(); err != nil {
		return ports.LineReading{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	reading := ports.LineReading{Velocity: speed}
	if w.position >= w.cfg.TrackLength-w.cfg.LineEnd {
		reading.LostSteps = 1
	}
	return reading, nil
}

func (w *Workcell) EnableSensor(ctx context.Context) error {
	return w.setFlag(ctx, &w.sensorOn, true)
}

func (w *Workcell) DisableSensor(ctx context.Context) error {
	return w.setFlag(ctx, &w.sensorOn, false)
}

func (w *Workcell) ReadProximity(ctx context.Context, bin domain.BinID) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.sensorOn {
		return 0, ErrSensorDisabled
	}
	site, ok := w.cfg.Bins[bin]
	if !ok {
		return 0, fmt.Errorf("%w %q", domain.ErrUnknownBin, bin)
	}

	distance := math.Hypot(w.cfg.BinOffset, gap(site, w.position))
	return math.Min(distance, w.cfg.SensorRange), nil
}

func (w *Workcell) EngageActuator(ctx context.Context) error {
	return w.setFlag(ctx, &w.actuatorOn, true)
}

func (w *Workcell) ReleaseActuator(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.actuatorOn = false
	w.hopperAngle = 0
	return nil
}

func (w *Workcell) RotateHopper(ctx context.Context, angle float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.actuatorOn {
		return ErrActuatorReleased
	}
	w.hopperAngle = angle

	if angle >= w.cfg.DumpAngle && len(w.loaded) > 0 {
		bin := w.binBeside()
		w.delivery[bin] = append(w.delivery[bin], w.loaded...)
		w.loaded = nil
	}
	return nil
}

func (w *Workcell) setFlag(ctx context.Context, flag *bool, value bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	*flag = value
	return nil
}

func (w *Workcell) advance(distance float64) {
	if distance <= 0 {
		return
	}
	w.position = clampTrack(w.position+distance, w.cfg.TrackLength)
}

func (w *Workcell) inHomeBay() bool {
	return w.position >= w.cfg.TrackLength-w.cfg.LineEnd
}

func (w *Workcell) binBeside() domain.BinID {
	for bin, site := range w.cfg.Bins {
		if gap(site, w.position) == 0 {
			return bin
		}
	}
	return FloorBin
}

func gap(site BinSite, position float64) float64 {
	switch {
	case position < site.Start:
		return site.Start - position
	case position > site.Start+site.Width:
		return position - (site.Start + site.Width)
	default:
		return 0
	}
}

func clampTrack(position, length float64) float64 {
	return math.Max(0, math.Min(position, length))
}
