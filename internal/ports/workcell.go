package ports

import (
	"context"
	"time"

	"github.com/bnema/sortcell/internal/domain"
)

type Manipulator interface {
	MoveTo(ctx context.Context, pose domain.Pose) error
	SetGripper(ctx context.Context, position float64) error
	RotateJoint(ctx context.Context, delta float64) error
	Home(ctx context.Context) error
}

type Dispenser interface {
	NextContainer(ctx context.Context, seed int) (domain.Container, error)
	Dispense(ctx context.Context) error
	KeepAlive(ctx context.Context) error
}

// LineReading is what the line follower reports on one tick.
type LineReading struct {
	// LostSteps counts ticks spent off the guide line; any non-zero value
	// marks the line end.
	LostSteps int
	Velocity  float64
}

func (r LineReading) Lost() bool {
	return r.LostSteps > 0
}

type Carrier interface {
	SetSpeed(ctx context.Context, speed float64) error
	DriveAtVelocity(ctx context.Context, velocity float64) error
	DriveFor(ctx context.Context, duration time.Duration) error
	TravelForward(ctx context.Context, distance float64) error
	Spin(ctx context.Context, wheels domain.WheelSpeeds, duration time.Duration) error
	FollowLine(ctx context.Context, speed float64) (LineReading, error)

	EnableSensor(ctx context.Context) error
	DisableSensor(ctx context.Context) error
	ReadProximity(ctx context.Context, bin domain.BinID) (float64, error)

	EngageActuator(ctx context.Context) error
	ReleaseActuator(ctx context.Context) error
	RotateHopper(ctx context.Context, angle float64) error
}
