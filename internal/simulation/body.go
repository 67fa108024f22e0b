package simulation

import (
	"fmt"
	"image/color"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Body is a point mass in the simulation. Position and velocity are in SI
// units (meters, meters per second); the radius has no effect on the dynamics
// and is only used by the renderer.
type Body struct {
	id     string
	name   string
	mass   float64
	radius float64
	color  color.RGBA

	pos r2.Vec
	vel r2.Vec

	anchor           bool
	distanceToAnchor float64

	trajectory      []r2.Vec
	trajectoryLimit int
}

// NewBody creates a body with the given initial state. Mass and radius must
// be positive; violations are reported as *InvalidBodyError.
func NewBody(name string, pos, vel r2.Vec, mass, radius float64, col color.RGBA) (*Body, error) {
	if mass <= 0 {
		return nil, &InvalidBodyError{Name: name, Reason: fmt.Sprintf("mass must be positive, got %g", mass)}
	}
	if radius <= 0 {
		return nil, &InvalidBodyError{Name: name, Reason: fmt.Sprintf("radius must be positive, got %g", radius)}
	}
	return &Body{
		id:     fmt.Sprintf("body-%s", uuid.NewString()[:8]),
		name:   name,
		mass:   mass,
		radius: radius,
		color:  col,
		pos:    pos,
		vel:    vel,
	}, nil
}

// NewAnchorBody creates a body marked as the distance reference for all
// other bodies, conventionally the central star. A simulation accepts
// exactly one anchor.
func NewAnchorBody(name string, pos, vel r2.Vec, mass, radius float64, col color.RGBA) (*Body, error) {
	b, err := NewBody(name, pos, vel, mass, radius, col)
	if err != nil {
		return nil, err
	}
	b.anchor = true
	return b, nil
}

// ID returns the unique identifier of the body.
func (b *Body) ID() string { return b.id }

// Name returns the human-readable name of the body.
func (b *Body) Name() string { return b.name }

// Mass returns the mass in kilograms.
func (b *Body) Mass() float64 { return b.mass }

// Radius returns the display radius.
func (b *Body) Radius() float64 { return b.radius }

// Color returns the display color.
func (b *Body) Color() color.RGBA { return b.color }

// Position returns the current position in meters.
func (b *Body) Position() r2.Vec { return b.pos }

// Velocity returns the current velocity in meters per second.
func (b *Body) Velocity() r2.Vec { return b.vel }

// Anchor reports whether this body is the distance reference.
func (b *Body) Anchor() bool { return b.anchor }

// DistanceToAnchor returns the distance to the anchor in meters, as cached
// by the most recent force computation against it. Zero until the first step.
func (b *Body) DistanceToAnchor() float64 { return b.distanceToAnchor }

// Trajectory returns a copy of the recorded past positions, oldest first.
func (b *Body) Trajectory() []r2.Vec {
	out := make([]r2.Vec, len(b.trajectory))
	copy(out, b.trajectory)
	return out
}

// Attraction computes the gravitational force exerted on b by other, using
// the gravitational constant g. The magnitude g*m1*m2/d^2 is decomposed into
// components along the displacement angle. As a side effect, the distance to
// other is cached when other is the anchor.
//
// Separations below the minimum are rejected with
// *DegenerateConfigurationError rather than producing an infinite force.
func (b *Body) Attraction(other *Body, g float64) (r2.Vec, error) {
	delta := r2.Sub(other.pos, b.pos)
	d := r2.Norm(delta)
	if d < minSeparation {
		return r2.Vec{}, &DegenerateConfigurationError{BodyA: b.name, BodyB: other.name, Distance: d}
	}
	if other.anchor {
		b.distanceToAnchor = d
	}
	force := g * b.mass * other.mass / (d * d)
	theta := math.Atan2(delta.Y, delta.X)
	return r2.Vec{X: force * math.Cos(theta), Y: force * math.Sin(theta)}, nil
}

// Advance performs one Euler step of duration dt under the combined gravity
// of every other body in bodies (b itself is skipped): the net force updates
// the velocity first, the new velocity updates the position, and the new
// position is appended to the trajectory.
func (b *Body) Advance(bodies []*Body, g, dt float64) error {
	var net r2.Vec
	for _, other := range bodies {
		if other == b {
			continue
		}
		f, err := b.Attraction(other, g)
		if err != nil {
			return err
		}
		net = r2.Add(net, f)
	}

	b.vel = r2.Add(b.vel, r2.Scale(dt/b.mass, net))
	b.pos = r2.Add(b.pos, r2.Scale(dt, b.vel))
	b.recordTrajectory(b.pos)
	return nil
}

// recordTrajectory appends p, dropping the oldest points when a retention
// limit is set. Append order is preserved for the retained window.
func (b *Body) recordTrajectory(p r2.Vec) {
	b.trajectory = append(b.trajectory, p)
	if b.trajectoryLimit > 0 && len(b.trajectory) > b.trajectoryLimit {
		b.trajectory = b.trajectory[len(b.trajectory)-b.trajectoryLimit:]
	}
}

// String representation for logging.
func (b *Body) String() string {
	role := "planet"
	if b.anchor {
		role = "anchor"
	}
	return fmt.Sprintf("Body[%s] %s (%s) Pos: (%.4e, %.4e) Vel: (%.4e, %.4e) Mass: %.4e",
		b.name, b.id, role, b.pos.X, b.pos.Y, b.vel.X, b.vel.Y, b.mass)
}
