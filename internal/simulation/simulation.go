// Package simulation implements a Newtonian N-body gravity simulation:
// pairwise forces between point masses, explicit Euler integration at a
// fixed time step, and per-body trajectory history. Everything is in SI
// units; converting to display coordinates is the renderer's job.
package simulation

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Physical and numerical constants of the reference configuration.
const (
	// G is the Newtonian gravitational constant in SI units.
	G = 6.67428e-11

	// DefaultTimestep is one simulated day in seconds.
	DefaultTimestep = 86400.0

	// AU is one astronomical unit in meters.
	AU = 1.496e11

	// minSeparation is the smallest body separation with a well-defined
	// force. Planetary separations are at least 1e10 m, so the guard only
	// fires on broken input.
	minSeparation = 1.0
)

// Config holds the constants of one simulation run. Multiple simulations
// with different constants can coexist.
type Config struct {
	// G is the gravitational constant. Defaults to the SI value when zero.
	G float64
	// Dt is the simulated seconds per step. Defaults to one day when zero.
	Dt float64
	// TrajectoryLimit caps the retained trajectory points per body.
	// Zero keeps the full history.
	TrajectoryLimit int
}

// DefaultConfig returns the reference configuration: SI gravitational
// constant, one simulated day per step, unbounded trajectories.
func DefaultConfig() Config {
	return Config{G: G, Dt: DefaultTimestep}
}

// Simulation owns an ordered set of bodies and advances them in lockstep.
type Simulation struct {
	cfg    Config
	bodies []*Body
	anchor *Body

	elapsed float64
	steps   int
}

// NewSimulation creates a simulation over the given bodies. Exactly one body
// must be the anchor; zero or negative constants fall back to the defaults.
func NewSimulation(cfg Config, bodies []*Body) (*Simulation, error) {
	if len(bodies) == 0 {
		return nil, fmt.Errorf("simulation needs at least one body")
	}
	if cfg.G == 0 {
		cfg.G = G
	}
	if cfg.Dt == 0 {
		cfg.Dt = DefaultTimestep
	}
	if cfg.G <= 0 || cfg.Dt <= 0 {
		return nil, fmt.Errorf("constants must be positive: G=%g dt=%g", cfg.G, cfg.Dt)
	}
	if cfg.TrajectoryLimit < 0 {
		return nil, fmt.Errorf("trajectory limit must be non-negative, got %d", cfg.TrajectoryLimit)
	}

	var anchor *Body
	for _, b := range bodies {
		if !b.anchor {
			continue
		}
		if anchor != nil {
			return nil, fmt.Errorf("bodies %q and %q are both anchors, want exactly one", anchor.name, b.name)
		}
		anchor = b
	}
	if anchor == nil {
		return nil, fmt.Errorf("no anchor body designated, want exactly one")
	}

	for _, b := range bodies {
		b.trajectoryLimit = cfg.TrajectoryLimit
	}

	return &Simulation{cfg: cfg, bodies: bodies, anchor: anchor}, nil
}

// Step advances every body by one time step.
//
// Bodies are updated sequentially in collection order: each body's force sum
// reads the current positions at that moment, so bodies later in the order
// see the post-step positions of earlier ones. This reproduces the reference
// trajectories exactly; a frozen-snapshot update would drift from them over
// many steps.
//
// A degenerate configuration aborts the step; bodies after the failing one
// are left unstepped for this tick.
func (s *Simulation) Step() error {
	for _, b := range s.bodies {
		if err := b.Advance(s.bodies, s.cfg.G, s.cfg.Dt); err != nil {
			return fmt.Errorf("step %d: %w", s.steps+1, err)
		}
	}
	s.steps++
	s.elapsed += s.cfg.Dt
	return nil
}

// Bodies returns the ordered body collection. The slice is shared with the
// simulation; callers must not mutate it.
func (s *Simulation) Bodies() []*Body { return s.bodies }

// Anchor returns the designated reference body.
func (s *Simulation) Anchor() *Body { return s.anchor }

// Config returns the constants of this run.
func (s *Simulation) Config() Config { return s.cfg }

// Time returns the elapsed simulated time in seconds.
func (s *Simulation) Time() float64 { return s.elapsed }

// Steps returns the number of completed steps.
func (s *Simulation) Steps() int { return s.steps }

// BodyState is a read-only copy of one body's renderable state.
type BodyState struct {
	ID               string
	Name             string
	Position         r2.Vec
	Velocity         r2.Vec
	Mass             float64
	Radius           float64
	Color            color.RGBA
	Anchor           bool
	DistanceToAnchor float64
	Trajectory       []r2.Vec
}

// Snapshot returns a deep copy of every body's current state in collection
// order. Without an intervening Step, repeated calls return identical data.
func (s *Simulation) Snapshot() []BodyState {
	out := make([]BodyState, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = BodyState{
			ID:               b.id,
			Name:             b.name,
			Position:         b.pos,
			Velocity:         b.vel,
			Mass:             b.mass,
			Radius:           b.radius,
			Color:            b.color,
			Anchor:           b.anchor,
			DistanceToAnchor: b.distanceToAnchor,
			Trajectory:       b.Trajectory(),
		}
	}
	return out
}

// Run executes numSteps steps, printing the state before and after. Intended
// for headless console runs.
func (s *Simulation) Run(numSteps int) error {
	fmt.Printf("Starting simulation: bodies=%d, G=%g, dt=%gs\n", len(s.bodies), s.cfg.G, s.cfg.Dt)
	s.PrintState()

	for i := 0; i < numSteps; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}

	fmt.Printf("\n--- Simulation finished after %d steps ---\n", numSteps)
	s.PrintState()
	return nil
}

// PrintState prints the current state of all bodies and the conserved
// quantities.
func (s *Simulation) PrintState() {
	fmt.Println("--- Current simulation state ---")
	fmt.Printf("Time: %.1f days (%d steps)\n", s.elapsed/DefaultTimestep, s.steps)
	for _, b := range s.bodies {
		line := fmt.Sprintf("  %s", b)
		if !b.anchor && b.distanceToAnchor > 0 {
			line += fmt.Sprintf(" DistToAnchor: %.1f km", b.distanceToAnchor/1000)
		}
		if !b.anchor && len(b.trajectory) > 1 {
			mean, dev := MeanOrbitalRadius(b.trajectory, s.anchor.pos)
			line += fmt.Sprintf(" MeanOrbitR: %.4f AU (sd %.3e m)", mean/AU, dev)
		}
		fmt.Println(line)
	}
	fmt.Printf("Energy: %.6e J, Angular momentum: %.6e kg m^2/s\n", s.TotalEnergy(), s.AngularMomentum())
	fmt.Println("--------------------------------")
}
