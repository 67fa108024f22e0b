// Package scenario builds simulations from JSON scenario files or from the
// built-in solar-system preset.
package scenario

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r2"

	"planet-sim/internal/simulation"
)

// File is the on-disk scenario format.
type File struct {
	Name            string       `json:"name"`
	G               float64      `json:"g,omitempty"`
	Dt              float64      `json:"dt,omitempty"`
	TrajectoryLimit int          `json:"trajectory_limit,omitempty"`
	AutoOrbit       bool         `json:"auto_orbit,omitempty"`
	Bodies          []BodyConfig `json:"bodies"`
}

// BodyConfig describes one body in a scenario file. Color is a "#rrggbb"
// hex string; positions are meters, velocities meters per second.
type BodyConfig struct {
	Name   string     `json:"name"`
	Mass   float64    `json:"mass"`
	Pos    [2]float64 `json:"pos"`
	Vel    [2]float64 `json:"vel"`
	Radius float64    `json:"radius"`
	Color  string     `json:"color"`
	Anchor bool       `json:"anchor,omitempty"`
}

// Load reads a scenario file and builds the simulation it describes.
func Load(path string) (*simulation.Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return Build(f)
}

// Build constructs a simulation from a scenario description.
func Build(f File) (*simulation.Simulation, error) {
	if f.AutoOrbit {
		OrbitalVelocities(&f)
	}

	bodies := make([]*simulation.Body, 0, len(f.Bodies))
	for _, bc := range f.Bodies {
		pos := r2.Vec{X: bc.Pos[0], Y: bc.Pos[1]}
		vel := r2.Vec{X: bc.Vel[0], Y: bc.Vel[1]}
		col := parseColor(bc.Color)

		var b *simulation.Body
		var err error
		if bc.Anchor {
			b, err = simulation.NewAnchorBody(bc.Name, pos, vel, bc.Mass, bc.Radius, col)
		} else {
			b, err = simulation.NewBody(bc.Name, pos, vel, bc.Mass, bc.Radius, col)
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", f.Name, err)
		}
		bodies = append(bodies, b)
	}

	cfg := simulation.Config{G: f.G, Dt: f.Dt, TrajectoryLimit: f.TrajectoryLimit}
	sim, err := simulation.NewSimulation(cfg, bodies)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", f.Name, err)
	}
	return sim, nil
}

// OrbitalVelocities seeds a circular-orbit velocity sqrt(G*M/r) around the
// anchor, perpendicular to the radius, for every non-anchor body whose
// initial velocity is zero. Bodies with an explicit velocity are left alone.
func OrbitalVelocities(f *File) {
	var anchor *BodyConfig
	for i := range f.Bodies {
		if f.Bodies[i].Anchor {
			anchor = &f.Bodies[i]
			break
		}
	}
	if anchor == nil {
		return
	}

	g := f.G
	if g == 0 {
		g = simulation.G
	}
	for i := range f.Bodies {
		b := &f.Bodies[i]
		if b.Anchor || b.Vel[0] != 0 || b.Vel[1] != 0 {
			continue
		}
		dx := b.Pos[0] - anchor.Pos[0]
		dy := b.Pos[1] - anchor.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(g * anchor.Mass / r)
		b.Vel[0] = -dy / r * v
		b.Vel[1] = dx / r * v
	}
}

// SolarSystem returns the reference scenario: the Sun as anchor and the four
// inner planets at their orbital radii and speeds.
func SolarSystem() File {
	return File{
		Name: "inner solar system",
		Dt:   simulation.DefaultTimestep,
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1.98892e30, Pos: [2]float64{0, 0}, Radius: 30, Color: "#ffff00", Anchor: true},
			{Name: "mercury", Mass: 3.30e23, Pos: [2]float64{0.387 * simulation.AU, 0}, Vel: [2]float64{0, -47.4e3}, Radius: 8, Color: "#504e51"},
			{Name: "venus", Mass: 4.8685e24, Pos: [2]float64{0.723 * simulation.AU, 0}, Vel: [2]float64{0, -35.02e3}, Radius: 14, Color: "#ffffff"},
			{Name: "earth", Mass: 5.9742e24, Pos: [2]float64{-1 * simulation.AU, 0}, Vel: [2]float64{0, 29.783e3}, Radius: 16, Color: "#6495ed"},
			{Name: "mars", Mass: 6.39e23, Pos: [2]float64{-1.524 * simulation.AU, 0}, Vel: [2]float64{0, 24.077e3}, Radius: 12, Color: "#bc2732"},
		},
	}
}

// parseColor parses a "#rrggbb" hex color, falling back to a neutral gray.
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{R: r, G: g, B: b, A: 255}
		}
	}
	return color.RGBA{R: 200, G: 200, B: 200, A: 255}
}
