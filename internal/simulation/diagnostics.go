package simulation

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// TotalEnergy returns the kinetic plus pairwise gravitational potential
// energy of the system, in joules. Exactly conserved by the true dynamics;
// the Euler integrator lets it drift slowly, which makes it a useful
// health indicator.
func (s *Simulation) TotalEnergy() float64 {
	var ke, pe float64
	for i, a := range s.bodies {
		v := a.vel
		ke += 0.5 * a.mass * (v.X*v.X + v.Y*v.Y)
		for _, b := range s.bodies[i+1:] {
			d := r2.Norm(r2.Sub(b.pos, a.pos))
			if d < minSeparation {
				d = minSeparation
			}
			pe -= s.cfg.G * a.mass * b.mass / d
		}
	}
	return ke + pe
}

// AngularMomentum returns the total angular momentum about the origin,
// in kg m^2/s.
func (s *Simulation) AngularMomentum() float64 {
	var l float64
	for _, b := range s.bodies {
		l += b.mass * (b.pos.X*b.vel.Y - b.pos.Y*b.vel.X)
	}
	return l
}

// MeanOrbitalRadius returns the mean and standard deviation of the distance
// from center over the given trajectory. A near-zero deviation indicates a
// near-circular orbit.
func MeanOrbitalRadius(trajectory []r2.Vec, center r2.Vec) (mean, stddev float64) {
	if len(trajectory) == 0 {
		return 0, 0
	}
	radii := make([]float64, len(trajectory))
	for i, p := range trajectory {
		radii[i] = r2.Norm(r2.Sub(p, center))
	}
	mean = stat.Mean(radii, nil)
	if len(radii) > 1 {
		stddev = stat.StdDev(radii, nil)
	}
	return mean, stddev
}
