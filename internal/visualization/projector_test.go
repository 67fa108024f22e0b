package visualization

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"planet-sim/internal/simulation"
)

func TestScaleProjector(t *testing.T) {
	p := NewScaleProjector(250, 800, 800)

	tests := []struct {
		name  string
		world r2.Vec
		wantX float64
		wantY float64
	}{
		{name: "origin at center", world: r2.Vec{}, wantX: 400, wantY: 400},
		{name: "one AU left", world: r2.Vec{X: -simulation.AU}, wantX: 150, wantY: 400},
		{name: "one AU down", world: r2.Vec{Y: simulation.AU}, wantX: 400, wantY: 650},
		{name: "half AU diagonal", world: r2.Vec{X: 0.5 * simulation.AU, Y: -0.5 * simulation.AU}, wantX: 525, wantY: 275},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := p.ScreenPosition(tt.world)
			if math.Abs(float64(gx)-tt.wantX) > 1e-3 || math.Abs(float64(gy)-tt.wantY) > 1e-3 {
				t.Errorf("ScreenPosition(%v) = (%g, %g), want (%g, %g)", tt.world, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}
