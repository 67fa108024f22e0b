package visualization

import (
	"gonum.org/v1/gonum/spatial/r2"

	"planet-sim/internal/simulation"
)

// DefaultPixelsPerAU is the reference display scale: one astronomical unit
// maps to 250 pixels.
const DefaultPixelsPerAU = 250.0

// Projector converts simulation coordinates (meters) to screen coordinates.
type Projector interface {
	// ScreenPosition maps a world position to pixel coordinates.
	ScreenPosition(world r2.Vec) (float32, float32)
}

// ScaleProjector is a fixed linear projection: the world origin lands at the
// screen center and distances shrink by a constant meters-to-pixels factor.
// Screen Y grows downward, matching the world Y axis of the reference
// scenario.
type ScaleProjector struct {
	scale   float64 // pixels per meter
	centerX float64
	centerY float64
}

// NewScaleProjector creates a projector for a screen of the given size with
// the given pixels-per-AU zoom.
func NewScaleProjector(pixelsPerAU float64, width, height int) *ScaleProjector {
	return &ScaleProjector{
		scale:   pixelsPerAU / simulation.AU,
		centerX: float64(width) / 2,
		centerY: float64(height) / 2,
	}
}

// ScreenPosition implements Projector.
func (p *ScaleProjector) ScreenPosition(world r2.Vec) (float32, float32) {
	return float32(world.X*p.scale + p.centerX), float32(world.Y*p.scale + p.centerY)
}
