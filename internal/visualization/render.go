// Package visualization renders a running simulation with Ebiten. The
// simulation core works in SI units; everything pixel-related lives here.
package visualization

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"planet-sim/internal/simulation"
)

const trailWidth = 1.5

// Renderer implements ebiten.Game. Each frame advances the simulation one
// step (one simulated day at 60 TPS) and draws trajectories, bodies and
// distance labels.
//
// Keys: Space pauses, N steps once while paused, Escape quits.
type Renderer struct {
	sim       *simulation.Simulation
	projector Projector

	screenWidth  int
	screenHeight int

	paused bool
	face   font.Face
}

// NewRenderer creates a renderer for sim on a fixed-size screen.
func NewRenderer(sim *simulation.Simulation, projector Projector, width, height int) *Renderer {
	return &Renderer{
		sim:          sim,
		projector:    projector,
		screenWidth:  width,
		screenHeight: height,
		face:         basicfont.Face7x13,
	}
}

// Update is called every tick; it handles input and steps the simulation.
func (r *Renderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		r.paused = !r.paused
	}
	if r.paused && !inpututil.IsKeyJustPressed(ebiten.KeyN) {
		return nil
	}
	return r.sim.Step()
}

// Draw renders the current state.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	snapshot := r.sim.Snapshot()
	for _, st := range snapshot {
		r.drawTrajectory(screen, st)

		sx, sy := r.projector.ScreenPosition(st.Position)
		vector.DrawFilledCircle(screen, sx, sy, float32(st.Radius), st.Color, true)

		if !st.Anchor {
			r.drawDistanceLabel(screen, st, sx, sy)
		}
	}

	r.drawOverlay(screen, snapshot)
}

func (r *Renderer) drawTrajectory(screen *ebiten.Image, st simulation.BodyState) {
	if len(st.Trajectory) < 2 {
		return
	}
	px, py := r.projector.ScreenPosition(st.Trajectory[0])
	for _, p := range st.Trajectory[1:] {
		sx, sy := r.projector.ScreenPosition(p)
		vector.StrokeLine(screen, px, py, sx, sy, trailWidth, st.Color, true)
		px, py = sx, sy
	}
}

func (r *Renderer) drawDistanceLabel(screen *ebiten.Image, st simulation.BodyState, sx, sy float32) {
	if st.DistanceToAnchor <= 0 {
		return
	}
	label := fmt.Sprintf("%.1fkm", st.DistanceToAnchor/1000)
	bounds := text.BoundString(r.face, label)
	x := int(sx) - bounds.Dx()/2
	y := int(sy) - int(st.Radius) - 4
	text.Draw(screen, label, r.face, x, y, color.White)
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, snapshot []simulation.BodyState) {
	msg := fmt.Sprintf("Time: %.0f days\n", r.sim.Time()/simulation.DefaultTimestep)
	msg += fmt.Sprintf("FPS: %.1f, TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	msg += fmt.Sprintf("Energy: %.4e J\n", r.sim.TotalEnergy())
	msg += fmt.Sprintf("Angular momentum: %.4e\n", r.sim.AngularMomentum())

	anchorPos := r.sim.Anchor().Position()
	for _, st := range snapshot {
		if st.Anchor || len(st.Trajectory) < 2 {
			continue
		}
		mean, _ := simulation.MeanOrbitalRadius(st.Trajectory, anchorPos)
		msg += fmt.Sprintf("%s: mean orbit %.3f AU\n", st.Name, mean/simulation.AU)
	}

	if r.paused {
		msg += "PAUSED (Space resumes, N steps)\n"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout reports the fixed logical screen size.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.screenWidth, r.screenHeight
}
