package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"planet-sim/internal/scenario"
	"planet-sim/internal/simulation"
	"planet-sim/internal/visualization"
)

const (
	screenWidth  = 800
	screenHeight = 800
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "path to a JSON scenario file (default: built-in solar system)")
		headless     = flag.Bool("headless", false, "run without a window and print state to stdout")
		steps        = flag.Int("steps", 365, "number of steps to run in headless mode")
		pixelsPerAU  = flag.Float64("pixels-per-au", visualization.DefaultPixelsPerAU, "display scale in pixels per astronomical unit")
		trail        = flag.Int("trail", 0, "trajectory points kept per body (0 = unbounded)")
	)
	flag.Parse()

	sim, err := buildSimulation(*scenarioPath, *trail)
	if err != nil {
		log.Fatalf("Error creating simulation: %v", err)
	}

	if *headless {
		if err := sim.Run(*steps); err != nil {
			log.Fatalf("Simulation failed: %v", err)
		}
		return
	}

	projector := visualization.NewScaleProjector(*pixelsPerAU, screenWidth, screenHeight)
	renderer := visualization.NewRenderer(sim, projector, screenWidth, screenHeight)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Planet Simulation")
	if err := ebiten.RunGame(renderer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func buildSimulation(path string, trail int) (*simulation.Simulation, error) {
	if path != "" {
		return scenario.Load(path)
	}
	f := scenario.SolarSystem()
	f.TrajectoryLimit = trail
	return scenario.Build(f)
}
