package scenario

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"planet-sim/internal/simulation"
)

func TestSolarSystemBuild(t *testing.T) {
	sim, err := Build(SolarSystem())
	if err != nil {
		t.Fatalf("Build(SolarSystem()) failed: %v", err)
	}

	bodies := sim.Bodies()
	if len(bodies) != 5 {
		t.Fatalf("got %d bodies, want 5", len(bodies))
	}
	if sim.Anchor().Name() != "sun" {
		t.Errorf("anchor = %q, want sun", sim.Anchor().Name())
	}
	if got := sim.Config().Dt; got != simulation.DefaultTimestep {
		t.Errorf("Dt = %g, want %g", got, simulation.DefaultTimestep)
	}

	var earth *simulation.Body
	for _, b := range bodies {
		if b.Name() == "earth" {
			earth = b
		}
	}
	if earth == nil {
		t.Fatal("no body named earth")
	}
	if got := earth.Position().X; got != -simulation.AU {
		t.Errorf("earth x = %g, want %g", got, -simulation.AU)
	}
	if got := earth.Velocity().Y; got != 29.783e3 {
		t.Errorf("earth vy = %g, want 29783", got)
	}
	if got := earth.Color(); got != (color.RGBA{R: 100, G: 149, B: 237, A: 255}) {
		t.Errorf("earth color = %v, want cornflower blue", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.json")
	data := `{
		"name": "binary",
		"g": 1,
		"dt": 0.5,
		"trajectory_limit": 100,
		"bodies": [
			{"name": "primary", "mass": 1000, "pos": [0, 0], "radius": 5, "color": "#ffff00", "anchor": true},
			{"name": "moon", "mass": 1, "pos": [100, 0], "vel": [0, 2], "radius": 2, "color": "#6495ed"}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing scenario file: %v", err)
	}

	sim, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	cfg := sim.Config()
	if cfg.G != 1 || cfg.Dt != 0.5 || cfg.TrajectoryLimit != 100 {
		t.Errorf("Config() = %+v, want G=1 dt=0.5 limit=100", cfg)
	}
	if sim.Anchor().Name() != "primary" {
		t.Errorf("anchor = %q, want primary", sim.Anchor().Name())
	}
	moon := sim.Bodies()[1]
	if moon.Position().X != 100 || moon.Velocity().Y != 2 {
		t.Errorf("moon state = pos %v vel %v, want (100,0)/(0,2)", moon.Position(), moon.Velocity())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad json", data: `{"bodies": [`},
		{
			name: "non-positive mass",
			data: `{"bodies": [{"name": "x", "mass": 0, "radius": 1, "anchor": true}]}`,
		},
		{
			name: "no anchor",
			data: `{"bodies": [{"name": "x", "mass": 1, "radius": 1}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scenario.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("writing scenario file: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() of missing file succeeded, want error")
	}
}

func TestOrbitalVelocities(t *testing.T) {
	f := File{
		G: 1,
		Bodies: []BodyConfig{
			{Name: "star", Mass: 100, Anchor: true},
			{Name: "east", Mass: 1, Pos: [2]float64{25, 0}},
			{Name: "north", Mass: 1, Pos: [2]float64{0, 9}},
			{Name: "fixed", Mass: 1, Pos: [2]float64{50, 0}, Vel: [2]float64{1, 1}},
		},
	}
	OrbitalVelocities(&f)

	// v = sqrt(g*M/r), perpendicular to the radius.
	east := f.Bodies[1]
	if east.Vel[0] != 0 || math.Abs(east.Vel[1]-2) > 1e-12 {
		t.Errorf("east vel = %v, want (0, 2)", east.Vel)
	}
	north := f.Bodies[2]
	if math.Abs(north.Vel[0]+10.0/3) > 1e-12 || north.Vel[1] != 0 {
		t.Errorf("north vel = %v, want (-10/3, 0)", north.Vel)
	}
	fixed := f.Bodies[3]
	if fixed.Vel != [2]float64{1, 1} {
		t.Errorf("explicit velocity was overwritten: %v", fixed.Vel)
	}
	if f.Bodies[0].Vel != [2]float64{} {
		t.Errorf("anchor velocity was set: %v", f.Bodies[0].Vel)
	}
}

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	tests := []struct {
		name  string
		input string
		want  color.RGBA
	}{
		{name: "yellow", input: "#ffff00", want: color.RGBA{R: 255, G: 255, A: 255}},
		{name: "cornflower", input: "#6495ed", want: color.RGBA{R: 100, G: 149, B: 237, A: 255}},
		{name: "empty", input: "", want: fallback},
		{name: "missing hash", input: "ffff00", want: fallback},
		{name: "garbage", input: "#zzzzzz", want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseColor(tt.input); got != tt.want {
				t.Errorf("parseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
