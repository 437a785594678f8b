// Command trackplot draws the elevation and curvature of the default track
// against segment index, one PNG each.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/road"
)

var (
	out        = flag.String("out", "track", "output file prefix")
	configPath = flag.String("config", "", "JSON tuning file")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("failed to load tuning: %v", err)
		}
	}
	d := cfg.Derive()
	r := road.Build(road.DefaultLayout(), road.Params{
		SegmentLength: float64(cfg.SegmentLength),
		RumbleLength:  cfg.RumbleLength,
		PlayerZ:       d.PlayerZ,
	})

	prof := measure(r)
	if err := plotProfile(prof, *out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d segments, length %.0f, elevation %.0f..%.0f, total turn %.0f (net %.0f)\n",
		len(r.Segments), r.Length(), prof.MinY, prof.MaxY, prof.TotalTurn, prof.NetTurn)
}

// profile is the per-segment shape of a track.
type profile struct {
	Elevation plotter.XYs
	Curvature plotter.XYs
	MinY      float64
	MaxY      float64
	TotalTurn float64 // sum of |curve|
	NetTurn   float64 // sum of curve, signed
}

func measure(r *road.Road) profile {
	n := len(r.Segments)
	p := profile{
		Elevation: make(plotter.XYs, n),
		Curvature: make(plotter.XYs, n),
	}
	ys := make([]float64, n)
	curves := make([]float64, n)
	for i, seg := range r.Segments {
		ys[i] = seg.P1.World.Y
		curves[i] = seg.Curve
		p.Elevation[i] = plotter.XY{X: float64(i), Y: ys[i]}
		p.Curvature[i] = plotter.XY{X: float64(i), Y: curves[i]}
	}
	if n == 0 {
		return p
	}
	p.MinY = floats.Min(ys)
	p.MaxY = floats.Max(ys)
	p.NetTurn = floats.Sum(curves)
	abs := make([]float64, n)
	for i, c := range curves {
		abs[i] = math.Abs(c)
	}
	p.TotalTurn = floats.Sum(abs)
	return p
}

// plotProfile writes prefix_elevation.png and prefix_curvature.png.
func plotProfile(p profile, prefix string) error {
	elev := plot.New()
	elev.Title.Text = "Elevation"
	elev.X.Label.Text = "Segment"
	elev.Y.Label.Text = "World Y"

	curve := plot.New()
	curve.Title.Text = "Curvature"
	curve.X.Label.Text = "Segment"
	curve.Y.Label.Text = "Curve"

	elevLine, err := plotter.NewLine(p.Elevation)
	if err != nil {
		return fmt.Errorf("failed to plot elevation: %w", err)
	}
	elevLine.Color = color.RGBA{0, 81, 8, 255}
	elevLine.Width = vg.Points(1)
	elev.Add(plotter.NewGrid(), elevLine)

	curveLine, err := plotter.NewLine(p.Curvature)
	if err != nil {
		return fmt.Errorf("failed to plot curvature: %w", err)
	}
	curveLine.Color = color.RGBA{204, 16, 16, 255}
	curveLine.Width = vg.Points(1)
	curve.Add(plotter.NewGrid(), curveLine)

	if err := elev.Save(14*vg.Inch, 4*vg.Inch, prefix+"_elevation.png"); err != nil {
		return fmt.Errorf("failed to save elevation plot: %w", err)
	}
	if err := curve.Save(14*vg.Inch, 4*vg.Inch, prefix+"_curvature.png"); err != nil {
		return fmt.Errorf("failed to save curvature plot: %w", err)
	}
	return nil
}
