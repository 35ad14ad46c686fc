package diagram

import (
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/units"
)

// Kinds lists the diagrams drawn for a beam, top to bottom. Rotation and
// displacement are the physical curves; the raw slope and deflection
// polynomials stay available through Sample but carry no unit.
var Kinds = []string{"load", "shear", "moment", "rotation", "displacement"}

// Series is one diagram sampled along the beam
type Series struct {
	Kind  string
	Title string
	Unit  string
	X     []float64 // global positions
	Y     []float64
}

var titles = map[string]string{
	"load":         "Load Intensity",
	"shear":        "Shear Force",
	"moment":       "Bending Moment",
	"rotation":     "Rotation",
	"displacement": "Deflection",
	"slope":        "Slope Polynomial",
	"deflection":   "Deflection Polynomial",
}

// Units returns the length unit and the unit of each diagram for a system
func Units(s units.System) (length string, byKind map[string]string) {
	if s == units.Imperial {
		return "in", map[string]string{
			"load": "lbf/in", "shear": "lbf", "moment": "lbf·in", "rotation": "rad", "displacement": "in",
		}
	}
	return "m", map[string]string{
		"load": "kN/m", "shear": "kN", "moment": "kN·m", "rotation": "rad", "displacement": "m",
	}
}

// Sample evaluates a diagram element by element with samplesPerElement points
// each. Node positions appear once per adjacent element so jumps are kept.
func Sample(r *beam.Result, kind string, samplesPerElement int) (Series, error) {
	_, byKind := Units(r.System)
	s := Series{Kind: kind, Title: titles[kind], Unit: byKind[kind]}
	for _, d := range r.Diagrams {
		p, err := d.Polynomial(kind)
		if err != nil {
			return Series{}, err
		}
		xs, ys := p.Sample(d.Length, samplesPerElement)
		for i := range xs {
			s.X = append(s.X, d.Start+xs[i])
			s.Y = append(s.Y, ys[i])
		}
	}
	return s, nil
}

// Uniform evaluates a diagram at n evenly spaced positions over the beam
func Uniform(r *beam.Result, kind string, n int) ([]float64, error) {
	if n < 2 {
		n = 2
	}
	bs := r.Model.Boundaries
	start, end := bs[0].Position, bs[len(bs)-1].Position
	out := make([]float64, n)
	for i := range out {
		x := start + (end-start)*float64(i)/float64(n-1)
		v, err := r.DiagramAt(kind, x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Extremes returns the minimum and maximum of a series and where they occur
func (s Series) Extremes() (minX, minY, maxX, maxY float64) {
	if len(s.Y) == 0 {
		return
	}
	minX, minY, maxX, maxY = s.X[0], s.Y[0], s.X[0], s.Y[0]
	for i, y := range s.Y {
		if y < minY {
			minX, minY = s.X[i], y
		}
		if y > maxY {
			maxX, maxY = s.X[i], y
		}
	}
	return
}
