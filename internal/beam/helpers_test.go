package beam

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gobeam/internal/section"
)

func assertVector(t *testing.T, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d entries %v, want %d %v", name, len(got), got, len(want), want)
	}
	if !floats.EqualApprox(got, want, tol) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func analyzeFile(t *testing.T, path string) *Result {
	t.Helper()
	in, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Analyze(in, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func support(kind string, x float64) SupportInput {
	return SupportInput{Type: kind, Position: x}
}

func unitInput(length float64, supports ...SupportInput) *Input {
	return &Input{
		Length:   Quantity{Value: length, Unit: "m"},
		Supports: supports,
		Sections: []SectionInput{{}},
	}
}

func checkEquilibrium(t *testing.T, r *Result) {
	t.Helper()
	force, moment := r.Equilibrium()
	scale := 1 + r.AppliedLoad()
	if abs(force) > 1e-6*scale || abs(moment) > 1e-6*scale*(1+r.Model.Length) {
		t.Errorf("equilibrium residual: force %g, moment %g", force, moment)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func rectangleShape(b, h float64) *section.Shape {
	return &section.Shape{Vertices: []section.Point{{X: 0, Y: 0}, {X: b, Y: 0}, {X: b, Y: h}, {X: 0, Y: h}}}
}
