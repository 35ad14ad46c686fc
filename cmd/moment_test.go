package cmd

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/quadrature"
	"github.com/alexiusacademia/gobeam/internal/units"
)

func TestSpanModel(t *testing.T) {
	m, err := spanModel(units.Metric, 8, []string{"50@3"}, []string{"10@4"}, []string{"6,6,0,8"})
	if err != nil {
		t.Fatalf("spanModel: %v", err)
	}
	if len(m.PointLoads) != 1 || m.PointLoads[0].Magnitude != 50 || m.PointLoads[0].Position != 3 {
		t.Errorf("point loads = %+v", m.PointLoads)
	}
	if len(m.Moments) != 1 || m.Moments[0].Magnitude != 10 {
		t.Errorf("moments = %+v", m.Moments)
	}
	if got := totalLoad(m); !scalar.EqualWithinAbs(got, 98, 1e-12) {
		t.Errorf("total load = %g, want 98", got)
	}
}

func TestSpanModelFixedEndMoments(t *testing.T) {
	m, err := spanModel(units.Metric, 8, []string{"50@3"}, nil, nil)
	if err != nil {
		t.Fatalf("spanModel: %v", err)
	}
	e := beam.Elements(m)[0]
	m1, m2 := e.FixedEndMoments(beam.NoRelease, quadrature.DefaultOptions())
	// Pab²/L² and −Pa²b/L²
	if !scalar.EqualWithinAbs(m1, 58.59375, 1e-9) || !scalar.EqualWithinAbs(m2, -35.15625, 1e-9) {
		t.Errorf("moments = %g, %g", m1, m2)
	}
}

func TestSpanModelErrors(t *testing.T) {
	for _, c := range []struct {
		name        string
		length      float64
		points      []string
		distributed []string
	}{
		{"zero length", 0, []string{"1@0"}, nil},
		{"no loads", 5, nil, nil},
		{"outside", 5, []string{"1@6"}, nil},
		{"malformed", 5, []string{"1-2"}, nil},
		{"reversed", 5, nil, []string{"1,1,4,2"}},
	} {
		t.Run(c.name, func(t *testing.T) {
			if _, err := spanModel(units.Metric, c.length, c.points, nil, c.distributed); err == nil {
				t.Error("expected error")
			}
		})
	}
}
