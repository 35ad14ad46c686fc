package beam

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gobeam/internal/units"
)

func TestValidate(t *testing.T) {
	valid := func() *Input {
		in := unitInput(10, support("pinned", 0), support("roller", 10))
		in.Loads.PointLoads = []PointLoadInput{{Position: 5, Magnitude: 1, Unit: "kn"}}
		return in
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"no length", func(in *Input) { in.Length.Value = 0 }},
		{"single support", func(in *Input) { in.Supports = in.Supports[:1] }},
		{"unknown support", func(in *Input) { in.Supports[0].Type = "spring" }},
		{"unordered", func(in *Input) { in.Supports[1].Position = 0 }},
		{"outside beam", func(in *Input) { in.Supports[1].Position = 11 }},
		{"bad direction", func(in *Input) { in.Supports[0].Settlement.Direction = "left" }},
		{"section count", func(in *Input) { in.Supports = append(in.Supports[:1], support("roller", 5), support("roller", 10)); in.Sections = []SectionInput{{}, {}, {}} }},
		{"negative coefficient", func(in *Input) { in.Sections[0].YoungModulus.Coefficient = -1 }},
		{"load outside", func(in *Input) { in.Loads.PointLoads[0].Position = 12 }},
		{"too many nodes", func(in *Input) {
			in.Loads.PointLoads = make([]PointLoadInput, MaxNodes)
			for i := range in.Loads.PointLoads {
				in.Loads.PointLoads[i] = PointLoadInput{Position: 5, Magnitude: 1, Unit: "kn"}
			}
		}},
		{"empty distributed", func(in *Input) {
			in.Loads.DistributedLoads = []DistributedLoadInput{{Start: 4, End: 4, Unit: "kn/m"}}
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := valid()
			c.mutate(in)
			var verr *ValidationError
			if err := in.Validate(); !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	in, err := Parse([]byte(`{
		"length": {"value": 6, "unit": "m"},
		"supports": [{"type": "fixed", "position": 0}, {"type": "free_end", "position": 6}],
		"sections": [{"young_modulus": {"material": "concrete", "fc": 28}}],
		"loads": {"moments": [{"position": 6, "magnitude": 5, "unit": "kn.m", "clockwise": true}]}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if in.Spans() != 1 || !in.Loads.Moments[0].Clockwise || in.Sections[0].YoungModulus.Fc != 28 {
		t.Errorf("parsed input = %+v", in)
	}
	if _, err := Parse([]byte(`{"length": {"value": 1}}`)); err == nil {
		t.Error("expected validation error")
	}
}

func TestResolveDistributedLoad(t *testing.T) {
	in := unitInput(10, support("pinned", 0), support("roller", 10))
	in.Length.Unit = "ft"
	in.Loads.DistributedLoads = []DistributedLoadInput{{Start: 2, End: 8, StartMagnitude: 3, EndMagnitude: 6, Unit: "kn/m"}}
	m, err := Resolve(in)
	if err != nil {
		t.Fatal(err)
	}
	d := m.DistributedLoads[0]
	if !scalar.EqualWithinAbs(d.Start, 0.6096, 1e-12) || !scalar.EqualWithinAbs(d.End, 2.4384, 1e-12) || d.StartMagnitude != 3 || d.EndMagnitude != 6 {
		t.Errorf("resolved load = %+v", d)
	}

	in.Loads.DistributedLoads[0].Unit = "kn/furlong"
	_, err = Resolve(in)
	if !errors.Is(err, units.ErrUnknownUnit) || !strings.Contains(err.Error(), "distributed load 1") {
		t.Errorf("expected unknown unit on distributed load 1, got %v", err)
	}
}
