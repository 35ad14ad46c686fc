package beam

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gobeam/internal/quadrature"
)

func newElement(length, ei float64) *Element {
	return &Element{
		Index:         1,
		Start:         2,
		End:           2 + length,
		Length:        length,
		EI:            ei,
		StartBoundary: Boundary{Kind: MidSpan, Position: 2},
		EndBoundary:   Boundary{Kind: MidSpan, Position: 2 + length},
	}
}

func TestDOFs(t *testing.T) {
	if got := newElement(1, 1).DOFs(); got != [4]int{2, 3, 4, 5} {
		t.Errorf("DOFs = %v", got)
	}
}

func TestStiffnessMatrices(t *testing.T) {
	e := newElement(2, 8)
	normal := e.NormalStiffness().RawRows()
	want := [][]float64{
		{12, 12, -12, 12},
		{12, 16, -12, 8},
		{-12, -12, 12, -12},
		{12, 8, -12, 16},
	}
	for i := range want {
		if !floats.EqualApprox(normal[i], want[i], 1e-12) {
			t.Errorf("normal row %d = %v, want %v", i, normal[i], want[i])
		}
	}

	left := e.LeftReleasedStiffness()
	right := e.RightReleasedStiffness()
	for i := 0; i < 4; i++ {
		if left.At(1, i) != 0 || left.At(i, 1) != 0 {
			t.Errorf("left-released matrix couples the start rotation: %v", left.RawRows())
		}
		if right.At(3, i) != 0 || right.At(i, 3) != 0 {
			t.Errorf("right-released matrix couples the end rotation: %v", right.RawRows())
		}
	}
	// Mirror images: swapping the two nodes maps one onto the other
	perm := []int{2, 3, 0, 1}
	sign := []float64{1, -1, 1, -1}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			mirrored := sign[i] * sign[j] * right.At(perm[i], perm[j])
			if !scalar.EqualWithinAbs(left.At(i, j), mirrored, 1e-12) {
				t.Errorf("left(%d,%d) = %v, mirrored right = %v", i, j, left.At(i, j), mirrored)
			}
		}
	}
}

func TestStiffnessSelection(t *testing.T) {
	e := newElement(3, 1)
	if got := e.Stiffness(StartReleased).At(1, 1); got != 0 {
		t.Errorf("start-released k22 = %v", got)
	}
	if got := e.Stiffness(EndReleased).At(3, 3); got != 0 {
		t.Errorf("end-released k44 = %v", got)
	}
	if got := e.Stiffness(NoRelease).At(1, 1); !scalar.EqualWithinAbs(got, 4.0/3, 1e-12) {
		t.Errorf("normal k22 = %v", got)
	}
}

func TestNodalForces(t *testing.T) {
	e := newElement(4, 1)
	e.PointLoads = []PointLoad{{Position: 2, Magnitude: 10}, {Position: 6, Magnitude: 3}, {Position: 6, Magnitude: 2}, {Position: 4, Magnitude: 100}}
	e.Moments = []Moment{{Position: 2, Magnitude: -7}}
	want := []float64{-10, -7, -5, 0}
	if got := e.NodalForces(); !floats.Equal(got, want) {
		t.Errorf("NodalForces = %v, want %v", got, want)
	}
}

func TestEquivalentForcesUniformLoad(t *testing.T) {
	const w, l = 12.0, 6.0
	e := newElement(l, 1)
	e.DistributedLoads = []DistributedLoad{{Start: e.Start, End: e.End, StartMagnitude: w, EndMagnitude: w}}
	got := e.EquivalentForces(NoRelease, quadrature.DefaultOptions())
	want := []float64{-w * l / 2, -w * l * l / 12, -w * l / 2, w * l * l / 12}
	if !floats.EqualApprox(got, want, 1e-9) {
		t.Errorf("EquivalentForces = %v, want %v", got, want)
	}
}

func TestEquivalentForcesPointLoad(t *testing.T) {
	const p, l = 40.0, 8.0
	e := newElement(l, 1)
	e.PointLoads = []PointLoad{{Position: e.Start + 2, Magnitude: p}}
	got := e.EquivalentForces(NoRelease, quadrature.DefaultOptions())
	// a = 2, b = 6
	m1 := p * 2 * 36 / 64
	m2 := -p * 4 * 6 / 64
	f2 := -(-2*p + m1 + m2) / l
	want := []float64{-(p - f2), -m1, -f2, -m2}
	if !floats.EqualApprox(got, want, 1e-12) {
		t.Errorf("EquivalentForces = %v, want %v", got, want)
	}
}

func TestReleasedEndCarriesOver(t *testing.T) {
	// Propped cantilever fixed at the start: 3PL/16 and reactions 11P/16, 5P/16
	const p, l = 16.0, 4.0
	e := newElement(l, 1)
	e.PointLoads = []PointLoad{{Position: e.Start + l/2, Magnitude: p}}
	got := e.EquivalentForces(EndReleased, quadrature.DefaultOptions())
	want := []float64{-11 * p / 16, -3 * p * l / 16, -5 * p / 16, 0}
	if !floats.EqualApprox(got, want, 1e-12) {
		t.Errorf("end released = %v, want %v", got, want)
	}
	got = e.EquivalentForces(StartReleased, quadrature.DefaultOptions())
	want = []float64{-5 * p / 16, 0, -11 * p / 16, 3 * p * l / 16}
	if !floats.EqualApprox(got, want, 1e-12) {
		t.Errorf("start released = %v, want %v", got, want)
	}
}

func TestElementsClaimLoadsOnce(t *testing.T) {
	m := Preprocess(&Model{
		Length:     10,
		Boundaries: []Boundary{{Kind: Pinned, Position: 0}, {Kind: Roller, Position: 5}, {Kind: Roller, Position: 10}},
		Rigidities: []float64{1, 1},
		PointLoads: []PointLoad{{Position: 5, Magnitude: 10}, {Position: 7, Magnitude: 4}},
		Moments:    []Moment{{Position: 5, Magnitude: 1}},
	})
	elements := Elements(m)
	count := 0
	for _, e := range elements {
		count += len(e.PointLoads)
	}
	if count != 2 {
		t.Errorf("point loads claimed %d times, want 2", count)
	}
	if len(elements[0].PointLoads) != 1 || elements[0].PointLoads[0].Position != 5 {
		t.Errorf("load on the shared node should belong to the left element: %+v", elements[0].PointLoads)
	}
	if len(elements[0].Moments) != 1 || len(elements[1].Moments) != 0 {
		t.Errorf("moment claimed by the wrong element")
	}
}

func TestPassOverlay(t *testing.T) {
	hingeStart := newElement(1, 1)
	hingeStart.StartBoundary.Kind = InternalHinge
	hingeEnd := newElement(1, 1)
	hingeEnd.EndBoundary.Kind = InternalHinge
	plain := newElement(1, 1)

	cases := []struct {
		pass Pass
		e    *Element
		want Release
	}{
		{PassOne, hingeStart, NoRelease},
		{PassOne, hingeEnd, EndReleased},
		{PassTwo, hingeStart, StartReleased},
		{PassTwo, hingeEnd, NoRelease},
		{PassOne, plain, NoRelease},
		{PassTwo, plain, NoRelease},
	}
	for _, c := range cases {
		if got := c.pass.Release(c.e); got != c.want {
			t.Errorf("pass %d: got %v, want %v", c.pass, got, c.want)
		}
	}
	if hingeStart.StartBoundary.Kind != InternalHinge {
		t.Error("overlay mutated the boundary")
	}
}
