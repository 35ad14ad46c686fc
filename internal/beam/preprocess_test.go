package beam

import (
	"errors"
	"reflect"
	"testing"
)

func positions(m *Model) []float64 {
	out := make([]float64, len(m.Boundaries))
	for i, b := range m.Boundaries {
		out[i] = b.Position
	}
	return out
}

func sampleModel() *Model {
	return &Model{
		Length: 12,
		Boundaries: []Boundary{
			{Kind: Fixed, Position: 0},
			{Kind: InternalHinge, Position: 4},
			{Kind: InternalHinge, Position: 8},
			{Kind: Roller, Position: 12},
		},
		Rigidities:       []float64{1, 2, 3},
		PointLoads:       []PointLoad{{Position: 2, Magnitude: 10}, {Position: 8, Magnitude: 5}},
		Moments:          []Moment{{Position: 10, Magnitude: -3}},
		DistributedLoads: []DistributedLoad{{Start: 1, End: 5, StartMagnitude: 0, EndMagnitude: 8}},
	}
}

func TestPreprocessPositions(t *testing.T) {
	pre := Preprocess(sampleModel())
	want := []float64{0, 1, 2, 4, 5, 6, 8, 10, 12}
	if got := positions(pre); !reflect.DeepEqual(got, want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	kinds := []Kind{Fixed, MidSpan, MidSpan, InternalHinge, MidSpan, MidSpan, InternalHinge, MidSpan, Roller}
	for i, b := range pre.Boundaries {
		if b.Kind != kinds[i] {
			t.Errorf("node %d at %g is %v, want %v", i, b.Position, b.Kind, kinds[i])
		}
	}
	wantEI := []float64{1, 1, 1, 2, 2, 2, 3, 3}
	if !reflect.DeepEqual(pre.Rigidities, wantEI) {
		t.Errorf("rigidities = %v, want %v", pre.Rigidities, wantEI)
	}
}

func TestPreprocessSnapsNearbyPositions(t *testing.T) {
	m := &Model{
		Length:           10,
		Boundaries:       []Boundary{{Kind: Pinned, Position: 0}, {Kind: Roller, Position: 10}},
		Rigidities:       []float64{1},
		PointLoads:       []PointLoad{{Position: 5, Magnitude: 1}, {Position: 10 - 1e-12, Magnitude: 1}},
		Moments:          []Moment{{Position: 5 + 1e-13, Magnitude: 2}},
		DistributedLoads: []DistributedLoad{{Start: 5 - 4e-15, End: 10, StartMagnitude: 1, EndMagnitude: 1}},
	}
	pre := Preprocess(m)
	if got, want := positions(pre), []float64{0, 5 - 4e-15, 10}; !reflect.DeepEqual(got, want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	if pre.Boundaries[2].Kind != Roller {
		t.Errorf("support replaced by %v", pre.Boundaries[2].Kind)
	}
	if pre.PointLoads[0].Position != pre.Boundaries[1].Position || pre.Moments[0].Position != pre.Boundaries[1].Position {
		t.Errorf("loads not moved onto node: %+v %+v", pre.PointLoads, pre.Moments)
	}
	if pre.PointLoads[1].Position != 10 {
		t.Errorf("load near the support at %v, want 10", pre.PointLoads[1].Position)
	}
	if !reflect.DeepEqual(Preprocess(pre), pre) {
		t.Error("snapped model is not stable under a second pass")
	}
}

func TestPreprocessIdempotent(t *testing.T) {
	once := Preprocess(sampleModel())
	twice := Preprocess(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the model:\n%+v\n%+v", once, twice)
	}
}

func TestPreprocessDoesNotAlias(t *testing.T) {
	m := sampleModel()
	pre := Preprocess(m)
	pre.Boundaries[0].Settlement = 99
	pre.PointLoads[0].Magnitude = 99
	pre.DistributedLoads[0].End = 99
	pre.Rigidities[0] = 99
	if !reflect.DeepEqual(m, sampleModel()) {
		t.Error("mutating the preprocessed model changed its input")
	}
}

func TestTrimDistributedLoad(t *testing.T) {
	cases := []struct {
		name       string
		load       DistributedLoad
		start, end float64
		want       DistributedLoad
	}{
		{"rising split", DistributedLoad{0, 10, 0, 30}, 0, 5, DistributedLoad{0, 5, 0, 15}},
		{"rising middle", DistributedLoad{2.5, 12.5, 0, 30}, 5, 10, DistributedLoad{5, 10, 7.5, 22.5}},
		{"falling middle", DistributedLoad{2.5, 12.5, 30, 0}, 5, 10, DistributedLoad{5, 10, 22.5, 7.5}},
		{"uniform", DistributedLoad{0, 10, 12, 12}, 3, 7, DistributedLoad{3, 7, 12, 12}},
		{"inside", DistributedLoad{3, 4, 1, 2}, 0, 10, DistributedLoad{3, 4, 1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.load.Trim(c.start, c.end)
			if !ok {
				t.Fatal("load reported as not overlapping")
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Trim = %+v, want %+v", got, c.want)
			}
		})
	}
	if _, ok := (DistributedLoad{0, 5, 1, 1}).Trim(5, 10); ok {
		t.Error("touching interval reported as overlapping")
	}
}

func TestPartialLoadRejectedByDiagrams(t *testing.T) {
	m := &Model{
		Length:           10,
		Boundaries:       []Boundary{{Kind: Pinned, Position: 0}, {Kind: Roller, Position: 10}},
		Rigidities:       []float64{1},
		DistributedLoads: []DistributedLoad{{Start: 2, End: 6, StartMagnitude: 5, EndMagnitude: 5}},
	}
	elements := Elements(m)
	s, err := Solve(m, elements, PassOne, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Diagrams(elements, s); !errors.Is(err, ErrLoadSpan) {
		t.Errorf("expected ErrLoadSpan, got %v", err)
	}
	// The same model analyzed through the preprocessor is fine
	if _, err := AnalyzeModel(m, DefaultOptions()); err != nil {
		t.Errorf("AnalyzeModel: %v", err)
	}
}
