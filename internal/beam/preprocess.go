package beam

import (
	"math"
	"sort"
)

// SnapTolerance is the distance, relative to the supported length, below
// which two positions are treated as the same node.
const SnapTolerance = 1e-9

// Preprocess refines the span layout so that every support, point load,
// moment, distributed-load edge and hinge lies on an element boundary.
// Positions that are not supports become mid-span markers, and a marker is
// placed between adjacent internal hinges so that each hinge belongs to its
// own released element. Positions closer than SnapTolerance collapse onto
// one node, a support winning over a load, and the loads are moved onto it.
// Each element inherits the EI of the span enclosing it.
// The result shares no memory with m; preprocessing its own output is a no-op.
func Preprocess(m *Model) *Model {
	out := m.Clone()

	type candidate struct {
		x       float64
		support bool
	}
	var candidates []candidate
	supports := make(map[float64]Boundary, len(m.Boundaries))
	for i, b := range m.Boundaries {
		supports[b.Position] = b
		candidates = append(candidates, candidate{b.Position, true})
		if b.Kind == InternalHinge && i+1 < len(m.Boundaries) && m.Boundaries[i+1].Kind == InternalHinge {
			candidates = append(candidates, candidate{(b.Position + m.Boundaries[i+1].Position) / 2, false})
		}
	}
	for _, p := range m.PointLoads {
		candidates = append(candidates, candidate{p.Position, false})
	}
	for _, mo := range m.Moments {
		candidates = append(candidates, candidate{mo.Position, false})
	}
	for _, d := range m.DistributedLoads {
		candidates = append(candidates, candidate{d.Start, false}, candidate{d.End, false})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].x < candidates[j].x })

	tol := SnapTolerance
	if n := len(m.Boundaries); n > 1 {
		tol *= math.Max(1, m.Boundaries[n-1].Position-m.Boundaries[0].Position)
	}

	// Each run of candidates within tol of its node collapses onto it. Two
	// supports never merge.
	var positions []float64
	node := make(map[float64]int, len(candidates))
	runSupport := false
	for _, c := range candidates {
		last := len(positions) - 1
		switch {
		case last < 0 || c.x-positions[last] > tol || (c.support && runSupport):
			positions = append(positions, c.x)
			runSupport = c.support
			last++
		case c.support:
			positions[last] = c.x
			runSupport = true
		}
		node[c.x] = last
	}
	snap := func(x float64) float64 { return positions[node[x]] }

	for i := range out.PointLoads {
		out.PointLoads[i].Position = snap(out.PointLoads[i].Position)
	}
	for i := range out.Moments {
		out.Moments[i].Position = snap(out.Moments[i].Position)
	}
	for i := range out.DistributedLoads {
		out.DistributedLoads[i].Start = snap(out.DistributedLoads[i].Start)
		out.DistributedLoads[i].End = snap(out.DistributedLoads[i].End)
	}

	out.Boundaries = make([]Boundary, 0, len(positions))
	for _, x := range positions {
		if b, ok := supports[x]; ok {
			out.Boundaries = append(out.Boundaries, b)
			continue
		}
		out.Boundaries = append(out.Boundaries, Boundary{Kind: MidSpan, Position: x})
	}

	out.Rigidities = make([]float64, 0, len(positions))
	for i := 0; i+1 < len(positions); i++ {
		out.Rigidities = append(out.Rigidities, enclosingRigidity(m, positions[i], positions[i+1]))
	}

	return out
}

// enclosingRigidity returns the EI of the original span containing [start, end]
func enclosingRigidity(m *Model, start, end float64) float64 {
	for j := 0; j+1 < len(m.Boundaries); j++ {
		if start >= m.Boundaries[j].Position && end <= m.Boundaries[j+1].Position {
			return m.Rigidities[j]
		}
	}
	return m.Rigidities[len(m.Rigidities)-1]
}

// Trim returns the part of d overlapping [start, end], with intensities at the
// new cut points interpolated along the original trapezoid. The second result
// is false when the load does not overlap the interval.
func (d DistributedLoad) Trim(start, end float64) (DistributedLoad, bool) {
	if d.End <= start || d.Start >= end {
		return DistributedLoad{}, false
	}
	t := d
	if d.Start < start {
		t.Start = start
		t.StartMagnitude = d.At(start)
	}
	if d.End > end {
		t.End = end
		t.EndMagnitude = d.At(end)
	}
	return t, true
}
