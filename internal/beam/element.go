package beam

import (
	"github.com/alexiusacademia/gobeam/internal/matrix"
	"github.com/alexiusacademia/gobeam/internal/quadrature"
)

// Element is a two-node Euler-Bernoulli beam element between consecutive
// boundaries of a preprocessed model
type Element struct {
	Index  int     // position in the element sequence, also the start node index
	Start  float64 // start position
	End    float64 // end position
	Length float64
	EI     float64

	StartBoundary Boundary
	EndBoundary   Boundary

	// Loads claimed by this element. Point loads and moments may sit on either node.
	PointLoads       []PointLoad
	Moments          []Moment
	DistributedLoads []DistributedLoad
}

// Elements builds the elements of a preprocessed model. Point loads and moments
// are partitioned in one pass: a load on a shared node is claimed by the element
// on its left. Distributed loads are trimmed to every element they overlap.
func Elements(m *Model) []*Element {
	n := len(m.Boundaries) - 1
	if n < 1 {
		return nil
	}
	elements := make([]*Element, n)
	for i := range elements {
		start, end := m.Boundaries[i].Position, m.Boundaries[i+1].Position
		e := &Element{
			Index:         i,
			Start:         start,
			End:           end,
			Length:        end - start,
			EI:            m.Rigidities[i],
			StartBoundary: m.Boundaries[i],
			EndBoundary:   m.Boundaries[i+1],
		}
		for _, d := range m.DistributedLoads {
			if t, ok := d.Trim(start, end); ok {
				e.DistributedLoads = append(e.DistributedLoads, t)
			}
		}
		elements[i] = e
	}

	for _, p := range m.PointLoads {
		if e := claim(elements, p.Position); e != nil {
			e.PointLoads = append(e.PointLoads, p)
		}
	}
	for _, mo := range m.Moments {
		if e := claim(elements, mo.Position); e != nil {
			e.Moments = append(e.Moments, mo)
		}
	}
	return elements
}

// claim returns the first element whose closed interval contains x
func claim(elements []*Element, x float64) *Element {
	for _, e := range elements {
		if x >= e.Start && x <= e.End {
			return e
		}
	}
	return nil
}

// DOFs maps local DOF indices {0,1,2,3} to global DOF indices
func (e *Element) DOFs() [4]int {
	base := 2 * e.Index
	return [4]int{base, base + 1, base + 2, base + 3}
}

// NormalStiffness returns the unreleased 4×4 stiffness matrix
func (e *Element) NormalStiffness() *matrix.Dense {
	l := e.Length
	l2, l3 := l*l, l*l*l
	k, _ := matrix.FromRows([][]float64{
		{12 / l3, 6 / l2, -12 / l3, 6 / l2},
		{6 / l2, 4 / l, -6 / l2, 2 / l},
		{-12 / l3, -6 / l2, 12 / l3, -6 / l2},
		{6 / l2, 2 / l, -6 / l2, 4 / l},
	})
	return k.Scale(e.EI)
}

// LeftReleasedStiffness returns the stiffness with no moment transfer at the start node
func (e *Element) LeftReleasedStiffness() *matrix.Dense {
	l := e.Length
	l2, l3 := l*l, l*l*l
	k, _ := matrix.FromRows([][]float64{
		{3 / l3, 0, -3 / l3, 3 / l2},
		{0, 0, 0, 0},
		{-3 / l3, 0, 3 / l3, -3 / l2},
		{3 / l2, 0, -3 / l2, 3 / l},
	})
	return k.Scale(e.EI)
}

// RightReleasedStiffness returns the stiffness with no moment transfer at the end node
func (e *Element) RightReleasedStiffness() *matrix.Dense {
	l := e.Length
	l2, l3 := l*l, l*l*l
	k, _ := matrix.FromRows([][]float64{
		{3 / l3, 3 / l2, -3 / l3, 0},
		{3 / l2, 3 / l, -3 / l2, 0},
		{-3 / l3, -3 / l2, 3 / l3, 0},
		{0, 0, 0, 0},
	})
	return k.Scale(e.EI)
}

// Stiffness returns the matrix for the given end release
func (e *Element) Stiffness(r Release) *matrix.Dense {
	switch r {
	case StartReleased:
		return e.LeftReleasedStiffness()
	case EndReleased:
		return e.RightReleasedStiffness()
	}
	return e.NormalStiffness()
}

// NodalForces returns [−F_start, M_start, −F_end, M_end] for the loads sitting
// exactly on the element's nodes
func (e *Element) NodalForces() []float64 {
	f := make([]float64, 4)
	for _, p := range e.PointLoads {
		switch p.Position {
		case e.Start:
			f[0] -= p.Magnitude
		case e.End:
			f[2] -= p.Magnitude
		}
	}
	for _, m := range e.Moments {
		switch m.Position {
		case e.Start:
			f[1] += m.Magnitude
		case e.End:
			f[3] += m.Magnitude
		}
	}
	return f
}

// FixedEndMoments returns the moments m1, m2 at the start and end of the
// element, with both ends restrained, for the loads inside the element.
// A released end passes half of its moment to the opposite end and drops to zero.
func (e *Element) FixedEndMoments(r Release, q quadrature.Options) (m1, m2 float64) {
	l := e.Length
	l2 := l * l
	for _, p := range e.PointLoads {
		if e.onNode(p.Position) {
			continue
		}
		a, b := p.Position-e.Start, e.End-p.Position
		m1 += p.Magnitude * a * b * b / l2
		m2 -= p.Magnitude * a * a * b / l2
	}
	for _, m := range e.Moments {
		if e.onNode(m.Position) {
			continue
		}
		a, b := m.Position-e.Start, e.End-m.Position
		m1 += m.Magnitude * b * (2*a - b) / l2
		m2 += m.Magnitude * a * (2*b - a) / l2
	}
	for _, d := range e.DistributedLoads {
		a, b := d.Start-e.Start, d.End-e.Start
		p := quadrature.Linear(d.StartMagnitude, d.EndMagnitude, a, b)
		m1 += quadrature.AdaptiveSimpson(quadrature.LeftKernel(p, l), a, b, q)
		m2 -= quadrature.AdaptiveSimpson(quadrature.RightKernel(p, l), a, b, q)
	}

	switch r {
	case StartReleased:
		m2 -= m1 / 2
		m1 = 0
	case EndReleased:
		m1 -= m2 / 2
		m2 = 0
	}
	return m1, m2
}

// EquivalentForces returns the fixed-end force vector [−f1, −m1, −f2, −m2].
// The end reactions follow from equilibrium of the loads inside the element
// together with the fixed-end moments.
func (e *Element) EquivalentForces(r Release, q quadrature.Options) []float64 {
	m1, m2 := e.FixedEndMoments(r, q)

	var sumM, sumF float64
	for _, p := range e.PointLoads {
		if e.onNode(p.Position) {
			continue
		}
		sumM -= (p.Position - e.Start) * p.Magnitude
		sumF += p.Magnitude
	}
	for _, d := range e.DistributedLoads {
		sumM -= d.MomentAbout(e.Start)
		sumF += d.Resultant()
	}
	for _, m := range e.Moments {
		if e.onNode(m.Position) {
			continue
		}
		sumM += m.Magnitude
	}

	f2 := -(sumM + m1 + m2) / e.Length
	f1 := sumF - f2
	return []float64{-f1, -m1, -f2, -m2}
}

func (e *Element) onNode(x float64) bool {
	return x == e.Start || x == e.End
}
