package beam

import "fmt"

// Diagram holds the polynomials of one element, in its local coordinate
type Diagram struct {
	Element int     `json:"element"`
	Start   float64 `json:"start"`
	Length  float64 `json:"length"`

	Load       Polynomial `json:"load"`
	Shear      Polynomial `json:"shear"`
	Moment     Polynomial `json:"moment"`
	Slope      Polynomial `json:"slope"`
	Deflection Polynomial `json:"deflection"`

	// Rotation and Displacement integrate M/EI from the solved end rotation
	// and deflection, so they match the nodal displacements in rad and length
	Rotation     Polynomial `json:"rotation"`
	Displacement Polynomial `json:"displacement"`
}

// Diagrams builds the diagram polynomials of every element from one solution.
// Every distributed load on an element must cover the whole element.
func Diagrams(elements []*Element, s *Solution) ([]Diagram, error) {
	out := make([]Diagram, 0, len(elements))
	for i, e := range elements {
		var w0, w1 float64
		for _, d := range e.DistributedLoads {
			if d.End-d.Start != e.Length {
				return nil, fmt.Errorf("%w: element %d [%g, %g] carries a load over [%g, %g]",
					ErrLoadSpan, i+1, e.Start, e.End, d.Start, d.End)
			}
			w0 += d.StartMagnitude
			w1 += (d.EndMagnitude - d.StartMagnitude) / e.Length
		}

		f0 := s.LocalForces[i][0]
		m0 := s.LocalForces[i][1]
		v0 := s.LocalDisplacements[i][0]
		t0 := s.LocalDisplacements[i][1]
		ei := e.EI

		out = append(out, Diagram{
			Element: i,
			Start:   e.Start,
			Length:  e.Length,
			Load:    Polynomial{w0, w1},
			Shear:   Polynomial{f0, -w0, -w1 / 2},
			// Clockwise (negative) end moments are sagging
			Moment:     Polynomial{-m0, f0, -w0 / 2, -w1 / 6},
			Slope:      Polynomial{t0 / ei, -m0 / ei, f0 / (2 * ei), -w0 / (6 * ei), -w1 / (24 * ei)},
			Deflection: Polynomial{v0 / ei, t0 / ei, -m0 / (2 * ei), f0 / (6 * ei), -w0 / (24 * ei), -w1 / (120 * ei)},

			Rotation:     Polynomial{t0, -m0 / ei, f0 / (2 * ei), -w0 / (6 * ei), -w1 / (24 * ei)},
			Displacement: Polynomial{v0, t0, -m0 / (2 * ei), f0 / (6 * ei), -w0 / (24 * ei), -w1 / (120 * ei)},
		})
	}
	return out, nil
}

// At evaluates a named diagram at a global position inside the element
func (d Diagram) At(kind string, x float64) (float64, error) {
	p, err := d.Polynomial(kind)
	if err != nil {
		return 0, err
	}
	return p.Evaluate(x - d.Start), nil
}

// Polynomial returns the diagram polynomial by name
func (d Diagram) Polynomial(kind string) (Polynomial, error) {
	switch kind {
	case "load":
		return d.Load, nil
	case "shear":
		return d.Shear, nil
	case "moment":
		return d.Moment, nil
	case "slope":
		return d.Slope, nil
	case "deflection":
		return d.Deflection, nil
	case "rotation":
		return d.Rotation, nil
	case "displacement":
		return d.Displacement, nil
	}
	return Polynomial{}, fmt.Errorf("unknown diagram %q", kind)
}
