package beam

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/alexiusacademia/gobeam/internal/matrix"
	"github.com/alexiusacademia/gobeam/internal/quadrature"
	"github.com/alexiusacademia/gobeam/internal/solver"
)

// Options tunes the numerical parts of an analysis
type Options struct {
	Solver     solver.Options
	Quadrature quadrature.Options
}

// DefaultOptions returns the default solver and quadrature settings
func DefaultOptions() Options {
	return Options{
		Solver:     solver.DefaultOptions(),
		Quadrature: quadrature.DefaultOptions(),
	}
}

// Solution is the outcome of one global solve
type Solution struct {
	Pass     Pass      `json:"pass"`
	Releases []Release `json:"-"`

	Stiffness        *matrix.Dense `json:"-"`
	NodalForces      []float64     `json:"nodal_forces"`
	EquivalentForces []float64     `json:"equivalent_forces"`

	// Global DOF indices, ascending
	Known   []int `json:"known"`
	Unknown []int `json:"unknown"`

	// Unknowns holds the solved displacements in the order of Unknown
	Unknowns      []float64 `json:"unknowns"`
	Displacements []float64 `json:"displacements"`
	Reactions     []float64 `json:"reactions"`

	// Per element, local DOF order
	LocalDisplacements [][]float64 `json:"local_displacements"`
	LocalForces        [][]float64 `json:"local_forces"`

	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
	Residual   float64 `json:"residual"`
}

// Solve assembles and solves the global system of a preprocessed model for one pass
func Solve(m *Model, elements []*Element, pass Pass, opts Options) (*Solution, error) {
	n := m.DOFs()
	s := &Solution{
		Pass:             pass,
		Releases:         make([]Release, len(elements)),
		Stiffness:        matrix.New(n, n),
		NodalForces:      make([]float64, n),
		EquivalentForces: make([]float64, n),
		Displacements:    make([]float64, n),
	}

	// Assemble
	stiffness := make([]*matrix.Dense, len(elements))
	equivalent := make([][]float64, len(elements))
	for i, e := range elements {
		r := pass.Release(e)
		s.Releases[i] = r
		stiffness[i] = e.Stiffness(r)
		equivalent[i] = e.EquivalentForces(r, opts.Quadrature)
		nodal := e.NodalForces()
		dofs := e.DOFs()
		for a, ga := range dofs {
			s.NodalForces[ga] += nodal[a]
			s.EquivalentForces[ga] += equivalent[i][a]
			for b, gb := range dofs {
				s.Stiffness.AddAt(ga, gb, stiffness[i].At(a, b))
			}
		}
	}
	forces := make([]float64, n)
	for i := range forces {
		forces[i] = s.NodalForces[i] + s.EquivalentForces[i]
	}

	// Prescribed values and DOF classification
	for i, b := range m.Boundaries {
		if b.SettlementSet {
			s.Displacements[2*i] = b.Settlement
		}
		if b.RotationSet {
			s.Displacements[2*i+1] = b.Rotation
		}
		vKnown, rKnown := constrained(b)
		if vKnown {
			s.Known = append(s.Known, 2*i)
		} else {
			s.Unknown = append(s.Unknown, 2*i)
		}
		if rKnown {
			s.Known = append(s.Known, 2*i+1)
		} else {
			s.Unknown = append(s.Unknown, 2*i+1)
		}
	}

	// Partition: Kuu·x = F_u − Kuk·d_k
	kuu, err := s.Stiffness.Select(s.Unknown, s.Unknown)
	if err != nil {
		return nil, err
	}
	kuk, err := s.Stiffness.Select(s.Unknown, s.Known)
	if err != nil {
		return nil, err
	}
	dk := make([]float64, len(s.Known))
	for k, g := range s.Known {
		dk[k] = s.Displacements[g]
	}
	kd, err := kuk.Multiply(matrix.NewVector(dk))
	if err != nil {
		return nil, err
	}
	rhs := make([]float64, len(s.Unknown))
	for k, g := range s.Unknown {
		rhs[k] = forces[g] - kd.At(k, 0)
	}

	res, err := solver.ConjugateGradient(kuu, rhs, opts.Solver)
	if err != nil {
		return nil, fmt.Errorf("pass %d: %w", pass, err)
	}
	s.Converged, s.Iterations, s.Residual = res.Converged, res.Iterations, res.Residual
	if !res.Converged {
		log.WithFields(log.Fields{
			"pass":       int(pass),
			"unknowns":   len(rhs),
			"iterations": res.Iterations,
			"residual":   res.Residual,
		}).Warn("conjugate gradient did not converge")
	}
	s.Unknowns = res.X
	for k, g := range s.Unknown {
		s.Displacements[g] = res.X[k]
	}

	// Reactions over every DOF
	kdFull, err := s.Stiffness.Multiply(matrix.NewVector(s.Displacements))
	if err != nil {
		return nil, err
	}
	s.Reactions = make([]float64, n)
	for i := range s.Reactions {
		s.Reactions[i] = kdFull.At(i, 0) - forces[i]
	}

	// Local recovery
	s.LocalDisplacements = make([][]float64, len(elements))
	s.LocalForces = make([][]float64, len(elements))
	for i, e := range elements {
		local := make([]float64, 4)
		for a, g := range e.DOFs() {
			local[a] = s.Displacements[g]
		}
		kl, err := stiffness[i].Multiply(matrix.NewVector(local))
		if err != nil {
			return nil, err
		}
		f := kl.Vector()
		for a := range f {
			f[a] -= equivalent[i][a]
		}
		s.LocalDisplacements[i] = local
		s.LocalForces[i] = f
	}

	log.WithFields(log.Fields{
		"pass":       int(pass),
		"elements":   len(elements),
		"dofs":       n,
		"unknowns":   len(s.Unknown),
		"iterations": res.Iterations,
	}).Debug("global solve complete")
	return s, nil
}

// constrained reports whether the displacement and rotation of a node are known
func constrained(b Boundary) (displacement, rotation bool) {
	switch b.Kind {
	case Fixed:
		return true, true
	case Pinned, Roller:
		return true, b.RotationSet
	}
	return b.SettlementSet, b.RotationSet
}
