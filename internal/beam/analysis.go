package beam

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/alexiusacademia/gobeam/internal/units"
)

// Result holds the outcome of a beam analysis
type Result struct {
	Name   string       `json:"name,omitempty"`
	System units.System `json:"system"`

	// Model is the preprocessed span layout the elements were built from
	Model    *Model     `json:"model"`
	Elements []*Element `json:"-"`

	// Unknowns holds the solved displacements in partition order, and
	// Reactions the reaction at every global DOF, both from the first pass
	Unknowns  []float64 `json:"unknowns"`
	Reactions []float64 `json:"reactions"`
	Diagrams  []Diagram `json:"diagrams"`

	Primary *Solution `json:"primary"`
	// Secondary is the second-pass solution, present when the beam has an internal hinge
	Secondary *Solution `json:"secondary,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Analyze resolves, preprocesses and solves a beam definition
func Analyze(in *Input, opts Options) (*Result, error) {
	m, err := Resolve(in)
	if err != nil {
		return nil, err
	}
	r, err := AnalyzeModel(m, opts)
	if err != nil {
		return nil, err
	}
	r.Name = in.Name
	return r, nil
}

// AnalyzeModel preprocesses and solves a resolved model. The model is not modified.
func AnalyzeModel(m *Model, opts Options) (*Result, error) {
	pre := Preprocess(m)
	elements := Elements(pre)
	if len(elements) == 0 {
		return nil, fmt.Errorf("beam has no elements")
	}

	log.WithFields(log.Fields{
		"system":   pre.System,
		"nodes":    len(pre.Boundaries),
		"elements": len(elements),
		"hinges":   pre.HasHinge(),
	}).Debug("analyzing beam")

	r := &Result{System: pre.System, Model: pre, Elements: elements}

	primary, err := Solve(pre, elements, PassOne, opts)
	if err != nil {
		return nil, err
	}
	r.Primary = primary
	r.Unknowns = primary.Unknowns
	r.Reactions = primary.Reactions
	r.warnIfUnconverged(primary)

	if pre.HasHinge() {
		secondary, err := Solve(pre, elements, PassTwo, opts)
		if err != nil {
			return nil, err
		}
		r.Secondary = secondary
		r.warnIfUnconverged(secondary)
	}

	if r.Diagrams, err = Diagrams(elements, primary); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Result) warnIfUnconverged(s *Solution) {
	if s.Converged {
		return
	}
	r.Warnings = append(r.Warnings, fmt.Sprintf(
		"pass %d: conjugate gradient did not converge after %d iterations (residual %.3g)",
		s.Pass, s.Iterations, s.Residual))
}

// SupportReaction is the reaction at a physical support
type SupportReaction struct {
	Node     int     `json:"node"`
	Kind     Kind    `json:"kind"`
	Position float64 `json:"position"`
	Force    float64 `json:"force"`  // upward positive
	Moment   float64 `json:"moment"` // counterclockwise positive
}

// SupportReactions maps the reaction vector back onto the physical supports
// that restrain at least one DOF
func (r *Result) SupportReactions() []SupportReaction {
	var out []SupportReaction
	for i, b := range r.Model.Boundaries {
		if !b.Physical() {
			continue
		}
		vKnown, rKnown := constrained(b)
		if !vKnown && !rKnown {
			continue
		}
		sr := SupportReaction{Node: i, Kind: b.Kind, Position: b.Position}
		if vKnown {
			sr.Force = r.Reactions[2*i]
		}
		if rKnown {
			sr.Moment = r.Reactions[2*i+1]
		}
		out = append(out, sr)
	}
	return out
}

// Equilibrium returns the residual vertical force and the residual moment
// about the origin of the reactions together with the applied loads. Both
// are zero up to solver tolerance for a converged analysis.
func (r *Result) Equilibrium() (force, moment float64) {
	m := r.Model
	for i, b := range m.Boundaries {
		force += r.Reactions[2*i]
		moment += r.Reactions[2*i]*b.Position + r.Reactions[2*i+1]
	}
	for _, p := range m.PointLoads {
		force -= p.Magnitude
		moment -= p.Magnitude * p.Position
	}
	for _, d := range m.DistributedLoads {
		force -= d.Resultant()
		moment -= d.MomentAbout(0)
	}
	for _, mo := range m.Moments {
		moment += mo.Magnitude
	}
	return force, moment
}

// AppliedLoad returns the total downward force of all loads
func (r *Result) AppliedLoad() float64 {
	total := 0.0
	for _, p := range r.Model.PointLoads {
		total += p.Magnitude
	}
	for _, d := range r.Model.DistributedLoads {
		total += d.Resultant()
	}
	return total
}

// DiagramAt evaluates a named diagram at a global position. At a shared node
// the element on the left is used.
func (r *Result) DiagramAt(kind string, x float64) (float64, error) {
	for _, d := range r.Diagrams {
		if x >= d.Start && x <= d.Start+d.Length {
			return d.At(kind, x)
		}
	}
	return 0, fmt.Errorf("position %g lies outside the beam", x)
}
