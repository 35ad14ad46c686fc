package beam

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/section"
)

// Input is the user-facing description of a multi-span beam. Magnitudes carry
// their own units; positions are measured in the beam length unit.
type Input struct {
	Name   string `json:"name,omitempty"`
	System string `json:"system,omitempty"` // metric (default) or imperial

	Length   Quantity       `json:"length"`
	Supports []SupportInput `json:"supports"`

	// One section per span between consecutive supports, or a single
	// section applied to every span
	Sections []SectionInput `json:"sections"`

	Loads LoadsInput `json:"loads"`
}

// Quantity is a value tagged with its unit
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Support type names
const (
	SupportFixed         = "fixed"
	SupportPinned        = "pinned"
	SupportRoller        = "roller"
	SupportInternalHinge = "internal_hinge"
	SupportFreeEnd       = "free_end"
)

// SupportInput is a boundary condition at a position along the beam
type SupportInput struct {
	Type       string          `json:"type"`
	Position   float64         `json:"position"`
	Settlement SettlementInput `json:"settlement"`
	Rotation   RotationInput   `json:"rotation"`
}

// SettlementInput is a prescribed vertical displacement
type SettlementInput struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"`      // length unit, default mm
	Direction string  `json:"direction,omitempty"` // up or down (default)
	Set       bool    `json:"set"`
}

// RotationInput is a prescribed rotation
type RotationInput struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"` // radians (default) or degrees
	Clockwise bool    `json:"clockwise"`
	Set       bool    `json:"set"`
}

// SectionInput describes the flexural rigidity of a span
type SectionInput struct {
	YoungModulus    ModulusInput `json:"young_modulus"`
	MomentOfInertia InertiaInput `json:"moment_of_inertia"`
}

// ModulusInput gives E directly, through a material preset, or not at all (E = 1).
// A zero value counts as not given.
type ModulusInput struct {
	Value       float64 `json:"value,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Coefficient float64 `json:"coefficient,omitempty"` // dimensionless, default 1

	// Material preset (steel or concrete) used when no value is given
	Material string  `json:"material,omitempty"`
	Fc       float64 `json:"fc,omitempty"` // concrete strength f'c (MPa)
}

// InertiaInput gives I directly, through a polygon shape, or not at all (I = 1).
// A zero value counts as not given.
type InertiaInput struct {
	Value       float64        `json:"value,omitempty"`
	Unit        string         `json:"unit,omitempty"`
	Coefficient float64        `json:"coefficient,omitempty"` // dimensionless, default 1
	Shape       *section.Shape `json:"shape,omitempty"`
}

// LoadsInput groups the applied loads
type LoadsInput struct {
	PointLoads       []PointLoadInput       `json:"point_loads,omitempty"`
	DistributedLoads []DistributedLoadInput `json:"distributed_loads,omitempty"`
	Moments          []MomentInput          `json:"moments,omitempty"`
}

// PointLoadInput is a concentrated force, positive downward
type PointLoadInput struct {
	Position  float64 `json:"position"`
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

// DistributedLoadInput is a trapezoidal load, positive downward
type DistributedLoadInput struct {
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	StartMagnitude float64 `json:"start_magnitude"`
	EndMagnitude   float64 `json:"end_magnitude"`
	Unit           string  `json:"unit"`
}

// MomentInput is a concentrated couple
type MomentInput struct {
	Position  float64 `json:"position"`
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
	Clockwise bool    `json:"clockwise"`
}

// LoadFromFile loads a beam definition from a JSON file
func LoadFromFile(filepath string) (*Input, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a JSON beam definition
func Parse(data []byte) (*Input, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Spans returns the number of spans between consecutive supports
func (in *Input) Spans() int {
	if len(in.Supports) < 2 {
		return 0
	}
	return len(in.Supports) - 1
}

// MaxNodes bounds the boundaries a beam may introduce. The global stiffness
// matrix is dense, so memory grows with the square of this count.
const MaxNodes = 1000

// nodeCount is an upper bound on the boundaries Preprocess will create
func (in *Input) nodeCount() int {
	n := len(in.Supports) + len(in.Loads.PointLoads) + len(in.Loads.Moments) + 2*len(in.Loads.DistributedLoads)
	for _, s := range in.Supports {
		if strings.ToLower(s.Type) == SupportInternalHinge {
			n++
		}
	}
	return n
}

// Validate checks the beam definition for structural consistency.
// Unit strings are checked later, during resolution.
func (in *Input) Validate() error {
	if in.Length.Value <= 0 {
		return &ValidationError{"beam length must be positive"}
	}
	if len(in.Supports) < 2 {
		return &ValidationError{"beam must have at least 2 boundary conditions"}
	}
	if n := in.nodeCount(); n > MaxNodes {
		return &ValidationError{fmt.Sprintf("beam defines up to %d nodes, limit is %d", n, MaxNodes)}
	}
	for i, s := range in.Supports {
		switch strings.ToLower(s.Type) {
		case SupportFixed, SupportPinned, SupportRoller, SupportInternalHinge, SupportFreeEnd:
		default:
			return &ValidationError{fmt.Sprintf("support %d has unknown type %q", i+1, s.Type)}
		}
		if s.Position < 0 || s.Position > in.Length.Value {
			return &ValidationError{fmt.Sprintf("support %d at %g lies outside the beam [0, %g]", i+1, s.Position, in.Length.Value)}
		}
		if i > 0 && s.Position <= in.Supports[i-1].Position {
			return &ValidationError{fmt.Sprintf("support %d at %g must come after support %d at %g", i+1, s.Position, i, in.Supports[i-1].Position)}
		}
		if d := strings.ToLower(s.Settlement.Direction); d != "" && d != "up" && d != "down" {
			return &ValidationError{fmt.Sprintf("support %d settlement direction must be up or down, got %q", i+1, s.Settlement.Direction)}
		}
	}
	if n := len(in.Sections); n != 1 && n != in.Spans() {
		return &ValidationError{fmt.Sprintf("expected 1 or %d sections, got %d", in.Spans(), n)}
	}
	for i, sec := range in.Sections {
		if sec.YoungModulus.Coefficient < 0 || sec.MomentOfInertia.Coefficient < 0 {
			return &ValidationError{fmt.Sprintf("section %d coefficients must not be negative", i+1)}
		}
		if sec.MomentOfInertia.Shape != nil {
			if err := sec.MomentOfInertia.Shape.Validate(); err != nil {
				return &ValidationError{fmt.Sprintf("section %d shape: %v", i+1, err)}
			}
		}
	}

	first, last := in.Supports[0].Position, in.Supports[len(in.Supports)-1].Position
	within := func(x float64) bool { return x >= first && x <= last }
	for i, p := range in.Loads.PointLoads {
		if !within(p.Position) {
			return &ValidationError{fmt.Sprintf("point load %d at %g lies outside the supported span [%g, %g]", i+1, p.Position, first, last)}
		}
	}
	for i, m := range in.Loads.Moments {
		if !within(m.Position) {
			return &ValidationError{fmt.Sprintf("moment %d at %g lies outside the supported span [%g, %g]", i+1, m.Position, first, last)}
		}
	}
	for i, d := range in.Loads.DistributedLoads {
		if d.End <= d.Start {
			return &ValidationError{fmt.Sprintf("distributed load %d must end after it starts", i+1)}
		}
		if !within(d.Start) || !within(d.End) {
			return &ValidationError{fmt.Sprintf("distributed load %d [%g, %g] lies outside the supported span [%g, %g]", i+1, d.Start, d.End, first, last)}
		}
	}
	return nil
}

// ValidationError represents a beam definition error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
