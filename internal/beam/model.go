package beam

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/units"
)

// Kind is the type of a boundary node
type Kind int

const (
	MidSpan Kind = iota // internal marker, no constraint and no release
	Fixed
	Pinned
	Roller
	InternalHinge
	FreeEnd
)

var kindNames = map[Kind]string{
	MidSpan:       "mid_span",
	Fixed:         SupportFixed,
	Pinned:        SupportPinned,
	Roller:        SupportRoller,
	InternalHinge: SupportInternalHinge,
	FreeEnd:       SupportFreeEnd,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind maps a support type name to its kind
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown support type %q", name)
}

// Boundary is a node of the span layout with resolved values
type Boundary struct {
	Kind     Kind    `json:"kind"`
	Position float64 `json:"position"`

	Settlement    float64 `json:"settlement"` // up positive
	SettlementSet bool    `json:"settlement_set"`
	Rotation      float64 `json:"rotation"` // radians, counterclockwise positive
	RotationSet   bool    `json:"rotation_set"`
}

// Physical reports whether the node is a user-defined support rather than a marker
func (b Boundary) Physical() bool { return b.Kind != MidSpan }

// PointLoad is a concentrated force, positive downward
type PointLoad struct {
	Position  float64 `json:"position"`
	Magnitude float64 `json:"magnitude"`
}

// Moment is a concentrated couple, counterclockwise positive
type Moment struct {
	Position  float64 `json:"position"`
	Magnitude float64 `json:"magnitude"`
}

// DistributedLoad is a linearly varying load, positive downward
type DistributedLoad struct {
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	StartMagnitude float64 `json:"start_magnitude"`
	EndMagnitude   float64 `json:"end_magnitude"`
}

// At returns the intensity at x by linear interpolation
func (d DistributedLoad) At(x float64) float64 {
	if d.End == d.Start {
		return d.StartMagnitude
	}
	return d.StartMagnitude + (d.EndMagnitude-d.StartMagnitude)*(x-d.Start)/(d.End-d.Start)
}

// Resultant returns the total force of the load
func (d DistributedLoad) Resultant() float64 {
	return (d.StartMagnitude + d.EndMagnitude) / 2 * (d.End - d.Start)
}

// MomentAbout returns the moment of the load's resultant about x, taking
// positions beyond x as positive lever arms. The trapezoid is split into a
// rectangle and a triangle.
func (d DistributedLoad) MomentAbout(x float64) float64 {
	base := d.End - d.Start
	rect := d.StartMagnitude * base
	tri := (d.EndMagnitude - d.StartMagnitude) * base / 2
	return rect*(d.Start-x+base/2) + tri*(d.Start-x+2*base/3)
}

// Model is a beam with every quantity resolved to the canonical units of its system
type Model struct {
	System units.System `json:"system"`
	Length float64      `json:"length"`

	Boundaries []Boundary `json:"boundaries"`
	// Rigidities holds EI for each span between consecutive boundaries
	Rigidities []float64 `json:"rigidities"`

	PointLoads       []PointLoad       `json:"point_loads,omitempty"`
	Moments          []Moment          `json:"moments,omitempty"`
	DistributedLoads []DistributedLoad `json:"distributed_loads,omitempty"`
}

// Clone returns a deep copy of the model
func (m *Model) Clone() *Model {
	c := *m
	c.Boundaries = append([]Boundary(nil), m.Boundaries...)
	c.Rigidities = append([]float64(nil), m.Rigidities...)
	c.PointLoads = append([]PointLoad(nil), m.PointLoads...)
	c.Moments = append([]Moment(nil), m.Moments...)
	c.DistributedLoads = append([]DistributedLoad(nil), m.DistributedLoads...)
	return &c
}

// HasHinge reports whether any boundary is an internal hinge
func (m *Model) HasHinge() bool {
	for _, b := range m.Boundaries {
		if b.Kind == InternalHinge {
			return true
		}
	}
	return false
}

// DOFs returns the number of global degrees of freedom
func (m *Model) DOFs() int { return 2 * len(m.Boundaries) }
