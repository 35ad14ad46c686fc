package units

// lengthTable holds meters per unit
var lengthTable = table{
	"m":  1,
	"cm": 1e-2,
	"mm": 1e-3,
	"km": 1e3,
	"in": 0.0254,
	"ft": 0.3048,
	"yd": 0.9144,
}

// Length is a length resolved to meters
type Length struct {
	meters float64
}

// NewLength resolves a length given in any supported unit
func NewLength(value float64, unit string) (Length, error) {
	f, err := lengthTable.factor("length", unit)
	if err != nil {
		return Length{}, err
	}
	return Length{meters: value * f}, nil
}

// Meters returns the length in meters
func (l Length) Meters() float64 { return l.meters }

// Inches returns the length in inches
func (l Length) Inches() float64 { return l.meters / lengthTable["in"] }

// Canonical returns the length in meters (metric) or inches (imperial)
func (l Length) Canonical(s System) float64 {
	if s == Imperial {
		return l.Inches()
	}
	return l.Meters()
}

// In returns the length expressed in the given unit
func (l Length) In(unit string) (float64, error) {
	f, err := lengthTable.factor("length", unit)
	if err != nil {
		return 0, err
	}
	return l.meters / f, nil
}
