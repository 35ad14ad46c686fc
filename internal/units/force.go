package units

// forceTable holds kN per unit
var forceTable = table{
	"kn":   1,
	"n":    0.001,
	"kgf":  0.00981,
	"lbf":  0.00444822,
	"kipf": 4.44822,
}

// Force is a concentrated load resolved to kN
type Force struct {
	kn float64
}

// NewForce resolves a force given in any supported unit
func NewForce(value float64, unit string) (Force, error) {
	f, err := forceTable.factor("force", unit)
	if err != nil {
		return Force{}, err
	}
	return Force{kn: value * f}, nil
}

// KN returns the force in kilonewtons
func (f Force) KN() float64 { return f.kn }

// Lbf returns the force in pound-force
func (f Force) Lbf() float64 { return f.kn / forceTable["lbf"] }

// Canonical returns the force in kN (metric) or lbf (imperial)
func (f Force) Canonical(s System) float64 {
	if s == Imperial {
		return f.Lbf()
	}
	return f.KN()
}

// In returns the force expressed in the given unit
func (f Force) In(unit string) (float64, error) {
	k, err := forceTable.factor("force", unit)
	if err != nil {
		return 0, err
	}
	return f.kn / k, nil
}
