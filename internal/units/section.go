package units

import "math"

// modulusTable holds units per GPa
var modulusTable = table{
	"pa":  1e9,
	"kpa": 1e6,
	"mpa": 1e3,
	"gpa": 1,
	"psi": 145037.73773,
	"psf": 20885433.788371,
	"ksi": 145.03773773,
}

// YoungModulus is an elastic modulus resolved to GPa. Signs are dropped.
type YoungModulus struct {
	gpa float64
}

// NewYoungModulus resolves an elastic modulus given in any supported unit
func NewYoungModulus(value float64, unit string) (YoungModulus, error) {
	f, err := modulusTable.factor("elastic modulus", unit)
	if err != nil {
		return YoungModulus{}, err
	}
	return YoungModulus{gpa: math.Abs(value) / f}, nil
}

// KPa returns the modulus in kilopascals
func (e YoungModulus) KPa() float64 { return e.gpa * modulusTable["kpa"] }

// Psi returns the modulus in psi
func (e YoungModulus) Psi() float64 { return e.gpa * modulusTable["psi"] }

// Canonical returns the modulus in kPa (metric) or psi (imperial)
func (e YoungModulus) Canonical(s System) float64 {
	if s == Imperial {
		return e.Psi()
	}
	return e.KPa()
}

// In returns the modulus expressed in the given unit
func (e YoungModulus) In(unit string) (float64, error) {
	f, err := modulusTable.factor("elastic modulus", unit)
	if err != nil {
		return 0, err
	}
	return e.gpa * f, nil
}

// inertiaTable holds units per m⁴
var inertiaTable = table{
	"m^4":  1,
	"cm^4": 1e8,
	"mm^4": 1e12,
	"in^4": 2402509.60999039,
	"ft^4": 115.861767,
}

// MomentOfInertia is a second moment of area resolved to m⁴. Signs are dropped.
type MomentOfInertia struct {
	m4 float64
}

// NewMomentOfInertia resolves a moment of inertia given in any supported unit
func NewMomentOfInertia(value float64, unit string) (MomentOfInertia, error) {
	f, err := inertiaTable.factor("moment of inertia", unit)
	if err != nil {
		return MomentOfInertia{}, err
	}
	return MomentOfInertia{m4: math.Abs(value) / f}, nil
}

// M4 returns the moment of inertia in m⁴
func (i MomentOfInertia) M4() float64 { return i.m4 }

// In4 returns the moment of inertia in in⁴
func (i MomentOfInertia) In4() float64 { return i.m4 * inertiaTable["in^4"] }

// Canonical returns the moment of inertia in m⁴ (metric) or in⁴ (imperial)
func (i MomentOfInertia) Canonical(s System) float64 {
	if s == Imperial {
		return i.In4()
	}
	return i.M4()
}

// In returns the moment of inertia expressed in the given unit
func (i MomentOfInertia) In(unit string) (float64, error) {
	f, err := inertiaTable.factor("moment of inertia", unit)
	if err != nil {
		return 0, err
	}
	return i.m4 * f, nil
}
