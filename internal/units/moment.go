package units

// momentTable holds kN-m per unit
var momentTable = table{
	"kn.m":   1,
	"n.m":    0.001,
	"kn.mm":  0.001,
	"kgf.m":  0.00980665,
	"lbf.in": 0.000112985,
	"lbf.ft": 0.00135582,
	"kip.in": 0.112985,
	"kip.ft": 1.35582,
}

// Moment is a concentrated moment resolved to kN-m
type Moment struct {
	knm float64
}

// NewMoment resolves a moment given in any supported unit
func NewMoment(value float64, unit string) (Moment, error) {
	f, err := momentTable.factor("moment", unit)
	if err != nil {
		return Moment{}, err
	}
	return Moment{knm: value * f}, nil
}

// KNm returns the moment in kN-m
func (m Moment) KNm() float64 { return m.knm }

// LbfIn returns the moment in lbf-in
func (m Moment) LbfIn() float64 { return m.knm / momentTable["lbf.in"] }

// Canonical returns the moment in kN-m (metric) or lbf-in (imperial)
func (m Moment) Canonical(s System) float64 {
	if s == Imperial {
		return m.LbfIn()
	}
	return m.KNm()
}

// In returns the moment expressed in the given unit
func (m Moment) In(unit string) (float64, error) {
	f, err := momentTable.factor("moment", unit)
	if err != nil {
		return 0, err
	}
	return m.knm / f, nil
}
