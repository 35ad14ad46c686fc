package units

// distributedTable holds kN/m per unit
var distributedTable = table{
	"kn/m":   1,
	"kn/mm":  1000,
	"n/mm":   1,
	"n/m":    0.001,
	"lbf/in": 0.175127,
	"lbf/ft": 0.0145939,
}

// DistributedLoad is a load intensity resolved to kN/m
type DistributedLoad struct {
	knPerM float64
}

// NewDistributedLoad resolves a load intensity given in any supported unit
func NewDistributedLoad(value float64, unit string) (DistributedLoad, error) {
	f, err := distributedTable.factor("distributed load", unit)
	if err != nil {
		return DistributedLoad{}, err
	}
	return DistributedLoad{knPerM: value * f}, nil
}

// KNPerM returns the intensity in kN/m
func (d DistributedLoad) KNPerM() float64 { return d.knPerM }

// LbfPerIn returns the intensity in lbf/in
func (d DistributedLoad) LbfPerIn() float64 { return d.knPerM / distributedTable["lbf/in"] }

// Canonical returns the intensity in kN/m (metric) or lbf/in (imperial)
func (d DistributedLoad) Canonical(s System) float64 {
	if s == Imperial {
		return d.LbfPerIn()
	}
	return d.KNPerM()
}

// In returns the intensity expressed in the given unit
func (d DistributedLoad) In(unit string) (float64, error) {
	f, err := distributedTable.factor("distributed load", unit)
	if err != nil {
		return 0, err
	}
	return d.knPerM / f, nil
}
