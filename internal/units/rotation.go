package units

import "math"

var rotationTable = table{
	"radians": 1,
	"rad":     1,
	"degrees": math.Pi / 180,
	"deg":     math.Pi / 180,
}

// Rotation is an angle resolved to radians
type Rotation struct {
	radians float64
}

// NewRotation resolves an angle given in radians or degrees
func NewRotation(value float64, unit string) (Rotation, error) {
	f, err := rotationTable.factor("rotation", unit)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{radians: value * f}, nil
}

// Radians returns the angle in radians
func (r Rotation) Radians() float64 { return r.radians }

// Degrees returns the angle in degrees
func (r Rotation) Degrees() float64 { return r.radians * 180 / math.Pi }

// In returns the angle expressed in the given unit
func (r Rotation) In(unit string) (float64, error) {
	f, err := rotationTable.factor("rotation", unit)
	if err != nil {
		return 0, err
	}
	return r.radians / f, nil
}
