package nscp

import (
	"fmt"
	"math"
	"strings"
)

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Coefficient of the normalweight concrete modulus (Section 419.2.2.1)
	EcCoefficient = 4700.0

	// Specified compressive strength limits for structural concrete (Table 419.2.1.1)
	FcMin = 17.0 // MPa
)

// Ec calculates the modulus of elasticity of normalweight concrete
// NSCP 2015 Section 419.2.2.1: Ec = 4700√f'c
func Ec(fc float64) float64 {
	return EcCoefficient * math.Sqrt(fc)
}

// Material names accepted by Modulus
const (
	Steel    = "steel"
	Concrete = "concrete"
)

// Modulus returns the elastic modulus (MPa) of a named material preset.
// Concrete requires its compressive strength f'c in MPa.
func Modulus(material string, fc float64) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(material)) {
	case Steel:
		return Es, nil
	case Concrete:
		if fc <= 0 {
			return 0, fmt.Errorf("concrete modulus needs a positive f'c, got %g MPa", fc)
		}
		if fc < FcMin {
			return 0, fmt.Errorf("f'c = %g MPa is below the structural minimum of %g MPa", fc, FcMin)
		}
		return Ec(fc), nil
	}
	return 0, fmt.Errorf("unknown material %q (expected %s or %s)", material, Steel, Concrete)
}
