package beam

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/units"
)

// Resolve converts the input to a Model in canonical units. The input is not
// modified and the model shares no memory with it. Unknown units are fatal.
func Resolve(in *Input) (*Model, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sys, err := units.ParseSystem(in.System)
	if err != nil {
		return nil, err
	}

	lengthUnit := in.Length.Unit
	position := func(x float64) (float64, error) {
		l, err := units.NewLength(x, lengthUnit)
		if err != nil {
			return 0, err
		}
		return l.Canonical(sys), nil
	}

	m := &Model{System: sys}
	if m.Length, err = position(in.Length.Value); err != nil {
		return nil, fmt.Errorf("beam length: %w", err)
	}

	for i, s := range in.Supports {
		b, err := resolveBoundary(s, sys, position)
		if err != nil {
			return nil, fmt.Errorf("support %d: %w", i+1, err)
		}
		m.Boundaries = append(m.Boundaries, b)
	}

	for span := 0; span < in.Spans(); span++ {
		sec := in.Sections[0]
		if len(in.Sections) > 1 {
			sec = in.Sections[span]
		}
		ei, err := Rigidity(sec, sys)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", span+1, err)
		}
		m.Rigidities = append(m.Rigidities, ei)
	}

	for i, p := range in.Loads.PointLoads {
		f, err := units.NewForce(p.Magnitude, p.Unit)
		if err != nil {
			return nil, fmt.Errorf("point load %d: %w", i+1, err)
		}
		x, err := position(p.Position)
		if err != nil {
			return nil, fmt.Errorf("point load %d: %w", i+1, err)
		}
		m.PointLoads = append(m.PointLoads, PointLoad{Position: x, Magnitude: f.Canonical(sys)})
	}

	for i, mo := range in.Loads.Moments {
		mm, err := units.NewMoment(mo.Magnitude, mo.Unit)
		if err != nil {
			return nil, fmt.Errorf("moment %d: %w", i+1, err)
		}
		x, err := position(mo.Position)
		if err != nil {
			return nil, fmt.Errorf("moment %d: %w", i+1, err)
		}
		v := mm.Canonical(sys)
		if mo.Clockwise {
			v = -v
		}
		m.Moments = append(m.Moments, Moment{Position: x, Magnitude: v})
	}

	for i, d := range in.Loads.DistributedLoads {
		w1, err := units.NewDistributedLoad(d.StartMagnitude, d.Unit)
		if err != nil {
			return nil, fmt.Errorf("distributed load %d: %w", i+1, err)
		}
		w2, err := units.NewDistributedLoad(d.EndMagnitude, d.Unit)
		if err != nil {
			return nil, fmt.Errorf("distributed load %d: %w", i+1, err)
		}
		start, err := position(d.Start)
		if err != nil {
			return nil, fmt.Errorf("distributed load %d: %w", i+1, err)
		}
		end, err := position(d.End)
		if err != nil {
			return nil, fmt.Errorf("distributed load %d: %w", i+1, err)
		}
		m.DistributedLoads = append(m.DistributedLoads, DistributedLoad{
			Start:          start,
			End:            end,
			StartMagnitude: w1.Canonical(sys),
			EndMagnitude:   w2.Canonical(sys),
		})
	}

	return m, nil
}

func resolveBoundary(s SupportInput, sys units.System, position func(float64) (float64, error)) (Boundary, error) {
	kind, err := ParseKind(strings.ToLower(s.Type))
	if err != nil {
		return Boundary{}, err
	}
	x, err := position(s.Position)
	if err != nil {
		return Boundary{}, err
	}
	b := Boundary{Kind: kind, Position: x, SettlementSet: s.Settlement.Set, RotationSet: s.Rotation.Set}

	settlementUnit := s.Settlement.Unit
	if settlementUnit == "" {
		settlementUnit = "mm"
	}
	settlement, err := units.NewLength(s.Settlement.Value, settlementUnit)
	if err != nil {
		return Boundary{}, fmt.Errorf("settlement: %w", err)
	}
	b.Settlement = settlement.Canonical(sys)
	if !strings.EqualFold(s.Settlement.Direction, "up") {
		b.Settlement = -b.Settlement
	}

	rotationUnit := s.Rotation.Unit
	if rotationUnit == "" {
		rotationUnit = "radians"
	}
	rotation, err := units.NewRotation(s.Rotation.Value, rotationUnit)
	if err != nil {
		return Boundary{}, fmt.Errorf("rotation: %w", err)
	}
	b.Rotation = rotation.Radians()
	if s.Rotation.Clockwise {
		b.Rotation = -b.Rotation
	}
	return b, nil
}

// Rigidity computes EI = coefE·coefI·E·I for a section, with E in kPa (psi)
// and I in m⁴ (in⁴). A missing E or I counts as 1.
func Rigidity(sec SectionInput, sys units.System) (float64, error) {
	e := 1.0
	switch {
	case sec.YoungModulus.Value != 0:
		em, err := units.NewYoungModulus(sec.YoungModulus.Value, sec.YoungModulus.Unit)
		if err != nil {
			return 0, err
		}
		e = em.Canonical(sys)
	case sec.YoungModulus.Material != "":
		mpa, err := nscp.Modulus(sec.YoungModulus.Material, sec.YoungModulus.Fc)
		if err != nil {
			return 0, err
		}
		em, err := units.NewYoungModulus(mpa, "mpa")
		if err != nil {
			return 0, err
		}
		e = em.Canonical(sys)
	}

	i := 1.0
	switch {
	case sec.MomentOfInertia.Value != 0:
		im, err := units.NewMomentOfInertia(sec.MomentOfInertia.Value, sec.MomentOfInertia.Unit)
		if err != nil {
			return 0, err
		}
		i = im.Canonical(sys)
	case sec.MomentOfInertia.Shape != nil:
		shape := sec.MomentOfInertia.Shape
		im, err := units.NewMomentOfInertia(shape.Ix(), shape.InertiaUnit())
		if err != nil {
			return 0, err
		}
		i = im.Canonical(sys)
	}

	return safeMultiply(
		coefficient(sec.YoungModulus.Coefficient),
		coefficient(sec.MomentOfInertia.Coefficient),
		e,
		i,
	)
}

func coefficient(c float64) float64 {
	if c == 0 {
		return 1
	}
	return c
}

// safeMultiply multiplies the factors, failing on any non-finite factor or product
func safeMultiply(values ...float64) (float64, error) {
	acc := 1.0
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%w: invalid factor %g", ErrNonFiniteRigidity, v)
		}
		acc *= v
		if math.IsInf(acc, 0) || math.IsNaN(acc) {
			return 0, fmt.Errorf("%w: overflow multiplying %v", ErrNonFiniteRigidity, values)
		}
	}
	return acc, nil
}
