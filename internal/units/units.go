// Package units resolves user supplied quantities to the canonical units used by
// the analysis. Metric analyses run in m, kN, kN-m, kN/m, kPa and m⁴. Imperial
// analyses run in in, lbf, lbf-in, lbf/in, psi and in⁴. Rotations are radians.
package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownUnit is returned when a unit string is not recognized
var ErrUnknownUnit = errors.New("units: unrecognized unit")

// System selects the canonical unit set of an analysis
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// ParseSystem validates a system name. An empty name defaults to metric.
func ParseSystem(name string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(name))) {
	case "", Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	}
	return "", fmt.Errorf("unknown unit system %q (expected metric or imperial)", name)
}

// table maps a unit name to its factor relative to the quantity's reference unit
type table map[string]float64

// factor looks up a unit, case-insensitively
func (t table) factor(quantity, unit string) (float64, error) {
	f, ok := t[normalize(unit)]
	if !ok {
		return 0, fmt.Errorf("%w: %s unit %q (supported: %s)", ErrUnknownUnit, quantity, unit, t.names())
	}
	return f, nil
}

func (t table) names() string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// Convert converts a value of a named quantity between two units.
// Quantity names: length, force, moment, distributed, modulus, inertia, rotation.
func Convert(quantity string, value float64, from, to string) (float64, error) {
	switch normalize(quantity) {
	case "length":
		l, err := NewLength(value, from)
		if err != nil {
			return 0, err
		}
		return l.In(to)
	case "force", "load":
		f, err := NewForce(value, from)
		if err != nil {
			return 0, err
		}
		return f.In(to)
	case "moment":
		m, err := NewMoment(value, from)
		if err != nil {
			return 0, err
		}
		return m.In(to)
	case "distributed", "distributed_load":
		d, err := NewDistributedLoad(value, from)
		if err != nil {
			return 0, err
		}
		return d.In(to)
	case "modulus", "young_modulus":
		e, err := NewYoungModulus(value, from)
		if err != nil {
			return 0, err
		}
		return e.In(to)
	case "inertia", "moment_of_inertia":
		i, err := NewMomentOfInertia(value, from)
		if err != nil {
			return 0, err
		}
		return i.In(to)
	case "rotation":
		r, err := NewRotation(value, from)
		if err != nil {
			return 0, err
		}
		return r.In(to)
	}
	return 0, fmt.Errorf("unknown quantity %q", quantity)
}
