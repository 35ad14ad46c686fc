// Package quadrature integrates load kernels over element intervals.
package quadrature

import "math"

// Func is a real function of one variable
type Func func(x float64) float64

// Options bounds the adaptive refinement
type Options struct {
	Tolerance float64
	MaxDepth  int
}

// DefaultOptions returns tolerance 1e-6 and a maximum depth of 20
func DefaultOptions() Options {
	return Options{Tolerance: 1e-6, MaxDepth: 20}
}

// AdaptiveSimpson integrates f over [a, b]. An interval is bisected until the
// Richardson error estimate of its two-panel value is within the tolerance or the
// depth limit is reached.
func AdaptiveSimpson(f Func, a, b float64, opts Options) float64 {
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-6
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 20
	}
	if a == b {
		return 0
	}
	return refine(f, a, b, f(a), f((a+b)/2), f(b), opts, 0)
}

func refine(f Func, a, b, fa, fm, fb float64, opts Options, depth int) float64 {
	m := (a + b) / 2
	h := b - a
	fml := f((a + m) / 2)
	fmr := f((m + b) / 2)
	i1 := h / 6 * (fa + 4*fm + fb)
	i2 := h / 12 * (fa + 4*fml + 2*fm + 4*fmr + fb)
	estimate := (i2 - i1) / 15
	if depth >= opts.MaxDepth || math.Abs(estimate) <= opts.Tolerance {
		return i2 + estimate
	}
	return refine(f, a, m, fa, fml, fm, opts, depth+1) +
		refine(f, m, b, fm, fmr, fb, opts, depth+1)
}
