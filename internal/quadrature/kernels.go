package quadrature

// Linear returns the intensity function of a load varying linearly from p1 at a
// to p2 at b. A zero-width interval yields the constant p1.
func Linear(p1, p2, a, b float64) Func {
	if b == a {
		return func(float64) float64 { return p1 }
	}
	slope := (p2 - p1) / (b - a)
	return func(x float64) float64 {
		return p1 + slope*(x-a)
	}
}

// LeftKernel weights p by the start-end fixed-end moment shape x·(L−x)²/L²
func LeftKernel(p Func, l float64) Func {
	return func(x float64) float64 {
		return p(x) * x * (l - x) * (l - x) / (l * l)
	}
}

// RightKernel weights p by the far-end fixed-end moment shape x²·(L−x)/L²
func RightKernel(p Func, l float64) Func {
	return func(x float64) float64 {
		return p(x) * x * x * (l - x) / (l * l)
	}
}
