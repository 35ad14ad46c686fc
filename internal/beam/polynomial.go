package beam

// Polynomial is A0 + A1·x + … + A5·x⁵ in the local coordinate of an element
type Polynomial [6]float64

// Evaluate returns the polynomial's value at x
func (p Polynomial) Evaluate(x float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// Add returns the coefficient-wise sum
func (p Polynomial) Add(q Polynomial) Polynomial {
	var out Polynomial
	for i := range p {
		out[i] = p[i] + q[i]
	}
	return out
}

// Sample evaluates the polynomial at n evenly spaced points over [0, length].
// It returns the local positions and the values.
func (p Polynomial) Sample(length float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x := length * float64(i) / float64(n-1)
		xs[i] = x
		ys[i] = p.Evaluate(x)
	}
	return xs, ys
}
