package matrix

import "fmt"

// Add returns d + b
func (d *Dense) Add(b *Dense) (*Dense, error) {
	if d.rows != b.rows || d.cols != b.cols {
		return nil, fmt.Errorf("%w: add %dx%d and %dx%d", ErrDimensionMismatch, d.rows, d.cols, b.rows, b.cols)
	}
	out := New(d.rows, d.cols)
	if out.m != nil {
		out.m.Add(d.m, b.m)
	}
	return out, nil
}

// Subtract returns d - b
func (d *Dense) Subtract(b *Dense) (*Dense, error) {
	if d.rows != b.rows || d.cols != b.cols {
		return nil, fmt.Errorf("%w: subtract %dx%d and %dx%d", ErrDimensionMismatch, d.rows, d.cols, b.rows, b.cols)
	}
	out := New(d.rows, d.cols)
	if out.m != nil {
		out.m.Sub(d.m, b.m)
	}
	return out, nil
}

// Multiply returns the product d·b
func (d *Dense) Multiply(b *Dense) (*Dense, error) {
	if d.cols != b.rows {
		return nil, fmt.Errorf("%w: multiply %dx%d by %dx%d", ErrDimensionMismatch, d.rows, d.cols, b.rows, b.cols)
	}
	out := New(d.rows, b.cols)
	// An inner dimension of zero leaves the zero-filled result.
	if out.m != nil && d.cols > 0 {
		out.m.Mul(d.m, b.m)
	}
	return out, nil
}

// Scale returns s·d
func (d *Dense) Scale(s float64) *Dense {
	out := New(d.rows, d.cols)
	if out.m != nil {
		out.m.Scale(s, d.m)
	}
	return out
}

// Strike returns a copy with the listed rows and columns removed.
// Duplicate indices are ignored.
func (d *Dense) Strike(rows, cols []int) (*Dense, error) {
	keepRows, err := complement(rows, d.rows)
	if err != nil {
		return nil, err
	}
	keepCols, err := complement(cols, d.cols)
	if err != nil {
		return nil, err
	}
	return d.Select(keepRows, keepCols)
}

// Select returns the submatrix made of the listed rows and columns, in order
func (d *Dense) Select(rows, cols []int) (*Dense, error) {
	for _, r := range rows {
		if r < 0 || r >= d.rows {
			return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, r, d.rows)
		}
	}
	for _, c := range cols {
		if c < 0 || c >= d.cols {
			return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, c, d.cols)
		}
	}
	out := New(len(rows), len(cols))
	for i, r := range rows {
		for j, c := range cols {
			out.m.Set(i, j, d.m.At(r, c))
		}
	}
	return out, nil
}

// complement returns the ascending indices in [0, n) not present in remove
func complement(remove []int, n int) ([]int, error) {
	drop := make(map[int]bool, len(remove))
	for _, i := range remove {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: index %d of %d", ErrIndexOutOfRange, i, n)
		}
		drop[i] = true
	}
	keep := make([]int, 0, n-len(drop))
	for i := 0; i < n; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	return keep, nil
}
