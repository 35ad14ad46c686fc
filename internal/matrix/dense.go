// Package matrix provides the dense matrix type used to assemble and partition
// stiffness systems. Storage is backed by gonum; zero-sized matrices are legal
// and arise naturally when a partition has no known or no unknown DOFs.
package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Dense is a row-major general matrix
type Dense struct {
	rows, cols int
	m          *mat.Dense // nil when rows or cols is zero
}

// New creates a zero-filled r×c matrix
func New(r, c int) *Dense {
	if r < 0 || c < 0 {
		panic(fmt.Sprintf("matrix: negative dimension %dx%d", r, c))
	}
	d := &Dense{rows: r, cols: c}
	if r > 0 && c > 0 {
		d.m = mat.NewDense(r, c, nil)
	}
	return d
}

// FromRows creates a matrix from a slice of equal-length rows
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	c := len(rows[0])
	d := New(len(rows), c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(row), c)
		}
		d.m.SetRow(i, row)
	}
	return d, nil
}

// NewVector creates an n×1 column vector holding a copy of v
func NewVector(v []float64) *Dense {
	d := New(len(v), 1)
	for i, x := range v {
		d.m.Set(i, 0, x)
	}
	return d
}

// Rows returns the number of rows
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns
func (d *Dense) Cols() int { return d.cols }

// IsSquare reports whether the matrix has as many rows as columns
func (d *Dense) IsSquare() bool { return d.rows == d.cols }

// At returns element (i, j)
func (d *Dense) At(i, j int) float64 {
	return d.m.At(i, j)
}

// Set sets element (i, j)
func (d *Dense) Set(i, j int, v float64) {
	d.m.Set(i, j, v)
}

// AddAt adds v to element (i, j)
func (d *Dense) AddAt(i, j int, v float64) {
	d.m.Set(i, j, d.m.At(i, j)+v)
}

// Clone returns an independent copy
func (d *Dense) Clone() *Dense {
	c := &Dense{rows: d.rows, cols: d.cols}
	if d.m != nil {
		c.m = mat.DenseCopyOf(d.m)
	}
	return c
}

// IsZero reports whether every element is exactly zero
func (d *Dense) IsZero() bool {
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			if d.m.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// Column returns a copy of column j
func (d *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= d.cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, j, d.cols)
	}
	out := make([]float64, d.rows)
	if d.rows > 0 {
		mat.Col(out, j, d.m)
	}
	return out, nil
}

// Vector returns the first column. Empty matrices yield an empty slice.
func (d *Dense) Vector() []float64 {
	if d.cols == 0 {
		return make([]float64, d.rows)
	}
	v, _ := d.Column(0)
	return v
}

// RawRows returns a copy of the matrix as a slice of rows
func (d *Dense) RawRows() [][]float64 {
	out := make([][]float64, d.rows)
	for i := range out {
		out[i] = make([]float64, d.cols)
		if d.cols > 0 {
			mat.Row(out[i], i, d.m)
		}
	}
	return out
}

// Mat exposes the gonum view. It is nil for zero-sized matrices.
func (d *Dense) Mat() *mat.Dense { return d.m }

// String formats the matrix for debugging
func (d *Dense) String() string {
	if d.m == nil {
		return fmt.Sprintf("[%dx%d]", d.rows, d.cols)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v", mat.Formatted(d.m, mat.Squeeze()))
	return sb.String()
}
