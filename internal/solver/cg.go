// Package solver solves the symmetric positive-definite systems produced by
// stiffness partitioning.
package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/exp/linsolve"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gobeam/internal/matrix"
)

var (
	// ErrNonSquare is returned when the coefficient matrix is not square
	ErrNonSquare = errors.New("solver: coefficient matrix is not square")
	// ErrDimensionMismatch is returned when the right-hand side length does not match the matrix
	ErrDimensionMismatch = errors.New("solver: right-hand side length mismatch")
)

// Default solver parameters
const (
	DefaultTolerance     = 1e-12
	DefaultMaxIterations = 1000
)

// Options tunes the conjugate gradient iteration
type Options struct {
	// Tolerance is relative to the norm of the right-hand side
	Tolerance float64
	// MaxIterations is a floor; systems larger than a tenth of it get 10n iterations
	MaxIterations int
}

// DefaultOptions returns the default solver parameters
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// Result holds the solution and convergence information
type Result struct {
	X          []float64
	Iterations int
	Residual   float64
	Converged  bool
}

// ConjugateGradient solves a·x = b. Failure to converge is not an error:
// the best iterate is returned with Converged set to false.
func ConjugateGradient(a *matrix.Dense, b []float64, opts Options) (Result, error) {
	if !a.IsSquare() {
		return Result{}, fmt.Errorf("%w: %dx%d", ErrNonSquare, a.Rows(), a.Cols())
	}
	n := a.Rows()
	if len(b) != n {
		return Result{}, fmt.Errorf("%w: matrix is %dx%d, rhs has %d entries", ErrDimensionMismatch, n, n, len(b))
	}
	if opts.Tolerance <= 0 || opts.Tolerance >= 1 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	switch {
	case n == 0:
		return Result{X: []float64{}, Converged: true}, nil
	case n == 1 && a.At(0, 0) != 0:
		return Result{X: []float64{b[0] / a.At(0, 0)}, Converged: true}, nil
	}

	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		return Result{X: make([]float64, n), Converged: true}, nil
	}

	maxIter := opts.MaxIterations
	if 10*n > maxIter {
		maxIter = 10 * n
	}

	// The system is solved for a unit right-hand side so the solver's
	// absolute early exit acts as a relative one.
	rhs := mat.NewVecDense(n, nil)
	rhs.ScaleVec(1/bnorm, mat.NewVecDense(n, b))

	cg := &bestIterate{}
	out, err := linsolve.Iterative(operator{a.Mat()}, rhs, cg, &linsolve.Settings{
		Tolerance:     opts.Tolerance,
		MaxIterations: maxIter,
	})
	var breakdown *linsolve.BreakdownError
	x, residual := out.X, out.ResidualNorm
	switch {
	case err == nil:
	case errors.Is(err, linsolve.ErrIterationLimit), errors.As(err, &breakdown):
		x, residual = cg.x, cg.residual
	default:
		return Result{}, err
	}

	res := Result{
		X:          make([]float64, n),
		Iterations: out.Stats.Iterations,
		Residual:   residual * bnorm,
		Converged:  err == nil || residual <= opts.Tolerance,
	}
	floats.ScaleTo(res.X, bnorm, x.RawVector().Data)
	return res, nil
}

// operator exposes a dense matrix to the iterative solver
type operator struct {
	*mat.Dense
}

func (o operator) MulVecTo(dst *mat.VecDense, trans bool, x mat.Vector) {
	if trans {
		dst.MulVec(o.T(), x)
	} else {
		dst.MulVec(o.Dense, x)
	}
}

// bestIterate runs plain CG and remembers the iterate with the smallest
// residual. A non-finite residual means p·Ap vanished, so the matrix is not
// positive definite along the search direction.
type bestIterate struct {
	linsolve.CG
	x        *mat.VecDense
	residual float64
}

func (b *bestIterate) Init(x, residual *mat.VecDense) {
	b.CG.Init(x, residual)
	b.x = mat.VecDenseCopyOf(x)
	b.residual = mat.Norm(residual, 2)
}

func (b *bestIterate) Iterate(ctx *linsolve.Context) (linsolve.Operation, error) {
	op, err := b.CG.Iterate(ctx)
	if err != nil || op != linsolve.MajorIteration {
		return op, err
	}
	if math.IsNaN(ctx.ResidualNorm) || math.IsInf(ctx.ResidualNorm, 0) {
		return op, &linsolve.BreakdownError{Value: ctx.ResidualNorm}
	}
	if ctx.ResidualNorm < b.residual {
		b.x.CopyVec(ctx.X)
		b.residual = ctx.ResidualNorm
	}
	return op, nil
}
