package beam

import "errors"

var (
	// ErrNonFiniteRigidity is returned when a span's EI overflows or is not a finite number
	ErrNonFiniteRigidity = errors.New("beam: flexural rigidity is not finite")
	// ErrLoadSpan is returned when a distributed load does not cover its whole element
	ErrLoadSpan = errors.New("beam: distributed load does not span the element")
)
