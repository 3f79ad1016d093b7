package bilateral

import "errors"

// Index computation errors
var (
	// ErrNoMatchedProducts indicates the intersection of the required
	// product identifier sets is empty.
	ErrNoMatchedProducts = errors.New("no matched products between periods")

	// ErrMissingColumns indicates a table is missing one or more of the
	// columns a formula requires.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrDegenerateWeights indicates a formula's weighting scheme is
	// undefined for the given data: a zero BMW weight sum, or equal base
	// and comparison expenditure shares under Sato-Vartia.
	ErrDegenerateWeights = errors.New("degenerate index weights")

	// ErrNonPositiveValue indicates a matched price or quantity is zero,
	// negative, NaN or infinite.
	ErrNonPositiveValue = errors.New("non-positive price or quantity")

	// ErrUnknownMethod indicates a method name that does not map to any
	// index formula.
	ErrUnknownMethod = errors.New("unknown index method")
)
