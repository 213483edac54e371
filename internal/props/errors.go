package props

import (
	"errors"
	"fmt"
)

// LookupError represents a failed property query.
//
// Lookup errors include:
//   - Out of range: the requested state lies outside the fluid's valid
//     pressure/temperature envelope (below triple point, above model limits)
//   - No convergence: the equation-of-state volume iteration or an inverse
//     temperature search failed to converge
//   - Inconsistent pair: the two independent variables cannot describe a
//     single state (e.g. quality outside [0,1], entropy off both branches)
//
// LookupError carries the query kind and the offending values so callers can
// identify which state point failed.
type LookupError struct {
	// Code identifies the error category.
	Code LookupErrorCode

	// Message is a human-readable description.
	Message string

	// Query names the independent-variable pair, e.g. "PT", "PS", "PQ".
	Query string

	// Fluid is the working fluid name.
	Fluid string

	// Values holds the query inputs keyed by symbol ("P", "T", "S", ...).
	Values map[string]float64
}

// LookupErrorCode categorizes lookup errors.
type LookupErrorCode string

const (
	// ErrCodeOutOfRange indicates the state lies outside the valid envelope.
	ErrCodeOutOfRange LookupErrorCode = "OUT_OF_RANGE"

	// ErrCodeNoConvergence indicates an iterative solve failed to converge.
	ErrCodeNoConvergence LookupErrorCode = "NO_CONVERGENCE"

	// ErrCodeInconsistentPair indicates the variable pair describes no state.
	ErrCodeInconsistentPair LookupErrorCode = "INCONSISTENT_PAIR"
)

// Error implements the error interface.
func (e *LookupError) Error() string {
	if len(e.Values) > 0 {
		return fmt.Sprintf("%s: %s (fluid=%s, query=%s, values=%v)", e.Code, e.Message, e.Fluid, e.Query, e.Values)
	}
	return fmt.Sprintf("%s: %s (fluid=%s, query=%s)", e.Code, e.Message, e.Fluid, e.Query)
}

// IsOutOfRange returns true if the error is an out-of-range lookup error.
// Uses errors.As to handle wrapped errors.
func IsOutOfRange(err error) bool {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Code == ErrCodeOutOfRange
	}
	return false
}

// IsNoConvergence returns true if the error is a convergence failure.
// Uses errors.As to handle wrapped errors.
func IsNoConvergence(err error) bool {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Code == ErrCodeNoConvergence
	}
	return false
}

// IsInconsistentPair returns true if the error reports a variable pair that
// describes no physical state. Uses errors.As to handle wrapped errors.
func IsInconsistentPair(err error) bool {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Code == ErrCodeInconsistentPair
	}
	return false
}

func newRangeError(fluid, query, message string, values map[string]float64) *LookupError {
	return &LookupError{
		Code:    ErrCodeOutOfRange,
		Message: message,
		Query:   query,
		Fluid:   fluid,
		Values:  values,
	}
}

func newConvergenceError(fluid, query, message string, values map[string]float64) *LookupError {
	return &LookupError{
		Code:    ErrCodeNoConvergence,
		Message: message,
		Query:   query,
		Fluid:   fluid,
		Values:  values,
	}
}
