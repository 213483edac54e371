package cycle

import (
	"errors"
	"fmt"
)

// CycleError represents a failed cycle evaluation.
//
// Evaluation errors include:
//   - Invalid conditions: input validation failed before any property lookup
//   - Infeasible cycle: specific net work is zero or negative, so no mass
//     flow can yield positive net power under the given conditions
//   - Property lookup: the property backend could not resolve a state point
//
// All three are fatal to the evaluation; no partial results are returned.
type CycleError struct {
	// Code identifies the error category.
	Code CycleErrorCode

	// Message is a human-readable description.
	Message string

	// Point names the offending state point, for property-lookup failures.
	Point string

	// Err is the underlying cause (a *props.LookupError for lookup failures).
	Err error
}

// CycleErrorCode categorizes evaluation errors.
type CycleErrorCode string

const (
	// ErrCodeInvalidConditions indicates input validation failed.
	ErrCodeInvalidConditions CycleErrorCode = "INVALID_CONDITIONS"

	// ErrCodeInfeasible indicates non-positive specific net work.
	ErrCodeInfeasible CycleErrorCode = "INFEASIBLE_CYCLE"

	// ErrCodePropertyLookup indicates a property backend failure.
	ErrCodePropertyLookup CycleErrorCode = "PROPERTY_LOOKUP"
)

// Error implements the error interface.
func (e *CycleError) Error() string {
	if e.Point != "" {
		return fmt.Sprintf("%s: %s (point=%s)", e.Code, e.Message, e.Point)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *CycleError) Unwrap() error {
	return e.Err
}

// IsInvalidConditions returns true if the error is an input-validation error.
// Uses errors.As to handle wrapped errors.
func IsInvalidConditions(err error) bool {
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidConditions
	}
	return false
}

// IsInfeasible returns true if the error reports non-positive net work.
// Uses errors.As to handle wrapped errors.
func IsInfeasible(err error) bool {
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInfeasible
	}
	return false
}

// IsLookupFailure returns true if the error wraps a property backend failure.
// Uses errors.As to handle wrapped errors.
func IsLookupFailure(err error) bool {
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodePropertyLookup
	}
	return false
}

func newConditionsError(format string, args ...interface{}) *CycleError {
	return &CycleError{
		Code:    ErrCodeInvalidConditions,
		Message: fmt.Sprintf(format, args...),
	}
}

func newInfeasibleError(specificNetWork float64) *CycleError {
	return &CycleError{
		Code:    ErrCodeInfeasible,
		Message: fmt.Sprintf("specific net work is not positive (%.3f J/kg); cycle cannot deliver net power", specificNetWork),
	}
}

func newLookupError(point string, err error) *CycleError {
	return &CycleError{
		Code:    ErrCodePropertyLookup,
		Message: "property lookup failed",
		Point:   point,
		Err:     err,
	}
}
