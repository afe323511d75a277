package diversity

import (
	"errors"
	"fmt"
)

// GenError represents a failure to produce the requested expression set.
//
// Generation errors include:
//   - Insufficient diversity: fewer valid, unique expressions exist than
//     the caller asked for (non-finite targets, mostly)
//   - Search exhausted: the bounded candidate budget ran out before
//     minCount survivors were collected
type GenError struct {
	// Code identifies the error category.
	Code GenErrorCode

	// Message is a human-readable description.
	Message string

	// Target is the value expressions were generated for.
	Target float64

	// Want is the requested expression count; Got is how many survived.
	Want int
	Got  int

	// Attempts is the number of candidates considered.
	Attempts int
}

// GenErrorCode categorizes generation errors.
type GenErrorCode string

const (
	// ErrCodeInsufficientDiversity indicates fewer than minCount valid,
	// unique expressions can exist for the target.
	ErrCodeInsufficientDiversity GenErrorCode = "INSUFFICIENT_DIVERSITY"

	// ErrCodeSearchExhausted indicates the candidate budget was spent
	// before minCount survivors were found.
	ErrCodeSearchExhausted GenErrorCode = "SEARCH_EXHAUSTED"
)

// Error implements the error interface.
func (e *GenError) Error() string {
	return fmt.Sprintf("%s: %s (target=%g, got=%d, want=%d, attempts=%d)",
		e.Code, e.Message, e.Target, e.Got, e.Want, e.Attempts)
}

// IsInsufficientDiversity returns true if the error reports too few
// producible expressions. Uses errors.As to handle wrapped errors.
func IsInsufficientDiversity(err error) bool {
	var ge *GenError
	if errors.As(err, &ge) {
		return ge.Code == ErrCodeInsufficientDiversity
	}
	return false
}

// IsSearchExhausted returns true if the error reports a spent candidate
// budget. Uses errors.As to handle wrapped errors.
func IsSearchExhausted(err error) bool {
	var ge *GenError
	if errors.As(err, &ge) {
		return ge.Code == ErrCodeSearchExhausted
	}
	return false
}
