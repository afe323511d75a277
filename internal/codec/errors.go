package codec

import (
	"errors"
	"fmt"
)

// CodecError represents a decode failure.
//
// Decode errors include:
//   - Bit misalignment: the flattened cell count is not a multiple of 8
//   - Ambiguous cell: a non-zero cell does not verify against 1,
//     signaling tampering or corruption
type CodecError struct {
	// Code identifies the error category.
	Code CodecErrorCode

	// Message is a human-readable description.
	Message string

	// Row and Col locate the offending cell (AMBIGUOUS_CELL only).
	Row int
	Col int

	// Cell is the offending cell text (AMBIGUOUS_CELL only).
	Cell string
}

// CodecErrorCode categorizes decode errors.
type CodecErrorCode string

const (
	// ErrCodeBitMisaligned indicates a flattened length not divisible by 8.
	ErrCodeBitMisaligned CodecErrorCode = "BIT_MISALIGNED"

	// ErrCodeAmbiguousCell indicates a non-zero cell that fails
	// verification against 1.
	ErrCodeAmbiguousCell CodecErrorCode = "AMBIGUOUS_CELL"
)

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Code == ErrCodeAmbiguousCell {
		return fmt.Sprintf("%s: %s (row=%d, col=%d, cell=%q)",
			e.Code, e.Message, e.Row, e.Col, e.Cell)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsBitMisaligned returns true if the error reports a cell count that is
// not a multiple of 8. Uses errors.As to handle wrapped errors.
func IsBitMisaligned(err error) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeBitMisaligned
	}
	return false
}

// IsAmbiguousCell returns true if the error reports a cell that failed
// verification. Uses errors.As to handle wrapped errors.
func IsAmbiguousCell(err error) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeAmbiguousCell
	}
	return false
}
