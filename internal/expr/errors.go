package expr

import (
	"errors"
	"fmt"
)

// EvalError represents a failure to parse or evaluate an expression.
//
// Evaluation errors include:
//   - Malformed syntax: unbalanced parentheses, dangling operators
//   - Unknown tokens: identifiers and symbols outside the grammar
//   - Division by zero
//   - Domain violations: factorial of a non-integer, log of a non-positive
//
// EvalError includes structured fields for diagnostics; Pos is a byte
// offset into the canonical form of the input.
type EvalError struct {
	// Code identifies the error category.
	Code EvalErrorCode

	// Message is a human-readable description.
	Message string

	// Expr is the canonical text being evaluated.
	Expr string

	// Pos is the byte offset where the error was detected.
	Pos int

	// Token is the offending token, when one exists.
	Token string
}

// EvalErrorCode categorizes evaluation errors.
type EvalErrorCode string

const (
	// ErrCodeParse indicates malformed syntax.
	ErrCodeParse EvalErrorCode = "PARSE_ERROR"

	// ErrCodeInvalidExpression indicates an unknown token, operator, or a
	// domain violation (factorial of a non-integer, log of a non-positive).
	ErrCodeInvalidExpression EvalErrorCode = "INVALID_EXPRESSION"

	// ErrCodeDivisionByZero indicates a zero divisor.
	ErrCodeDivisionByZero EvalErrorCode = "DIVISION_BY_ZERO"
)

// Error implements the error interface.
func (e *EvalError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s (token=%q, pos=%d)", e.Code, e.Message, e.Token, e.Pos)
	}
	return fmt.Sprintf("%s: %s (pos=%d)", e.Code, e.Message, e.Pos)
}

// IsParseError returns true if the error is a syntax error.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeParse
	}
	return false
}

// IsInvalidExpression returns true if the error is an unknown-token or
// domain-violation error. Uses errors.As to handle wrapped errors.
func IsInvalidExpression(err error) bool {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeInvalidExpression
	}
	return false
}

// IsDivisionByZero returns true if the error is a zero-divisor error.
// Uses errors.As to handle wrapped errors.
func IsDivisionByZero(err error) bool {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeDivisionByZero
	}
	return false
}
