// Package expr provides the Expression value type and the authoritative
// evaluator for the bounded mathematical grammar.
//
// This package is the foundational layer: every other internal package
// imports expr; expr imports nothing internal. All evaluation goes through
// Evaluate - there is exactly one grammar, and it fails closed on anything
// it does not recognize rather than coercing to 0 or NaN.
//
// Supported notation:
//   - integer and decimal literals, including e-notation exponents
//   - binary operators + - * / ^ (caret is right-associative)
//   - unary minus, parentheses, absolute value |x|
//   - postfix factorial ! on non-negative integer operands
//   - prefix square root √x and the functions sqrt, cbrt
//   - sin, cos, tan and their squared forms sin², cos², tan²
//   - log (base 10), ln
//   - the constants π (pi), e, and φ (phi), substituted as floats
//
// The unicode aliases − × ÷ are accepted and canonicalized to - * /.
package expr
