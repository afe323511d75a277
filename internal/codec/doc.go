// Package codec converts text to and from grids of mathematical
// expressions.
//
// Encoding maps each byte of the input to its 8 bits, substitutes every
// 1-bit with an expression drawn from a diversity pool for the value 1,
// keeps every 0-bit as the literal "0", and arranges the cells into
// fixed-width rows. The final row keeps the exact remaining cell count -
// padding or truncating it would break the round-trip invariant.
//
// Decoding is the trust boundary: a non-zero cell is accepted as a 1-bit
// only if it verifies against 1 within the configured tolerance. A cell
// that fails verification is a distinguishable, typed failure
// (AMBIGUOUS_CELL), never silently coerced to a bit.
package codec
