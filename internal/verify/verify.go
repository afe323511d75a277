package verify

import (
	"math"

	"github.com/roach88/exprgrid/internal/expr"
)

// DefaultTolerance is the default comparison tolerance. Empirically chosen:
// it absorbs round-off from trig/log evaluation paths (tan(π/4) is one ulp
// under 1) without accepting values that are actually wrong.
const DefaultTolerance = 1e-4

// Verify evaluates text and reports whether the result is within tolerance
// of expected. Evaluation failures are returned as errors, not folded into
// a false result - the caller decides whether an unevaluable expression is
// a mismatch or a distinguishable fault.
//
// A tolerance of 0 or less falls back to DefaultTolerance.
func Verify(text string, expected, tolerance float64) (bool, error) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	got, err := expr.Evaluate(text)
	if err != nil {
		return false, err
	}
	return Within(got, expected, tolerance), nil
}

// Within reports whether |got − expected| < tolerance. NaN never verifies;
// infinities verify only against themselves.
func Within(got, expected, tolerance float64) bool {
	if math.IsNaN(got) || math.IsNaN(expected) {
		return false
	}
	if math.IsInf(got, 0) || math.IsInf(expected, 0) {
		return got == expected
	}
	return math.Abs(got-expected) < tolerance
}
