package verify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/exprgrid/internal/expr"
)

// TestVerifyToleranceBoundary tests the documented boundary behavior.
func TestVerifyToleranceBoundary(t *testing.T) {
	ok, err := Verify("√2", 1.41421356, 1e-4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("√2", 1.5, 1e-4)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestVerifyDefaultTolerance tests the zero-tolerance fallback.
func TestVerifyDefaultTolerance(t *testing.T) {
	// tan(π/4) is one ulp under 1; the default tolerance must accept it.
	ok, err := Verify("tan(π/4)", 1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestVerifySurfacesEvalErrors tests that evaluation failures are not
// folded into a false result.
func TestVerifySurfacesEvalErrors(t *testing.T) {
	_, err := Verify("bogus(1)", 1, 1e-4)
	require.Error(t, err)
	assert.True(t, expr.IsInvalidExpression(err))
}

// TestWithinSpecialValues tests NaN and infinity handling.
func TestWithinSpecialValues(t *testing.T) {
	assert.False(t, Within(math.NaN(), 1, 1e-4))
	assert.False(t, Within(1, math.NaN(), 1e-4))
	assert.False(t, Within(math.Inf(1), 1, 1e-4))
	assert.True(t, Within(math.Inf(1), math.Inf(1), 1e-4))
	assert.False(t, Within(math.Inf(1), math.Inf(-1), 1e-4))
	assert.True(t, Within(1.00001, 1, 1e-4))
	assert.False(t, Within(1.001, 1, 1e-4))
}
