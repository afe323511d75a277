package diversity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/exprgrid/internal/expr"
	"github.com/roach88/exprgrid/internal/verify"
)

// requireDiverse asserts the core diversity contract: n textually distinct
// expressions, each verifying against the target.
func requireDiverse(t *testing.T, target float64, exprs []expr.Expression, n int) {
	t.Helper()
	require.Len(t, exprs, n)
	seen := make(map[string]bool)
	for _, e := range exprs {
		assert.False(t, seen[e.Text], "duplicate expression %q", e.Text)
		seen[e.Text] = true
		ok, err := verify.Verify(e.Text, target, verify.DefaultTolerance)
		require.NoError(t, err, "expression %q", e.Text)
		assert.True(t, ok, "expression %q does not verify against %g", e.Text, target)
	}
}

// TestGenerateUnity tests that target 1 draws from the catalog pool first.
func TestGenerateUnity(t *testing.T) {
	exprs, err := Generate(1, 5)
	require.NoError(t, err)
	requireDiverse(t, 1, exprs, 5)

	for _, e := range exprs {
		assert.NotEqual(t, expr.CategorySynthesized, e.Category,
			"expression %q should come from the catalog", e.Text)
	}
}

// TestGenerateZero tests the zero-class pool.
func TestGenerateZero(t *testing.T) {
	exprs, err := Generate(0, 5)
	require.NoError(t, err)
	requireDiverse(t, 0, exprs, 5)
}

// TestGenerateArbitraryTargets tests synthesis for values outside the
// catalog's classes.
func TestGenerateArbitraryTargets(t *testing.T) {
	for _, target := range []float64{5, 42, -3, 0.5, 7.25, 13} {
		exprs, err := Generate(target, 6)
		require.NoError(t, err, "target %g", target)
		requireDiverse(t, target, exprs, 6)
	}
}

// TestGenerateBeyondCatalogPool tests that unity generation keeps going
// with synthesized forms once the catalog pool is consumed.
func TestGenerateBeyondCatalogPool(t *testing.T) {
	exprs, err := Generate(1, 30)
	require.NoError(t, err)
	requireDiverse(t, 1, exprs, 30)
}

// TestGenerateDeterministic tests that generation has no hidden
// randomness.
func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(7, 8)
	require.NoError(t, err)
	b, err := Generate(7, 8)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerateHugeTargetTerminates tests the bounded-search guarantee:
// a near-overflow target must produce either a valid set or a typed error,
// never an unbounded loop.
func TestGenerateHugeTargetTerminates(t *testing.T) {
	exprs, err := Generate(1e308, 5)
	if err != nil {
		assert.True(t, IsSearchExhausted(err) || IsInsufficientDiversity(err),
			"unexpected error: %v", err)
		return
	}
	requireDiverse(t, 1e308, exprs, 5)
}

// TestGenerateNonFiniteTarget tests the fail-closed path for targets no
// expression can equal.
func TestGenerateNonFiniteTarget(t *testing.T) {
	for _, target := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := Generate(target, 5)
		require.Error(t, err, "target %v", target)
		assert.True(t, IsInsufficientDiversity(err), "target %v: got %v", target, err)
	}
}

// TestGenerateFactorialRatio tests the factorial identity template for
// small integer targets.
func TestGenerateFactorialRatio(t *testing.T) {
	exprs, err := Generate(5, 10)
	require.NoError(t, err)
	requireDiverse(t, 5, exprs, 10)

	var found bool
	for _, e := range exprs {
		if e.Text == "5!/4!" {
			found = true
		}
	}
	assert.True(t, found, "expected the factorial ratio 5!/4! in %v", exprs)
}

// TestGenerateDefaultMinCount tests the zero-count fallback.
func TestGenerateDefaultMinCount(t *testing.T) {
	exprs, err := Generate(3, 0)
	require.NoError(t, err)
	assert.Len(t, exprs, DefaultMinCount)
}
