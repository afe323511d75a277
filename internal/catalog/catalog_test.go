package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/exprgrid/internal/expr"
)

// TestDefaultCatalogCompiles tests that the embedded catalog builds and has
// all three value classes populated.
func TestDefaultCatalogCompiles(t *testing.T) {
	cat := Default()
	require.NotNil(t, cat)

	assert.NotEmpty(t, cat.Unity())
	assert.NotEmpty(t, cat.Zero())
	assert.NotEmpty(t, cat.Advanced())
	assert.Equal(t, cat.Len(), len(cat.All()))
}

// TestDefaultCatalogEntriesEvaluate tests the catalog's core invariant:
// every entry's text evaluates to its declared value.
func TestDefaultCatalogEntriesEvaluate(t *testing.T) {
	for _, entry := range Default().Entries() {
		got, err := entry.Expr.Evaluate()
		require.NoError(t, err, "entry %q", entry.Expr.Text)
		assert.InDelta(t, entry.Value, got, 1e-9,
			"entry %q declares value %v", entry.Expr.Text, entry.Value)
	}
}

// TestPoolPartitionsByValue tests Pool against the category accessors.
func TestPoolPartitionsByValue(t *testing.T) {
	cat := Default()

	ones := cat.Pool(1)
	zeros := cat.Pool(0)
	assert.Len(t, ones, len(cat.Unity())+len(cat.Advanced()))
	assert.Len(t, zeros, len(cat.Zero()))
	assert.Empty(t, cat.Pool(math.Pi))

	// Unity entries come first in declaration order.
	assert.Equal(t, cat.Unity(), ones[:len(cat.Unity())])
}

// TestAccessorsReturnCopies tests that callers cannot mutate the catalog
// through returned slices.
func TestAccessorsReturnCopies(t *testing.T) {
	cat := Default()
	all := cat.All()
	all[0] = expr.New("42", expr.CategorySynthesized)
	assert.NotEqual(t, all[0], cat.All()[0])
}

// TestCompileRejectsBadSchema tests CompileError reporting.
func TestCompileRejectsBadSchema(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"missing entries", `other: 1`},
		{"empty entries", `entries: []`},
		{"empty text", `entries: [{text: "", value: 1, category: "unity"}]`},
		{"bad value", `entries: [{text: "2", value: 2, category: "unity"}]`},
		{"bad category", `entries: [{text: "1", value: 1, category: "weird"}]`},
		{"duplicate text", `entries: [
			{text: "1", value: 1, category: "unity"},
			{text: "1", value: 1, category: "unity"},
		]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := schemaPrefix + tc.source
			_, err := Compile(src)
			require.Error(t, err)
		})
	}
}

// schemaPrefix mirrors the #Entry schema of the embedded file so the bad
// inputs above are rejected for the same reasons production input would be.
const schemaPrefix = `
#Entry: {
	text:     string & !=""
	value:    0 | 1
	category: "unity" | "zero" | "advanced"
}
entries: [...#Entry]
`
