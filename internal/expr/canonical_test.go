package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1 + 1", "1+1"},
		{"\t2 *\n3", "2*3"},
		{"5 − 4", "5-4"},
		{"3×2", "3*2"},
		{"6÷2", "6/2"},
		{"sin²(1)", "sin²(1)"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Canonical(tc.in), "input %q", tc.in)
	}
}

func TestCanonicalNFC(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) normalizes to U+00E9. The grammar
	// rejects both, but uniqueness comparison must see them as one token.
	decomposed := "é"
	composed := "é"
	assert.Equal(t, Canonical(composed), Canonical(decomposed))
}
