package identity

import (
	"github.com/roach88/exprgrid/internal/catalog"
	"github.com/roach88/exprgrid/internal/expr"
)

// LCG constants (the classic glibc parameters). Fixed forever: changing
// them silently changes every derived identity set.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// DeriveSet returns size expressions selected from the default catalog,
// seeded by name. Two calls with the same arguments return identical
// sequences.
func DeriveSet(name string, size int) []expr.Expression {
	return DeriveSetFrom(catalog.Default(), name, size)
}

// DeriveSetFrom derives against an explicit catalog. A non-positive size
// yields an empty, non-nil slice.
func DeriveSetFrom(cat *catalog.Catalog, name string, size int) []expr.Expression {
	out := make([]expr.Expression, 0, max(size, 0))
	if size <= 0 {
		return out
	}

	all := cat.All()
	state := Seed(name)
	for i := 0; i < size; i++ {
		state = (state*lcgMultiplier + lcgIncrement) % lcgModulus
		out = append(out, all[int(state%int64(len(all)))])
	}
	return out
}

// Seed maps a name to the initial LCG state: the sum of its rune code
// points. Platform-independent by construction.
func Seed(name string) int64 {
	var sum int64
	for _, r := range name {
		sum += int64(r)
	}
	return sum % lcgModulus
}
