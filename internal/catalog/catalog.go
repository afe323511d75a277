package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/roach88/exprgrid/internal/expr"
)

//go:embed catalog.cue
var catalogCUE string

// Entry is one catalog row: an expression and the value it must equal.
type Entry struct {
	Expr  expr.Expression
	Value float64
}

// Catalog is a read-only set of predefined expressions in declaration
// order. Build it with Compile, or use the process-wide Default.
type Catalog struct {
	entries []Entry
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the process-wide catalog compiled from the embedded
// catalog.cue. The catalog is built once and never mutated afterward, so
// concurrent callers need no synchronization.
//
// Panics if the embedded file does not compile; that is a build defect, not
// a runtime condition, and the package tests cover it.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Compile(catalogCUE)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog.cue invalid: %v", err))
		}
		defaultCat = cat
	})
	return defaultCat
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns every expression in declaration order.
func (c *Catalog) All() []expr.Expression {
	out := make([]expr.Expression, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Expr
	}
	return out
}

// Entries returns a copy of the full entry list in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Unity returns the unity-class expressions in declaration order.
func (c *Catalog) Unity() []expr.Expression {
	return c.byCategory(expr.CategoryUnity)
}

// Zero returns the zero-class expressions in declaration order.
func (c *Catalog) Zero() []expr.Expression {
	return c.byCategory(expr.CategoryZero)
}

// Advanced returns the advanced-class expressions in declaration order.
func (c *Catalog) Advanced() []expr.Expression {
	return c.byCategory(expr.CategoryAdvanced)
}

// Pool returns every expression whose declared value equals target, in
// declaration order. For target 1 that is the unity entries followed by
// the advanced identities; for target 0 the zero entries. Any other
// target yields an empty slice.
func (c *Catalog) Pool(target float64) []expr.Expression {
	var out []expr.Expression
	for _, e := range c.entries {
		if e.Value == target {
			out = append(out, e.Expr)
		}
	}
	return out
}

func (c *Catalog) byCategory(cat expr.Category) []expr.Expression {
	var out []expr.Expression
	for _, e := range c.entries {
		if e.Expr.Category == cat {
			out = append(out, e.Expr)
		}
	}
	return out
}
