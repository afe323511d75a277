// Package diversity synthesizes sets of textually distinct expressions
// that all evaluate to the same target value.
//
// Generation is deterministic: there is no randomness, so the same
// (target, minCount) always yields the same expressions in the same order.
// Catalog entries are drawn first when the target is exactly 1 or 0; after
// that, parametric templates are expanded in a fixed order. The search is
// bounded - a generator never loops without terminating, regardless of
// target magnitude.
package diversity
