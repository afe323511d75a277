// Package identity derives reproducible, name-seeded expression sequences
// from the catalog.
//
// The derivation uses a linear-congruential generator with fixed constants
// and pure integer arithmetic, so the same (name, size) pair yields the
// same sequence on every platform and every run. That reproducibility is
// the feature's entire value as a repeatable challenge or signature; no
// non-deterministic random source may ever be involved.
package identity
