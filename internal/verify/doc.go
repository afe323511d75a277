// Package verify provides the tolerance-based equivalence check between an
// expression and an expected value.
//
// Verification is the codec's trust boundary: the decoder accepts a cell
// only if this package accepts it. The tolerance is an explicit parameter
// everywhere, never a hidden constant; DefaultTolerance is the documented
// default, wide enough to absorb float round-off on trig and log paths
// while still rejecting genuinely wrong values.
package verify
