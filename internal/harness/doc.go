// Package harness provides a YAML-driven conformance harness for the
// codec.
//
// A scenario file declares a sequence of steps (encode, decode, tamper,
// generate, identity) with optional expectations, followed by assertions
// over the final state. Execution produces a trace that can be compared
// against golden files for regression detection.
//
// Scenarios are the repo's executable documentation: the round-trip,
// tamper-detection, and determinism contracts all live here as fixtures
// rather than only as hand-written test cases.
package harness
