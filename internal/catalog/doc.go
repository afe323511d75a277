// Package catalog provides the single authoritative registry of predefined
// expressions, grouped by value class.
//
// The entries are declared exactly once, in the embedded catalog.cue file,
// and compiled through the CUE SDK on first use. Consumers must never
// re-declare literal expression lists; they import this package and read
// from Default().
//
// The default catalog is built once per process and is read-only afterward,
// so it is safe for concurrent readers without locking. Accessors return
// defensive copies.
package catalog
