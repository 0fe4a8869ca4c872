// Package bigint implements arbitrary-precision signed integers stored as a
// little-endian vector of 64-bit words plus a sign flag.
//
// Values are exact. Arithmetic never overflows; storage grows as needed and
// every operation leaves its result in canonical form: no leading zero words
// and a zero that is never negative.
//
// The package is not safe for concurrent mutation of a single Int. Distinct
// values may be used from different goroutines freely.
package bigint
