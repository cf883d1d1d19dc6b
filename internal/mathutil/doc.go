// Package mathutil provides scalar helpers shared by the second-order systems:
// clamping, periodic wrapping and shortest angular differences.
package mathutil
