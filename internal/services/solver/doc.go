// Package solver orchestrates one reconstruction: select the threshold
// points from a document, interpolate at zero, and attempt exact-integer
// extraction of the result.
package solver
