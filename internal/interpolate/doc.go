// Package interpolate evaluates the Lagrange interpolation polynomial at
// x = 0 using exact rational arithmetic. Given k points with pairwise
// distinct x-coordinates it recovers the constant term of the unique
// degree-(k-1) polynomial through them, with no rounding at any step.
package interpolate
