// Package rational implements an exact arbitrary-precision fraction type.
//
// Every Fraction is kept in canonical form: the denominator is strictly
// positive, numerator and denominator share no common factor, and zero is
// always 0/1. Values are immutable; arithmetic returns new, already
// normalized fractions. The expected "value is not a whole number" outcome
// is reported as ErrNotAnInteger from the Int query rather than a panic,
// so callers can branch on it.
package rational
