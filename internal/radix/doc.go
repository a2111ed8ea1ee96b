// Package radix decodes and encodes arbitrary-precision integers in
// positional bases 2 through 36. Alphabetic digits are case-insensitive on
// the way in and lowercase on the way out.
package radix
