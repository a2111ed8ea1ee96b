package radix

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	// MinBase and MaxBase bound the supported radix range. 36 covers the
	// digits 0-9 plus a-z.
	MinBase = 2
	MaxBase = 36
)

var (
	// ErrBaseRange is returned for a radix outside [MinBase, MaxBase].
	ErrBaseRange = fmt.Errorf("radix: base must be between %d and %d", MinBase, MaxBase)

	// ErrEmptyDigits is returned when the digit string is empty.
	ErrEmptyDigits = errors.New("radix: empty digit string")
)

// Parse decodes a digit string in the given base to an arbitrary-precision
// integer. Letters are accepted in either case; a single leading sign is
// allowed.
func Parse(s string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, ErrBaseRange
	}
	if s == "" {
		return nil, ErrEmptyDigits
	}
	// big.Int treats upper and lower case letters as the same digit for
	// bases up to 36, which matches the input contract here.
	x, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("radix: %q is not a valid base-%d number", s, base)
	}
	return x, nil
}

// Format encodes x in the given base using lowercase digits. Parse(Format(x))
// returns x for every supported base.
func Format(x *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", ErrBaseRange
	}
	return x.Text(base), nil
}
