package rational

import (
	"errors"
	"math/big"
)

var (
	// ErrZeroDenominator is returned when constructing a fraction with
	// denominator zero.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned when dividing by a zero-valued fraction.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNotAnInteger is returned by Int when the fraction does not reduce
	// to a whole number. It is an expected outcome, not a defect.
	ErrNotAnInteger = errors.New("rational: not an integer")
)

// Fraction is an exact rational number in canonical form. The zero value
// of the struct is not valid; use Zero, New, FromInt or FromInt64.
type Fraction struct {
	num *big.Int // sign lives here
	den *big.Int // always > 0
}

// New returns the canonical fraction num/den. The inputs are not retained.
func New(num, den *big.Int) (Fraction, error) {
	if den.Sign() == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return normalize(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt returns the fraction x/1. x is not retained.
func FromInt(x *big.Int) Fraction {
	return Fraction{num: new(big.Int).Set(x), den: big.NewInt(1)}
}

// FromInt64 returns the fraction x/1.
func FromInt64(x int64) Fraction {
	return Fraction{num: big.NewInt(x), den: big.NewInt(1)}
}

// Zero returns the canonical zero fraction 0/1.
func Zero() Fraction {
	return Fraction{num: new(big.Int), den: big.NewInt(1)}
}

// normalize takes ownership of num and den (den != 0) and reduces them to
// canonical form: positive denominator, lowest terms, zero as 0/1.
func normalize(num, den *big.Int) Fraction {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	// GCD requires non-negative operands; gcd(0, den) = den, which maps
	// any zero numerator to 0/1.
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)
	return Fraction{num: num, den: den}
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	num := new(big.Int).Mul(f.num, g.den)
	num.Add(num, new(big.Int).Mul(g.num, f.den))
	den := new(big.Int).Mul(f.den, g.den)
	return normalize(num, den)
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	num := new(big.Int).Mul(f.num, g.num)
	den := new(big.Int).Mul(f.den, g.den)
	return normalize(num, den)
}

// Div returns f / g, or ErrDivisionByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.num.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	num := new(big.Int).Mul(f.num, g.den)
	den := new(big.Int).Mul(f.den, g.num)
	return normalize(num, den), nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{num: new(big.Int).Neg(f.num), den: new(big.Int).Set(f.den)}
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.num) }

// Den returns a copy of the denominator (always positive).
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.den) }

// Sign reports -1, 0 or +1 depending on the sign of f.
func (f Fraction) Sign() int { return f.num.Sign() }

// Equal reports whether f and g denote the same rational number. Canonical
// form makes this a component-wise comparison.
func (f Fraction) Equal(g Fraction) bool {
	return f.num.Cmp(g.num) == 0 && f.den.Cmp(g.den) == 0
}

// IsInt reports whether f is a whole number.
func (f Fraction) IsInt() bool {
	return f.den.Cmp(bigOne) == 0
}

// Int returns the fraction as an integer when the denominator is 1, and
// ErrNotAnInteger otherwise. The fraction itself is unaffected either way.
func (f Fraction) Int() (*big.Int, error) {
	if !f.IsInt() {
		return nil, ErrNotAnInteger
	}
	return new(big.Int).Set(f.num), nil
}

// String renders "num" for whole numbers and "num/den" otherwise.
func (f Fraction) String() string {
	if f.IsInt() {
		return f.num.String()
	}
	return f.num.String() + "/" + f.den.String()
}

var bigOne = big.NewInt(1)
