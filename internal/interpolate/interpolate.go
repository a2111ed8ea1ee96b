package interpolate

import (
	"errors"
	"fmt"
	"math/big"

	"polyshare/internal/domain"
	"polyshare/internal/rational"
)

// ErrNoPoints is returned when the point set is empty.
var ErrNoPoints = errors.New("interpolate: no points supplied")

// AtZero computes f(0) for the unique polynomial of degree len(points)-1
// passing through all the given points:
//
//	f(0) = Σ_i  y_i · Π_{j≠i} (0 − x_j) / (x_i − x_j)
//
// Two points sharing an x-coordinate make the denominator vanish; the
// resulting rational.ErrDivisionByZero is wrapped with the coordinate and
// returned. The summation order does not affect the (exact) result.
func AtZero(points []domain.Point) (rational.Fraction, error) {
	if len(points) == 0 {
		return rational.Fraction{}, ErrNoPoints
	}

	result := rational.Zero()
	for i, pi := range points {
		term := rational.FromInt(pi.Y)
		for j, pj := range points {
			if j == i {
				continue
			}
			// term *= (0 - x_j) / (x_i - x_j)
			term = term.Mul(rational.FromInt(new(big.Int).Neg(pj.X)))
			diff := new(big.Int).Sub(pi.X, pj.X)
			next, err := term.Div(rational.FromInt(diff))
			if err != nil {
				return rational.Fraction{}, fmt.Errorf(
					"interpolate: duplicate x-coordinate %s: %w", pi.X, err)
			}
			term = next
		}
		result = result.Add(term)
	}
	return result, nil
}
