package share

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"polyshare/internal/domain"
	"polyshare/internal/radix"
)

// Points decodes and returns the k interpolation points of a document: the
// shares with the k smallest x-coordinates, in ascending order. Surplus
// shares beyond the threshold are not consulted.
func Points(doc domain.Document) ([]domain.Point, error) {
	if len(doc.Shares) < doc.K {
		return nil, fmt.Errorf("%w: need %d, have %d",
			ErrNotEnoughShares, doc.K, len(doc.Shares))
	}

	xs := make([]int, 0, len(doc.Shares))
	for x := range doc.Shares {
		xs = append(xs, x)
	}
	sort.Ints(xs)

	points := make([]domain.Point, 0, doc.K)
	for _, x := range xs[:doc.K] {
		enc := doc.Shares[x]
		base, err := strconv.Atoi(string(enc.Base))
		if err != nil {
			return nil, fmt.Errorf("share %d: invalid base %q", x, enc.Base)
		}
		y, err := radix.Parse(enc.Value, base)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", x, err)
		}
		points = append(points, domain.Point{X: big.NewInt(int64(x)), Y: y})
	}
	return points, nil
}
