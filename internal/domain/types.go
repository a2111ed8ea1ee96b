package domain

import (
	"encoding/json"
	"fmt"
	"math/big"

	"polyshare/internal/rational"
)

// Point is one decoded share of the hidden polynomial: a sample (x, f(x)).
// Both coordinates are arbitrary precision; decoded y-values routinely run
// to hundreds of digits.
type Point struct {
	X *big.Int
	Y *big.Int
}

// EncodedShare is a share as it appears in the input document: a digit
// string and the radix it is written in, both still undecoded.
type EncodedShare struct {
	Base  IntString `json:"base"`
	Value string    `json:"value"`
}

// IntString is an integer field that documents in the wild write either as
// a JSON string ("10") or a bare number (10). It unmarshals from both.
type IntString string

func (s *IntString) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*s = IntString(v)
	case float64:
		*s = IntString(fmt.Sprintf("%d", int64(v)))
	default:
		return fmt.Errorf("expected string or number, got %T", raw)
	}
	return nil
}

// Document is a parsed share document: the declared share count n, the
// threshold k, and the encoded shares keyed by their x-coordinate.
type Document struct {
	N      int
	K      int
	Shares map[int]EncodedShare
}

// Reconstruction is the outcome of solving one document. Value is always
// the exact rational f(0); Secret is set only when Exact is true.
type Reconstruction struct {
	Value  rational.Fraction
	Secret *big.Int
	Exact  bool
	Points []Point
}
