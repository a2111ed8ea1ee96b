package share

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"polyshare/internal/domain"
)

var (
	// ErrMissingKeys is returned when the document has no "keys" object.
	ErrMissingKeys = errors.New("share: missing \"keys\" object")

	// ErrInvalidThreshold is returned when the declared k is not positive.
	ErrInvalidThreshold = errors.New("share: threshold k must be positive")

	// ErrDuplicateShare is returned when two entries decode to the same
	// x-coordinate.
	ErrDuplicateShare = errors.New("share: duplicate share key")

	// ErrNotEnoughShares is returned when fewer than k shares are present.
	ErrNotEnoughShares = errors.New("share: not enough shares for threshold")
)

// keysHeader mirrors the "keys" object of a document.
type keysHeader struct {
	N int `json:"n"`
	K int `json:"k"`
}

// ParseDocument parses a raw JSON share document. Share entries are any
// top-level keys that parse as non-negative integers; everything else
// except "keys" is skipped without complaint.
func ParseDocument(data []byte) (domain.Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Document{}, fmt.Errorf("share: parse document: %w", err)
	}

	header, ok := raw["keys"]
	if !ok {
		return domain.Document{}, ErrMissingKeys
	}
	var keys keysHeader
	if err := json.Unmarshal(header, &keys); err != nil {
		return domain.Document{}, fmt.Errorf("share: parse \"keys\" object: %w", err)
	}
	if keys.K <= 0 {
		return domain.Document{}, fmt.Errorf("%w: got %d", ErrInvalidThreshold, keys.K)
	}

	doc := domain.Document{
		N:      keys.N,
		K:      keys.K,
		Shares: make(map[int]domain.EncodedShare),
	}
	for key, val := range raw {
		if key == "keys" {
			continue
		}
		x, err := strconv.Atoi(key)
		if err != nil || x < 0 {
			continue // non-numeric top-level keys are tolerated
		}
		if _, exists := doc.Shares[x]; exists {
			return domain.Document{}, fmt.Errorf("%w: %d", ErrDuplicateShare, x)
		}
		var enc domain.EncodedShare
		if err := json.Unmarshal(val, &enc); err != nil {
			return domain.Document{}, fmt.Errorf("share: parse entry %q: %w", key, err)
		}
		if enc.Value == "" {
			return domain.Document{}, fmt.Errorf("share: entry %q has no value", key)
		}
		if enc.Base == "" {
			return domain.Document{}, fmt.Errorf("share: entry %q has no base", key)
		}
		doc.Shares[x] = enc
	}
	return doc, nil
}
