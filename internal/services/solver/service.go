package solver

import (
	"errors"

	"polyshare/internal/domain"
	"polyshare/internal/interpolate"
	"polyshare/internal/rational"
	"polyshare/internal/share"
)

// Service reconstructs secrets from share documents supplied by a source.
type Service struct {
	source domain.ShareSource
}

// New returns a solver backed by the given document source.
func New(source domain.ShareSource) *Service { return &Service{source: source} }

// SolveFile loads the document at path and solves it.
func (s *Service) SolveFile(path string) (domain.Reconstruction, error) {
	doc, err := s.source.Load(path)
	if err != nil {
		return domain.Reconstruction{}, err
	}
	return s.Solve(doc)
}

// Solve selects the document's threshold points and computes f(0). A
// non-integer result is not an error: the reconstruction carries the exact
// rational value with Exact set to false.
func (s *Service) Solve(doc domain.Document) (domain.Reconstruction, error) {
	points, err := share.Points(doc)
	if err != nil {
		return domain.Reconstruction{}, err
	}

	value, err := interpolate.AtZero(points)
	if err != nil {
		return domain.Reconstruction{}, err
	}

	rec := domain.Reconstruction{Value: value, Points: points}
	secret, err := value.Int()
	switch {
	case err == nil:
		rec.Secret = secret
		rec.Exact = true
	case errors.Is(err, rational.ErrNotAnInteger):
		// expected outcome; the rational value is still the answer
	default:
		return domain.Reconstruction{}, err
	}
	return rec, nil
}
