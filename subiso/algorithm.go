package subiso

import (
	"fmt"
	"strings"
)

// Algorithm names a matching strategy. The names are persisted in
// benchmark records.
type Algorithm string

const (
	// Naive is the exhaustive k-permutation oracle.
	Naive Algorithm = "naive"
	// RI is the greatest-constraint-first ordered backtracking matcher.
	RI Algorithm = "ri"
)

// Matcher is the common signature of FindEmbeddingNaive and FindEmbeddingOrdered.
type Matcher func(target, pattern View, opts ...Option) (*Result, error)

// Algorithms lists the registered strategies in stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, RI}
}

// ParseAlgorithm resolves a strategy name, case-insensitively.
// "ordered" is accepted as an alias of RI.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Naive):
		return Naive, nil
	case string(RI), "ordered":
		return RI, nil
	default:
		return "", fmt.Errorf("ParseAlgorithm: %q: %w", s, ErrUnknownAlgorithm)
	}
}

// Matcher returns the search function for a.
func (a Algorithm) Matcher() (Matcher, error) {
	switch a {
	case Naive:
		return FindEmbeddingNaive, nil
	case RI:
		return FindEmbeddingOrdered, nil
	default:
		return nil, fmt.Errorf("Matcher: %q: %w", string(a), ErrUnknownAlgorithm)
	}
}

// Find runs the strategy alg on (target, pattern).
func Find(alg Algorithm, target, pattern View, opts ...Option) (*Result, error) {
	m, err := alg.Matcher()
	if err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}

	return m(target, pattern, opts...)
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }
