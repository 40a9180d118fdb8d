// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// topology.go - named topologies for the measurement harness and CLI.
//
// Contract:
//   - Kind names are lower-case and stable; they are persisted in benchmark records.
//   - "grid" builds a ⌊√n⌋×⌊√n⌋ grid, so the vertex count is the largest square ≤ n.
//   - p is consulted only by "random"; other kinds ignore it.

package builder

import (
	"fmt"
	"math"
	"strings"
)

// Topology kinds understood by Topology.
const (
	KindRandom   = "random"
	KindComplete = "complete"
	KindCycle    = "cycle"
	KindPath     = "path"
	KindGrid     = "grid"
	KindStar     = "star"
)

// Kinds lists every supported topology kind in stable order.
func Kinds() []string {
	return []string{KindRandom, KindGrid, KindComplete, KindCycle, KindPath, KindStar}
}

// Topology returns the Constructor for kind over n vertices with edge
// density p (random graphs only). Kind matching is case-insensitive.
//
// Errors:
//   - ErrUnknownTopology for an unsupported kind.
//   - Constructor errors (ErrTooFewVertices, ErrInvalidProbability, ...) surface
//     when the returned Constructor runs.
func Topology(kind string, n int, p float64) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindRandom:
		return RandomSparse(n, p), nil
	case KindComplete:
		return Complete(n), nil
	case KindCycle:
		return Cycle(n), nil
	case KindPath:
		return Path(n), nil
	case KindGrid:
		side := 0
		if n > 0 {
			side = int(math.Sqrt(float64(n)))
		}
		return Grid(side, side), nil
	case KindStar:
		return Star(n), nil
	default:
		return nil, fmt.Errorf("%s: %q (want one of %s): %w",
			methodTopology, kind, strings.Join(Kinds(), ", "), ErrUnknownTopology)
	}
}

// MinVertices returns the smallest n that Topology(kind, n, p) can build.
//
// Errors:
//   - ErrUnknownTopology for an unsupported kind.
func MinVertices(kind string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindRandom:
		return minRandomNodes, nil
	case KindComplete:
		return minCompleteNodes, nil
	case KindCycle:
		return minCycleNodes, nil
	case KindPath:
		return minPathNodes, nil
	case KindGrid:
		return minGridDim * minGridDim, nil
	case KindStar:
		return minStarNodes, nil
	default:
		return 0, fmt.Errorf("%s: %q (want one of %s): %w",
			methodTopology, kind, strings.Join(Kinds(), ", "), ErrUnknownTopology)
	}
}
