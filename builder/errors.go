// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//
// Priority when several validations fail:
//   ErrUnknownTopology → ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error in composition (nil
// constructor or graph) or a core mutation that could not be honoured.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates that Topology received a kind it does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
