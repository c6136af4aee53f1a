// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewNodes indicates a node count below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrNegativeEdges indicates a negative number of extra edges.
var ErrNegativeEdges = errors.New("builder: edge count must be >= 0")

// ErrNeedRandSource indicates that no random source was configured;
// use WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
