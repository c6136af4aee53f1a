// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadmst/core"
)

const (
	methodRandomRoads = "RandomRoads"
	minRoadNodes      = 1
)

// RandomRoads returns a connected road network of n locations (IDs 1..n)
// with n−1 chain segments plus extra random segments.
//
// Steps:
//  1. Validate n, extra and the random source.
//  2. Draw coordinates for locations 1..n in ascending order.
//  3. Chain a random permutation of the locations.
//  4. Add extra segments between random distinct locations.
//
// Edge IDs are assigned 1.. in generation order.
// Complexity: O(n + extra) time and space.
func RandomRoads(n, extra int, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts)

	// 1) Validation order: size, edge count, rng.
	if n < minRoadNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRoads, n, minRoadNodes, ErrTooFewNodes)
	}
	if extra < 0 {
		return nil, fmt.Errorf("%s: extra=%d: %w", methodRandomRoads, extra, ErrNegativeEdges)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomRoads, ErrNeedRandSource)
	}
	if n == 1 {
		extra = 0 // no distinct pair exists
	}
	rng := cfg.rng

	// 2) Locations.
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{
			ID:    core.NodeID(i + 1),
			Coord: &core.Point{X: rng.Float64() * cfg.extent, Y: rng.Float64() * cfg.extent},
		}
	}

	edges := make([]core.Edge, 0, n-1+extra)
	link := func(i, j int) {
		a, b := nodes[i].Coord, nodes[j].Coord
		edges = append(edges, core.Edge{
			ID:     len(edges) + 1,
			From:   nodes[i].ID,
			To:     nodes[j].ID,
			Weight: math.Hypot(a.X-b.X, a.Y-b.Y),
		})
	}

	// 3) Connectivity chain.
	perm := rng.Perm(n)
	for k := 1; k < n; k++ {
		link(perm[k-1], perm[k])
	}

	// 4) Extra segments; j is drawn from the n−1 other locations.
	for k := 0; k < extra; k++ {
		i := rng.Intn(n)
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		link(i, j)
	}

	g, err := core.NewGraph(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomRoads, err)
	}

	return g, nil
}
