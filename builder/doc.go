// Package builder generates synthetic road networks for benchmarks and
// property tests.
//
// RandomRoads scatters n locations uniformly over a square plane and joins
// them with candidate road segments:
//
//   - a chain over a random permutation of the locations, so the network is
//     always connected;
//   - extra segments between random distinct locations (parallel segments
//     are allowed and receive their own IDs).
//
// Every segment weight is the Euclidean distance between its endpoints, so
// generated networks look like the road-candidate tables the dataset package
// loads.
//
// Determinism is explicit. A random source is required and is supplied with
// WithSeed or WithRand; the same seed and parameters always produce the same
// graph, including node coordinates and edge IDs.
//
//	g, err := builder.RandomRoads(1000, 4000, builder.WithSeed(42))
//
// Option constructors panic on meaningless values (WithRand(nil),
// WithExtent(≤0)). RandomRoads itself never panics and reports parameter
// problems through the sentinel errors in errors.go.
package builder
