// Package roadgraph implements a static road-network routing engine: a
// compact CSR graph container, a streaming text-file loader, a geospatial
// quadtree for nearest-node lookup, a binary-heap Dijkstra engine, and a
// parallel batch query executor.
//
// The package is immutable after load: Graph and Quadtree are built once
// and never mutated; only query-local state (distance/predecessor vectors,
// the search heap) is allocated per call.
package roadgraph
