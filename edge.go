package roadgraph

import "math"

// EdgeCost is a directed edge's weight.
type EdgeCost = int64

// EdgeCostMax is the initial distance Dijkstra assigns before a node is
// reached. It must never be mistaken for a valid edge weight.
const EdgeCostMax EdgeCost = math.MaxInt64

// Unreachable is the user-visible sentinel a query returns for a target
// that cannot be reached from the source. It is never used as an
// intermediate value inside Dijkstra itself.
const Unreachable EdgeCost = -1

// Edge is a directed, weighted connection between two nodes. Src is kept
// for diagnostics even though it is redundant once the CSR layout is built.
type Edge struct {
	Src  NodeIndex
	Trg  NodeIndex
	Cost EdgeCost
}
