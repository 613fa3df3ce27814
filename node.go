package roadgraph

import "math"

// NodeIndex indexes into a Graph's node array.
type NodeIndex = int64

// NodeIndexMax is the sentinel "no outgoing edges assigned yet" during
// load, and (as GoalExhaustive) the "no goal" value passed to Dijkstra.
// Dijkstra's predecessor vector marks "no predecessor" with -1, not with
// this value.
const NodeIndexMax NodeIndex = math.MaxInt64

// Node is a vertex with a geographic position and the offset of its first
// outgoing edge in the owning Graph's edge array.
type Node struct {
	Coords Coords
	Offset NodeIndex
}

// newNode returns a Node with the unassigned-offset sentinel, matching the
// loader's transient "offset not yet set" state.
func newNode() Node {
	return Node{Offset: NodeIndexMax}
}
