package roadgraph

// Graph is a compressed-sparse-row (CSR) directed graph: an ordered node
// array followed by an ordered edge array, with each node's outgoing edges
// occupying a contiguous, offset-delimited range of the edge array.
//
// A Graph is built once (see LoadGraph) and is read-only thereafter; its
// node and edge slices are stable for the lifetime of the value.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool { return len(g.Nodes) == 0 }

// Node returns a pointer to the node at index, or nil if index is out of
// bounds.
func (g *Graph) Node(index int) *Node {
	if index < 0 || index >= len(g.Nodes) {
		return nil
	}
	return &g.Nodes[index]
}

// Edge returns a pointer to the edge at index, or nil if index is out of
// bounds.
func (g *Graph) Edge(index int) *Edge {
	if index < 0 || index >= len(g.Edges) {
		return nil
	}
	return &g.Edges[index]
}

// OutgoingEdges returns the contiguous slice of edges leaving node index.
// The end of the range is the offset of the next node, or EdgeCount() for
// the last node. A node whose offset was never assigned (should not occur
// once load completes) yields an empty slice rather than a panic.
func (g *Graph) OutgoingEdges(index int) []Edge {
	if index < 0 || index >= len(g.Nodes) {
		return nil
	}

	start := g.Nodes[index].Offset
	if start == NodeIndexMax {
		return nil
	}

	var end NodeIndex
	if index == len(g.Nodes)-1 {
		end = NodeIndex(len(g.Edges))
	} else {
		end = g.Nodes[index+1].Offset
	}

	return g.Edges[start:end]
}
