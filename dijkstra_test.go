package roadgraph

import "testing"

// bidirectionalTestGraph builds a small 6-node graph with edges in both
// directions along every link, so shortest paths are not simply "by index".
//
//	0 --1--> 1 --2--> 2
//	|                 |
//	4                 1
//	v                 v
//	3 <--1-- 4 <--3-- 5
func bidirectionalTestGraph() *Graph {
	type rawEdge struct {
		src, trg int
		cost     EdgeCost
	}
	raw := []rawEdge{
		{0, 1, 1},
		{1, 0, 1},
		{1, 2, 2},
		{2, 1, 2},
		{0, 3, 4},
		{3, 0, 4},
		{2, 5, 1},
		{5, 2, 1},
		{5, 4, 3},
		{4, 5, 3},
		{4, 3, 1},
		{3, 4, 1},
	}
	// Edges must be grouped by non-decreasing src for OutgoingEdges'
	// CSR-offset assumption, so sort by src while building.
	bySrc := make([][]rawEdge, 6)
	for _, e := range raw {
		bySrc[e.src] = append(bySrc[e.src], e)
	}

	g := &Graph{Nodes: make([]Node, 6)}
	for src := 0; src < 6; src++ {
		g.Nodes[src].Offset = NodeIndex(len(g.Edges))
		for _, e := range bySrc[src] {
			g.Edges = append(g.Edges, Edge{Src: NodeIndex(e.src), Trg: NodeIndex(e.trg), Cost: e.cost})
		}
	}
	return g
}

func TestDijkstraShortestPathOptimality(t *testing.T) {
	g := bidirectionalTestGraph()

	// 0 -> 3 direct costs 4; via 1,2,5,4 costs 1+2+1+3+1=8. Direct wins.
	if got := ShortestPath(g, 0, 3); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	// 0 -> 4: direct route 0->3->4 costs 4+1=5.
	if got := ShortestPath(g, 0, 4); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestDijkstraSelfPathIsZero(t *testing.T) {
	g := bidirectionalTestGraph()
	for i := 0; i < g.NodeCount(); i++ {
		if got := ShortestPath(g, i, i); got != 0 {
			t.Fatalf("node %d: expected 0, got %d", i, got)
		}
	}
}

func TestDijkstraIsIdempotent(t *testing.T) {
	g := bidirectionalTestGraph()
	first := ShortestPath(g, 0, 4)
	second := ShortestPath(g, 0, 4)
	if first != second {
		t.Fatalf("repeated queries diverged: %d vs %d", first, second)
	}
}

func TestDijkstraUnreachableIsMinusOne(t *testing.T) {
	g, err := LoadGraph("testdata/isolated.txt", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ShortestPath(g, 1, 2); got != Unreachable {
		t.Fatalf("expected Unreachable, got %d", got)
	}
	if got := ShortestPath(g, 1, 0); got != Unreachable {
		t.Fatalf("expected Unreachable, got %d", got)
	}
}

func TestShortestPathsOneToAll(t *testing.T) {
	g := bidirectionalTestGraph()
	dist := ShortestPaths(g, 0)
	if len(dist) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(dist))
	}
	if dist[0] != 0 {
		t.Fatalf("dist[0] = %d, want 0", dist[0])
	}
	if dist[3] != 4 {
		t.Fatalf("dist[3] = %d, want 4", dist[3])
	}
	if dist[4] != 5 {
		t.Fatalf("dist[4] = %d, want 5", dist[4])
	}
	// Every node in this graph is mutually reachable, so nothing should
	// carry the sentinel "not yet settled" value.
	for i, d := range dist {
		if d == EdgeCostMax {
			t.Fatalf("node %d never settled", i)
		}
	}
}

func TestShortestPathsLeavesUnreachableAtSentinel(t *testing.T) {
	g, err := LoadGraph("testdata/isolated.txt", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dist := ShortestPaths(g, 1)
	if dist[1] != 0 {
		t.Fatalf("dist[1] = %d, want 0", dist[1])
	}
	if dist[0] != EdgeCostMax || dist[2] != EdgeCostMax {
		t.Fatalf("expected unreached nodes at EdgeCostMax, got %v", dist)
	}
}
