package roadgraph

// GoalExhaustive, passed as goal to Dijkstra, means "run to exhaustion":
// the search only terminates when the heap empties, yielding a one-to-all
// distance vector.
const GoalExhaustive = NodeIndexMax

// pqItem is a single priority-queue entry: a candidate distance to a node.
type pqItem struct {
	cost EdgeCost
	pos  int
}

// less orders items by cost ascending, breaking ties by position ascending
// so the heap forms a total order (spec §4.5).
func (a pqItem) less(b pqItem) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.pos < b.pos
}

// costHeap is an array-backed binary min-heap of pqItems, following the
// same hand-rolled shape as the teacher's Heap (heapifyUp/heapifyDown over
// parent/child index arithmetic) rather than container/heap's interface
// indirection.
type costHeap struct {
	items []pqItem
}

func newCostHeap(capacity int) *costHeap {
	return &costHeap{items: make([]pqItem, 0, capacity)}
}

func (h *costHeap) isEmpty() bool { return len(h.items) == 0 }

func (h *costHeap) push(item pqItem) {
	h.items = append(h.items, item)
	h.heapifyUp(len(h.items) - 1)
}

// pop removes and returns the minimum item.
func (h *costHeap) pop() pqItem {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.heapifyDown(0)
	}
	return top
}

func (h *costHeap) heapifyUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.items[i].less(h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *costHeap) heapifyDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].less(h.items[smallest]) {
			smallest = left
		}
		if right < n && h.items[right].less(h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// Dijkstra runs a uniform-cost shortest-path search from start over g. If
// goal is GoalExhaustive, the search runs until the heap empties, yielding
// a full one-to-all distance vector and a cost of -1 ("not applicable",
// not "unreachable"). Otherwise the search terminates as soon as goal is
// popped, and the returned cost is that node's shortest distance, or -1 if
// the heap empties before goal is reached.
func Dijkstra(g *Graph, start, goal int) (EdgeCost, []EdgeCost, []int) {
	n := g.NodeCount()
	dist := make([]EdgeCost, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = EdgeCostMax
		prev[i] = -1
	}
	dist[start] = 0

	heap := newCostHeap(g.EdgeCount())
	heap.push(pqItem{cost: 0, pos: start})

	for !heap.isEmpty() {
		top := heap.pop()

		if top.pos == goal {
			return top.cost, dist, prev
		}
		if top.cost > dist[top.pos] {
			// Stale entry: a shorter path to this node was already
			// settled since this entry was pushed.
			continue
		}

		for _, edge := range g.OutgoingEdges(top.pos) {
			newCost := top.cost + edge.Cost
			trg := int(edge.Trg)
			if newCost < dist[trg] {
				dist[trg] = newCost
				prev[trg] = top.pos
				heap.push(pqItem{cost: newCost, pos: trg})
			}
		}
	}

	return Unreachable, dist, prev
}

// ShortestPath returns the shortest-path distance from start to goal, or
// Unreachable (-1) if goal cannot be reached from start.
func ShortestPath(g *Graph, start, goal int) EdgeCost {
	if start == goal {
		return 0
	}
	cost, _, _ := Dijkstra(g, start, goal)
	return cost
}

// ShortestPaths returns the one-to-all distance vector from start: for
// every node reachable from start, the shortest-path cost; EdgeCostMax for
// every unreachable node.
func ShortestPaths(g *Graph, start int) []EdgeCost {
	_, dist, _ := Dijkstra(g, start, int(GoalExhaustive))
	return dist
}

// Route returns both the shortest-path distance from start to goal and the
// sequence of coordinates along that path, for diagnostic export. The
// coordinate slice is nil if goal is unreachable.
func Route(g *Graph, start, goal int) (EdgeCost, []Coords) {
	if start == goal {
		return 0, []Coords{g.Nodes[start].Coords}
	}
	cost, _, prev := Dijkstra(g, start, goal)
	if cost == Unreachable {
		return Unreachable, nil
	}
	return cost, ReconstructPath(g, prev, start, goal)
}
