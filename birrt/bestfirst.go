package birrt

import (
	"container/heap"
	"context"

	"go.opencensus.io/trace"
)

// pqItem is one entry in the best-first expansion queue: a candidate
// (node, incoming edge, accumulated cost) triple awaiting a pop.
type pqItem struct {
	node NodeID
	edge *Edge // nil for the root
	cost float64
	seq  int // insertion order, for deterministic tie-breaks
}

// nodeQueue is a container/heap priority queue ordered by ascending cost,
// with insertion order as a tie-break so that "the first popped wins" is
// actually deterministic (§4.2's tie-break note).
type nodeQueue []*pqItem

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*pqItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ComputeParentMap builds a fresh ParentMap rooted at root, covering
// every node reachable by following the roadmap's out-edges from root.
// It is Dijkstra-style best-first expansion over a directed graph with
// non-negative edge weights (§4.2): pop the cheapest unvisited or
// improved candidate, record it, and push its out-edges.
func ComputeParentMap(ctx context.Context, rm Roadmap, root NodeID) (*ParentMap, error) {
	_, span := trace.StartSpan(ctx, "compute_parent_map")
	defer span.End()

	pm := &ParentMap{
		root:     root,
		parents:  make(map[NodeID]*Edge),
		hasEntry: make(map[NodeID]bool),
	}
	bestCost := make(map[NodeID]float64)

	pq := &nodeQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &pqItem{node: root, edge: nil, cost: 0, seq: seq})
	seq++

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		n, e, c := item.node, item.edge, item.cost

		if prevCost, visited := bestCost[n]; visited && prevCost <= c {
			// already recorded at an equal-or-better cost; this pop is stale.
			continue
		}
		bestCost[n] = c
		pm.parents[n] = e
		pm.hasEntry[n] = true

		for _, out := range rm.OutEdges(n) {
			child := out.To
			newCost := c + out.Path.Length()
			if prevCost, seen := bestCost[child]; seen && prevCost <= newCost {
				continue
			}
			heap.Push(pq, &pqItem{node: child, edge: out, cost: newCost, seq: seq})
			seq++
		}
	}

	return pm, nil
}
