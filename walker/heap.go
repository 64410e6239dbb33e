package walker

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/relaxwalk/core"
)

// runHeap is the heap-ordered variant: each node is finalized once, in increasing
// distance order, with a "lazy" decrease-key (stale heap entries are skipped).
// Only strictly shorter candidates relax a node, so the source is never relabeled.
func (w *walker) runHeap() error {
	for _, v := range w.visits {
		v.best = math.MaxInt64
	}
	w.visits[w.source].best = 0

	settled := make(map[core.NodeID]bool, len(w.visits))
	pq := make(nodePQ, 0, len(w.visits))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: w.source, dist: 0})

	for pq.Len() > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&pq).(*nodeItem)
		if settled[item.id] {
			continue
		}
		settled[item.id] = true
		w.dequeues++
		if item.id == w.target {
			break
		}

		for _, next := range w.graph.Neighbors(item.id) {
			if settled[next] {
				continue
			}
			nextVisit, ok := w.visits[next]
			if !ok {
				continue
			}
			candidate := item.dist + w.graph.Distance(item.id, next)
			if candidate >= nextVisit.best {
				continue
			}
			if err := w.relax(item.id, nextVisit, candidate); err != nil {
				return err
			}
			heap.Push(&pq, &nodeItem{id: next, dist: candidate})
		}
	}

	return nil
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Ties pop in unspecified order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; container/heap moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
