package search

import (
	"container/heap"

	"gopkg.in/karalabe/cookiejar.v2/collections/queue"
	"gopkg.in/karalabe/cookiejar.v2/collections/stack"

	"github.com/pfrederiksen/gridsearch/internal/grid"
)

// Discipline selects the order in which a frontier releases nodes.
type Discipline int

const (
	FIFO Discipline = iota
	LIFO
	Priority
)

// node is a frontier entry.
type node struct {
	cell  grid.Cell
	depth int
	cost  float64
	index int // heap position, Priority only
}

type frontier interface {
	// pushAll adds successors given in move order.
	pushAll(nodes []*node)
	pop() *node
	len() int
}

func newFrontier(d Discipline) frontier {
	switch d {
	case LIFO:
		return &lifoFrontier{s: stack.New()}
	case Priority:
		pq := make(priorityQueue, 0)
		heap.Init(&pq)
		return &priorityFrontier{pq: &pq}
	default:
		return &fifoFrontier{q: queue.New()}
	}
}

type fifoFrontier struct {
	q *queue.Queue
}

func (f *fifoFrontier) pushAll(nodes []*node) {
	for _, n := range nodes {
		f.q.Push(n)
	}
}

func (f *fifoFrontier) pop() *node { return f.q.Pop().(*node) }
func (f *fifoFrontier) len() int   { return f.q.Size() }

// lifoFrontier pushes successors in reverse so the first move is popped first.
type lifoFrontier struct {
	s *stack.Stack
}

func (f *lifoFrontier) pushAll(nodes []*node) {
	for i := len(nodes) - 1; i >= 0; i-- {
		f.s.Push(nodes[i])
	}
}

func (f *lifoFrontier) pop() *node { return f.s.Pop().(*node) }
func (f *lifoFrontier) len() int   { return f.s.Size() }

type priorityFrontier struct {
	pq *priorityQueue
}

func (f *priorityFrontier) pushAll(nodes []*node) {
	for _, n := range nodes {
		heap.Push(f.pq, n)
	}
}

func (f *priorityFrontier) pop() *node { return heap.Pop(f.pq).(*node) }
func (f *priorityFrontier) len() int   { return f.pq.Len() }

// priorityQueue orders by cost, then by cell so equal costs pop deterministically.
type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].cell.Less(pq[j].cell)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	n := x.(*node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
