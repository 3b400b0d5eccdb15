package searcher

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"
)

type entry struct {
	id       NodeID
	priority float64
	seq      int // insertion order, breaks priority ties
}

type frontier interface {
	push(e entry)
	pop() entry
	size() int
}

type lifo struct {
	s *stack.Stack[entry]
}

func newLIFO() frontier { return &lifo{s: stack.New[entry]()} }

func (f *lifo) push(e entry) { f.s.Push(e) }
func (f *lifo) pop() entry   { return f.s.Pop() }
func (f *lifo) size() int    { return f.s.Size() }

type fifo struct {
	q *queue.Queue[entry]
	n int
}

func newFIFO() frontier { return &fifo{q: queue.New[entry]()} }

func (f *fifo) push(e entry) {
	f.q.Enqueue(e)
	f.n++
}

func (f *fifo) pop() entry {
	f.n--
	return f.q.Dequeue()
}

func (f *fifo) size() int { return f.n }

// minHeap pops the lowest priority first and, among equals, the oldest entry.
type minHeap struct {
	h *heap.Heap[entry]
}

func newMinHeap() frontier {
	return &minHeap{h: heap.New(func(a, b entry) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})}
}

func (f *minHeap) push(e entry) { f.h.Push(e) }

func (f *minHeap) pop() entry {
	e, _ := f.h.Pop()
	return e
}

func (f *minHeap) size() int { return f.h.Size() }
