package search

import "container/heap"

// frontier is the container whose removal order defines a strategy.
type frontier[T any] interface {
	push(item T)
	pop() T
	empty() bool
	len() int
}

// stack is a LIFO frontier.
type stack[T any] struct {
	items []T
}

func newStack[T any]() *stack[T] { return &stack[T]{} }

func (s *stack[T]) push(item T) { s.items = append(s.items, item) }

func (s *stack[T]) pop() T {
	n := len(s.items) - 1
	item := s.items[n]
	var zero T
	s.items[n] = zero // release reference
	s.items = s.items[:n]

	return item
}

func (s *stack[T]) empty() bool { return len(s.items) == 0 }
func (s *stack[T]) len() int    { return len(s.items) }

// queue is a FIFO frontier. The backing slice is compacted once the consumed
// prefix outgrows the live part.
type queue[T any] struct {
	items []T
	head  int
}

func newQueue[T any]() *queue[T] { return &queue[T]{} }

func (q *queue[T]) push(item T) { q.items = append(q.items, item) }

func (q *queue[T]) pop() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return item
}

func (q *queue[T]) empty() bool { return q.head == len(q.items) }
func (q *queue[T]) len() int    { return len(q.items) - q.head }

// priorityQueue pops the item with the smallest key; equal keys leave in
// insertion order. Keys are computed once, on push.
type priorityQueue[T any] struct {
	key  func(T) float64
	heap entryHeap[T]
	seq  uint64
}

func newPriorityQueue[T any](key func(T) float64) *priorityQueue[T] {
	return &priorityQueue[T]{key: key}
}

func (pq *priorityQueue[T]) push(item T) {
	heap.Push(&pq.heap, entry[T]{item: item, key: pq.key(item), seq: pq.seq})
	pq.seq++
}

func (pq *priorityQueue[T]) pop() T {
	return heap.Pop(&pq.heap).(entry[T]).item
}

func (pq *priorityQueue[T]) empty() bool { return len(pq.heap) == 0 }
func (pq *priorityQueue[T]) len() int    { return len(pq.heap) }

type entry[T any] struct {
	item T
	key  float64
	seq  uint64
}

// entryHeap is a min-heap of entries ordered by (key, seq).
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero
	*h = old[:n-1]

	return item
}
