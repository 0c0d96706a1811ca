package frontier

import "container/heap"

// PriorityQueue is a Frontier that returns the entry with the smallest
// priority first. Equal priorities leave in insertion order.
type PriorityQueue[T any] struct {
	h        entryHeap[T]
	priority func(T) float64
	seq      uint64
}

// NewPriorityQueue returns an empty PriorityQueue ordered by priority(item).
// The priority of an item is computed once, when it is Put.
func NewPriorityQueue[T any](priority func(T) float64) *PriorityQueue[T] {
	return &PriorityQueue[T]{priority: priority}
}

// Put inserts item with its current priority.
func (pq *PriorityQueue[T]) Put(item T) {
	heap.Push(&pq.h, entry[T]{item: item, priority: pq.priority(item), seq: pq.seq})
	pq.seq++
}

// Get removes and returns the entry with the smallest (priority, sequence).
func (pq *PriorityQueue[T]) Get() (T, error) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, ErrUnderflow
	}

	return heap.Pop(&pq.h).(entry[T]).item, nil
}

// IsEmpty reports whether the queue holds no entries.
func (pq *PriorityQueue[T]) IsEmpty() bool { return pq.h.Len() == 0 }

// Len returns the number of queued entries.
func (pq *PriorityQueue[T]) Len() int { return pq.h.Len() }

// entry couples an item with its priority and insertion sequence.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap is a min-heap of entries ordered by priority, then by seq.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return it
}
