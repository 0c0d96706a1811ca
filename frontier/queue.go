package frontier

// Queue is a first-in-first-out Frontier.
//
// Items live in a slice with a moving head; the consumed prefix is
// reclaimed once it outgrows the live part.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Put appends item at the tail.
func (q *Queue[T]) Put(item T) {
	q.items = append(q.items, item)
}

// Get removes and returns the oldest item.
func (q *Queue[T]) Get() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrUnderflow
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.head >= len(q.items) }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }
