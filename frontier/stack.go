package frontier

// Stack is a last-in-first-out Frontier.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Put pushes item on top of the stack.
func (s *Stack[T]) Put(item T) {
	s.items = append(s.items, item)
}

// Get pops the most recently pushed item.
func (s *Stack[T]) Get() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrUnderflow
	}
	item := s.items[n-1]
	s.items[n-1] = zero // drop the reference for the GC
	s.items = s.items[:n-1]

	return item, nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }
