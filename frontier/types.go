package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for frontier operations.
var (
	// ErrUnderflow is returned by Get when the frontier holds no entries.
	ErrUnderflow = errors.New("frontier: get from empty frontier")

	// ErrNilPriority is returned by New when KindPriority has no priority function.
	ErrNilPriority = errors.New("frontier: priority function is nil")

	// ErrUnknownKind is returned for an unrecognised Kind or kind name.
	ErrUnknownKind = errors.New("frontier: unknown kind")
)

// Frontier is the set of discovered-but-not-yet-expanded entries.
// Callers must check IsEmpty before Get; Get on an empty frontier returns
// the zero value and ErrUnderflow.
type Frontier[T any] interface {
	Put(item T)
	Get() (T, error)
	IsEmpty() bool
	Len() int
}

// Kind names a Frontier variant.
type Kind int

const (
	// KindStack selects Stack (depth-first).
	KindStack Kind = iota
	// KindQueue selects Queue (breadth-first).
	KindQueue
	// KindPriority selects PriorityQueue (best-first).
	KindPriority
)

// String returns the lowercase name of k.
func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindQueue:
		return "queue"
	case KindPriority:
		return "priority"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps "stack", "queue" or "priority" (case-insensitive) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stack", "lifo":
		return KindStack, nil
	case "queue", "fifo":
		return KindQueue, nil
	case "priority", "heap":
		return KindPriority, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New builds an empty Frontier of the given kind. priority is only consulted
// for KindPriority, where it is mandatory.
func New[T any](kind Kind, priority func(T) float64) (Frontier[T], error) {
	switch kind {
	case KindStack:
		return NewStack[T](), nil
	case KindQueue:
		return NewQueue[T](), nil
	case KindPriority:
		if priority == nil {
			return nil, ErrNilPriority
		}

		return NewPriorityQueue(priority), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}
