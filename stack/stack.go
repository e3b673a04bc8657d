package stack

import "errors"

// ErrEmpty is returned by Pop when the stack holds no elements.
var ErrEmpty = errors.New("stack: pop from empty stack")

// Stack is a LIFO container. The zero value is an empty, ready-to-use stack.
type Stack[T any] struct {
	items []T // bottom at index 0, top at len-1
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewWithCapacity returns an empty stack with room for n elements
// before the backing slice has to grow. Negative n is treated as 0.
func NewWithCapacity[T any](n int) *Stack[T] {
	if n < 0 {
		n = 0
	}

	return &Stack[T]{items: make([]T, 0, n)}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element, or ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero // release reference for GC
	s.items = s.items[:last]

	return v, nil
}

// Peek returns the top element without removing it.
// The boolean is false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len reports the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clear drops all elements, keeping the allocated capacity.
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}

// Items returns a copy of the elements ordered bottom to top.
// Mutating the returned slice does not affect the stack.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
