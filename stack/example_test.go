package stack_test

import (
	"fmt"

	"github.com/katalvlaran/lvlstack/stack"
)

// ExampleStack pushes three values and pops them back in LIFO order.
func ExampleStack() {
	s := stack.New[string]()
	s.Push("bottom")
	s.Push("middle")
	s.Push("top")

	fmt.Println(s.Items())
	for !s.IsEmpty() {
		v, _ := s.Pop()
		fmt.Println(v)
	}

	// Output:
	// [bottom middle top]
	// top
	// middle
	// bottom
}
