package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvlstack/stack"
)

// TestStack_ZeroValue verifies the zero value behaves as an empty stack.
func TestStack_ZeroValue(t *testing.T) {
	var s stack.Stack[int]
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	_, ok := s.Peek()
	assert.False(t, ok, "Peek on empty stack must report false")

	_, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmpty)
}

// TestStack_LIFOOrder checks that elements come back in reverse push order.
func TestStack_LIFOOrder(t *testing.T) {
	s := stack.New[rune]()
	for _, r := range "({[" {
		s.Push(r)
	}
	require.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, '[', top)

	for _, want := range []rune{'[', '{', '('} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

// TestStack_ItemsIsCopy ensures Items returns bottom-to-top order and
// that the snapshot is detached from the stack.
func TestStack_ItemsIsCopy(t *testing.T) {
	s := stack.NewWithCapacity[int](4)
	s.Push(3)
	s.Push(2)
	s.Push(1)

	items := s.Items()
	assert.Equal(t, []int{3, 2, 1}, items)

	items[0] = 99
	assert.Equal(t, []int{3, 2, 1}, s.Items(), "mutating snapshot must not leak into stack")
}

// TestStack_Clear empties the stack and keeps it usable.
func TestStack_Clear(t *testing.T) {
	s := stack.NewWithCapacity[string](-1)
	s.Push("a")
	s.Push("b")
	s.Clear()
	assert.True(t, s.IsEmpty())

	s.Push("c")
	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "c", top)
}

// TestStack_MatchesSliceModel drives random push/pop sequences against
// a plain slice and compares after every step.
func TestStack_MatchesSliceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := stack.New[int]()
		var model []int

		ops := rapid.SliceOfN(rapid.IntRange(-1, 100), 0, 200).Draw(t, "ops")
		for _, op := range ops {
			if op < 0 {
				got, err := s.Pop()
				if len(model) == 0 {
					if err == nil {
						t.Fatalf("Pop on empty stack returned %d, want ErrEmpty", got)
					}
					continue
				}
				want := model[len(model)-1]
				model = model[:len(model)-1]
				if err != nil || got != want {
					t.Fatalf("Pop = (%d, %v), want (%d, nil)", got, err, want)
				}
				continue
			}
			s.Push(op)
			model = append(model, op)
		}

		if s.Len() != len(model) {
			t.Fatalf("Len = %d, want %d", s.Len(), len(model))
		}
		items := s.Items()
		for i := range model {
			if items[i] != model[i] {
				t.Fatalf("Items()[%d] = %d, want %d", i, items[i], model[i])
			}
		}
	})
}
