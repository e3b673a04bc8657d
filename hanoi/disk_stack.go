package hanoi

import (
	"fmt"

	"github.com/katalvlaran/lvlstack/stack"
)

// DiskStack is a named tower of disks, non-increasing from bottom to top.
// It is not safe for concurrent use.
type DiskStack struct {
	name  string
	disks *stack.Stack[int]
}

// NewDiskStack returns an empty tower called name.
func NewDiskStack(name string) *DiskStack {
	return &DiskStack{name: name, disks: stack.New[int]()}
}

// Name returns the tower name.
func (d *DiskStack) Name() string { return d.name }

// Len returns the number of disks on the tower.
func (d *DiskStack) Len() int { return d.disks.Len() }

// IsEmpty reports whether the tower holds no disks.
func (d *DiskStack) IsEmpty() bool { return d.disks.IsEmpty() }

// Push places disk on top. It returns a *StackError of kind
// ErrOrderingViolation when disk is strictly larger than the current top.
func (d *DiskStack) Push(disk int) error {
	if top, ok := d.disks.Peek(); ok && disk > top {
		return &StackError{Op: "push", Stack: d.name, Disk: disk, Top: top, Kind: ErrOrderingViolation}
	}
	d.disks.Push(disk)

	return nil
}

// Pop removes and returns the top disk. It returns a *StackError of kind
// ErrEmptyContainer when the tower is empty.
func (d *DiskStack) Pop() (int, error) {
	disk, err := d.disks.Pop()
	if err != nil {
		return 0, &StackError{Op: "pop", Stack: d.name, Kind: ErrEmptyContainer}
	}

	return disk, nil
}

// Peek returns the top disk; ok is false when the tower is empty.
func (d *DiskStack) Peek() (disk int, ok bool) {
	return d.disks.Peek()
}

// Disks returns a copy of the disks, bottom to top.
func (d *DiskStack) Disks() []int {
	return d.disks.Items()
}

// Fill pushes disks n, n-1, ..., 1 onto the tower.
func (d *DiskStack) Fill(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDiskCount, n)
	}
	for disk := n; disk >= 1; disk-- {
		if err := d.Push(disk); err != nil {
			return err
		}
	}

	return nil
}

// String renders the tower as "name: [bottom ... top]".
func (d *DiskStack) String() string {
	return fmt.Sprintf("%s: %v", d.name, d.disks.Items())
}
