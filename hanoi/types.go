package hanoi

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
)

// Sentinel errors for hanoi operations.
var (
	// ErrOrderingViolation: a disk was pushed onto a strictly smaller one.
	ErrOrderingViolation = errors.New("hanoi: larger disk placed on smaller disk")

	// ErrEmptyContainer: a disk was popped from an empty tower.
	ErrEmptyContainer = errors.New("hanoi: tower is empty")

	// ErrInvalidDiskCount: the disk count is out of range.
	ErrInvalidDiskCount = errors.New("hanoi: invalid disk count")

	// ErrNilStack: a nil *DiskStack was passed to Solve.
	ErrNilStack = errors.New("hanoi: tower is nil")

	// ErrSameStack: one tower was passed in two roles to Solve.
	ErrSameStack = errors.New("hanoi: towers must be distinct")
)

// StackError is the tagged fault of a DiskStack operation.
// Kind is ErrOrderingViolation or ErrEmptyContainer.
type StackError struct {
	Op    string // "push" or "pop"
	Stack string // tower name
	Disk  int    // disk being pushed (push only)
	Top   int    // current top disk (push only)
	Kind  error
}

// Error implements error.
func (e *StackError) Error() string {
	if e.Op == "push" {
		return fmt.Sprintf("%v: push %d onto %d on %q", e.Kind, e.Disk, e.Top, e.Stack)
	}

	return fmt.Sprintf("%v: %s on %q", e.Kind, e.Op, e.Stack)
}

// Unwrap exposes Kind to errors.Is.
func (e *StackError) Unwrap() error { return e.Kind }

// Move is one disk transfer between two towers.
type Move struct {
	Step int    // 1-based position in the move sequence
	Disk int    // size of the moved disk
	From string // source tower name
	To   string // destination tower name
}

// String renders m as "move disk K from X to Y".
func (m Move) String() string {
	return fmt.Sprintf("move disk %d from %s to %s", m.Disk, m.From, m.To)
}

// Result summarizes a Solve run.
type Result struct {
	// Moves lists every move in order. Nil when WithRecordMoves(false).
	Moves []Move

	// Count is the number of moves performed, including on abort.
	Count int
}

// Option configures Solve.
type Option func(*Options)

// Options holds the observability knobs of Solve.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnMove, if non-nil, is called after each move is applied.
	// Returning an error aborts the transfer with that error.
	OnMove func(m Move) error

	// Logger receives a V(1) record per move and V(0) records on start
	// and finish. Defaults to logr.Discard().
	Logger logr.Logger

	// RecordMoves keeps the move log in Result.Moves. Default true.
	RecordMoves bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - no OnMove hook
//   - a discarding logger
//   - move recording enabled
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnMove:      nil,
		Logger:      logr.Discard(),
		RecordMoves: true,
	}
}

// WithContext sets the context checked before every move.
// A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnMove installs fn as the per-move hook.
func WithOnMove(fn func(m Move) error) Option {
	return func(o *Options) {
		o.OnMove = fn
	}
}

// WithLogger routes move narration to logger.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithRecordMoves toggles collection of Result.Moves.
// Disable it for large n where only the count matters.
func WithRecordMoves(record bool) Option {
	return func(o *Options) {
		o.RecordMoves = record
	}
}
