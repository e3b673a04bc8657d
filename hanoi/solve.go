package hanoi

import (
	"fmt"
)

// mover carries the state of one Solve call through the recursion.
type mover struct {
	opts Options
	res  *Result
}

// Solve transfers n disks from src to dst using aux as scratch space.
// On a fault, hook error or cancellation it stops and returns the partial
// Result together with the error.
func Solve(n int, src, dst, aux *DiskStack, opts ...Option) (*Result, error) {
	// 1. Validate input
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDiskCount, n)
	}
	if src == nil || dst == nil || aux == nil {
		return nil, ErrNilStack
	}
	if src == dst || src == aux || dst == aux {
		return nil, ErrSameStack
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Prepare result; preallocate only for modest n
	res := &Result{}
	if o.RecordMoves {
		if total, err := MinMoves(n); err == nil && total <= 1<<16 {
			res.Moves = make([]Move, 0, total)
		}
	}

	m := &mover{opts: o, res: res}
	log := o.Logger.WithValues("disks", n, "from", src.Name(), "to", dst.Name(), "via", aux.Name())
	log.Info("transfer started")

	// 4. Recurse
	if err := m.transfer(n, src, dst, aux); err != nil {
		log.Error(err, "transfer aborted", "moves", res.Count)
		return res, err
	}
	log.Info("transfer finished", "moves", res.Count)

	return res, nil
}

// transfer moves k disks from -> to, using via as the helper tower.
func (m *mover) transfer(k int, from, to, via *DiskStack) error {
	if k == 1 {
		return m.moveOne(from, to)
	}
	if err := m.transfer(k-1, from, via, to); err != nil {
		return err
	}
	if err := m.moveOne(from, to); err != nil {
		return err
	}

	return m.transfer(k-1, via, to, from)
}

// moveOne moves the top disk of from onto to. A failed push leaves both
// towers untouched.
func (m *mover) moveOne(from, to *DiskStack) error {
	// 1. Cancellation check
	select {
	case <-m.opts.Ctx.Done():
		return m.opts.Ctx.Err()
	default:
	}

	// 2. Apply: top of from must exist and fit on to
	disk, ok := from.Peek()
	if !ok {
		_, err := from.Pop()
		return fmt.Errorf("hanoi: move %d: %w", m.res.Count+1, err)
	}
	if err := to.Push(disk); err != nil {
		return fmt.Errorf("hanoi: move %d: %w", m.res.Count+1, err)
	}
	if _, err := from.Pop(); err != nil {
		return fmt.Errorf("hanoi: move %d: %w", m.res.Count+1, err)
	}

	// 3. Record
	m.res.Count++
	mv := Move{Step: m.res.Count, Disk: disk, From: from.Name(), To: to.Name()}
	if m.opts.RecordMoves {
		m.res.Moves = append(m.res.Moves, mv)
	}
	m.opts.Logger.V(1).Info("move", "step", mv.Step, "disk", mv.Disk, "from", mv.From, "to", mv.To)

	// 4. Hook
	if m.opts.OnMove != nil {
		if err := m.opts.OnMove(mv); err != nil {
			return fmt.Errorf("hanoi: OnMove hook at step %d: %w", mv.Step, err)
		}
	}

	return nil
}

// MinMoves returns 2^n - 1, the number of moves Solve performs for n disks.
// n must be in [1, 64].
func MinMoves(n int) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDiskCount, n)
	}

	return ^uint64(0) >> (64 - n), nil
}
