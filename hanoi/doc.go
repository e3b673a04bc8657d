// Package hanoi simulates the classic recursive disk-transfer puzzle
// (Towers of Hanoi) on size-constrained stacks.
//
// 🚀 What:
//
//   - DiskStack: a named LIFO of disk sizes whose values never increase
//     from bottom to top. Pushing a larger disk onto a smaller one fails
//     with ErrOrderingViolation; popping an empty tower fails with
//     ErrEmptyContainer. Both surface as *StackError.
//   - Solve: moves n disks from a source tower to a destination tower via
//     an auxiliary one, using the standard decomposition:
//     n-1 disks source→auxiliary, disk n source→destination,
//     n-1 disks auxiliary→destination. The base case n=1 moves one disk.
//
// ✨ Observability is a side channel, kept out of the container itself:
//
//   - WithOnMove(fn)      hook called after every move; an error aborts
//   - WithLogger(logger)  logr.Logger; V(1) line per move
//   - WithRecordMoves(b)  keep or drop the Move log in Result
//   - WithContext(ctx)    abort long transfers early
//
// Guarantees:
//
//	For n ≥ 1 on a source holding n..1 and empty destination/auxiliary,
//	Solve performs exactly 2^n - 1 moves and never triggers a fault.
//	Afterwards the destination holds n..1 and the other towers are empty.
//
// Complexity:
//
//   - Time:   O(2^n)
//   - Memory: O(n) recursion depth, plus O(2^n) when moves are recorded
//
// Errors:
//
//   - ErrInvalidDiskCount   n < 1
//   - ErrNilStack           a tower pointer is nil
//   - ErrSameStack          the same tower passed in two roles
//   - ErrOrderingViolation  wrapped in *StackError
//   - ErrEmptyContainer     wrapped in *StackError
//   - ctx.Err()             when the context is done
//   - any error returned by the OnMove hook
package hanoi
