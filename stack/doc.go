// Package stack provides a small generic last-in-first-out container.
//
// What:
//
//   - Stack[T]: an ordered sequence where the most recently pushed element
//     is the first one returned by Pop.
//   - Items returns a defensive copy (bottom to top), handy for snapshots
//     and assertions after each operation.
//
// Concurrency:
//
//	A Stack is NOT synchronized. Each instance is meant to be owned by the
//	single call or value that created it (scan state of a balance check,
//	a tower in the disk puzzle). Share it across goroutines only under
//	your own lock.
//
// Complexity:
//
//   - Push, Pop, Peek, Len: amortized O(1)
//   - Items: O(n)
//
// Errors:
//
//   - ErrEmpty   Pop on an empty stack
package stack
