// Package lvlstack collects small stack-driven algorithm drills, each in
// its own package.
//
// 🚀 What's inside?
//
//	balance/  bracket balance checker for (), {} and [] with diagnostics
//	hanoi/    size-constrained DiskStack and the recursive disk-transfer puzzle
//	stack/    generic LIFO container shared by both
//
// ✨ Conventions
//
//   - Pure functions where possible: balance.Check is total and never errors
//   - Faults are values: sentinel errors plus *hanoi.StackError, use errors.Is/As
//   - Narration is a side channel: hooks (OnMove) and a logr.Logger, never
//     printing from inside the containers
//
// Quick example:
//
//	balance.Check("({[a + b]})")   // balance.Balanced
//	balance.Check("{[a + b)")      // balance.NotBalanced
//
//	go get github.com/katalvlaran/lvlstack
package lvlstack
