package balance

import (
	"github.com/katalvlaran/lvlstack/stack"
)

// opener is a scanned opening bracket together with its byte offset.
type opener struct {
	r   rune
	off int
}

// Check reports whether every bracket in expr is matched and correctly nested.
//
// Steps:
//  1. Start with an empty stack of openers.
//  2. Push each opener; for each closer pop the top and compare kinds.
//     A closer with nothing open, or a popped opener of another kind,
//     ends the scan immediately with NotBalanced.
//  3. After the scan the text is Balanced iff the stack is empty.
func Check(expr string) Verdict {
	return Diagnose(expr).Verdict
}

// IsBalanced is shorthand for Check(expr) == Balanced.
func IsBalanced(expr string) bool {
	return Check(expr) == Balanced
}

// Diagnose runs the Check scan and reports the failing rule and position.
func Diagnose(expr string) Report {
	open := stack.New[opener]()

	for off, r := range expr {
		if IsOpening(r) {
			open.Push(opener{r: r, off: off})
			continue
		}
		required, isCloser := pairs[r]
		if !isCloser {
			continue // not a bracket
		}

		top, err := open.Pop()
		if err != nil {
			return Report{Verdict: NotBalanced, Failure: UnmatchedClose, Offset: off, Found: r}
		}
		if top.r != required {
			want, _ := ClosingFor(top.r)
			return Report{Verdict: NotBalanced, Failure: Mismatch, Offset: off, Found: r, Want: want}
		}
	}

	if top, ok := open.Peek(); ok {
		want, _ := ClosingFor(top.r)
		return Report{Verdict: NotBalanced, Failure: Unclosed, Offset: top.off, Found: top.r, Want: want}
	}

	return Report{Verdict: Balanced, Failure: NoFailure, Offset: -1}
}
