package balance

// Verdict is the outcome of a balance check.
type Verdict int

const (
	// NotBalanced: at least one bracket is unmatched or mismatched.
	NotBalanced Verdict = iota
	// Balanced: every bracket is matched and correctly nested.
	Balanced
)

// String returns "balanced" or "not balanced".
func (v Verdict) String() string {
	if v == Balanced {
		return "balanced"
	}

	return "not balanced"
}

// Failure names the rule that made a text NotBalanced.
type Failure int

const (
	// NoFailure is reported for Balanced texts.
	NoFailure Failure = iota
	// UnmatchedClose: a closer appeared while nothing was open.
	UnmatchedClose
	// Mismatch: a closer did not match the innermost open bracket.
	Mismatch
	// Unclosed: the text ended with brackets still open.
	Unclosed
)

// String returns a short lower-case description of f.
func (f Failure) String() string {
	switch f {
	case NoFailure:
		return "none"
	case UnmatchedClose:
		return "unmatched closing bracket"
	case Mismatch:
		return "mismatched bracket"
	case Unclosed:
		return "unclosed bracket"
	default:
		return "unknown"
	}
}

// Report explains a Verdict.
type Report struct {
	// Verdict always equals Check on the same text.
	Verdict Verdict

	// Failure is NoFailure when Verdict is Balanced.
	Failure Failure

	// Offset is the byte offset of the offending rune: the closer for
	// UnmatchedClose and Mismatch, the innermost unclosed opener for
	// Unclosed. It is -1 when Failure is NoFailure.
	Offset int

	// Found is the offending rune (0 when Balanced).
	Found rune

	// Want is the closer that would have matched the innermost open
	// bracket. It is set for Mismatch and Unclosed, 0 otherwise.
	Want rune
}

// pairs maps each closer to the opener it requires.
var pairs = map[rune]rune{
	')': '(',
	'}': '{',
	']': '[',
}

// IsOpening reports whether r is one of '(', '{', '['.
func IsOpening(r rune) bool {
	return r == '(' || r == '{' || r == '['
}

// IsClosing reports whether r is one of ')', '}', ']'.
func IsClosing(r rune) bool {
	_, ok := pairs[r]
	return ok
}

// OpeningFor returns the opener required by closer.
func OpeningFor(closer rune) (rune, bool) {
	open, ok := pairs[closer]
	return open, ok
}

// ClosingFor returns the closer that matches opener.
func ClosingFor(opener rune) (rune, bool) {
	switch opener {
	case '(':
		return ')', true
	case '{':
		return '}', true
	case '[':
		return ']', true
	}

	return 0, false
}
