package balance_test

import (
	"fmt"

	"github.com/katalvlaran/lvlstack/balance"
)

// ExampleCheck runs the checker over a handful of formulas.
func ExampleCheck() {
	for _, expr := range []string{
		"{7 + (8 * 5) - [(9 - 7) + (4 + 1)]}",
		"((a + b) * [c - d])",
		"({[a + b]})",
		"{[a + b)",
		"(()",
		"}{",
	} {
		fmt.Printf("%-36s %s\n", expr, balance.Check(expr))
	}

	// Output:
	// {7 + (8 * 5) - [(9 - 7) + (4 + 1)]}  balanced
	// ((a + b) * [c - d])                  balanced
	// ({[a + b]})                          balanced
	// {[a + b)                             not balanced
	// (()                                  not balanced
	// }{                                   not balanced
}

// ExampleDiagnose shows where a formula breaks.
func ExampleDiagnose() {
	rep := balance.Diagnose("{[a + b)")
	fmt.Printf("%s at offset %d: found %q, want %q\n", rep.Failure, rep.Offset, rep.Found, rep.Want)

	// Output:
	// mismatched bracket at offset 7: found ')', want ']'
}
