// Package balance checks whether the brackets of a text are correctly
// nested and closed.
//
// What:
//
//   - Check: single left-to-right scan with a LIFO of unmatched openers.
//     Three bracket kinds are recognized: (), {}, []. Every other rune
//     (letters, digits, operators, whitespace) is skipped.
//   - Diagnose: the same scan, additionally reporting which rule failed
//     and at which byte offset.
//
// Why:
//   - Validate formulas or snippets before handing them to a real parser
//   - Point an editor cursor at the first offending bracket
//
// This is not an expression parser: it says nothing about operators,
// tokens or arithmetic validity, only about structural nesting.
//
// Verdicts:
//
//   - Balanced     every opener has exactly one closer of the same kind,
//     last-opened first-closed; the empty text is Balanced.
//   - NotBalanced  a closer with nothing open, a closer of the wrong kind,
//     or openers left over at the end of the text.
//
// Malformed input is a normal outcome, never an error: Check is a total,
// pure function over all strings. The scan stops at the first closer that
// cannot be matched.
//
// Complexity:
//
//   - Time:   O(len(expr))
//   - Memory: O(maximum nesting depth)
package balance
