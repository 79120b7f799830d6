package regex

import "fmt"

// UnbalancedParenError reports a ')' without a matching '(' or a '(' that is
// never closed.
type UnbalancedParenError struct {
	Pos   int
	Paren rune
}

func (e *UnbalancedParenError) Error() string {
	if e.Paren == ')' {
		return fmt.Sprintf("unbalanced parenthesis: ')' at %d has no matching '('", e.Pos)
	}
	return fmt.Sprintf("unbalanced parenthesis: '(' at %d is never closed", e.Pos)
}

// UnsupportedTokenError reports a character outside the expression alphabet.
type UnsupportedTokenError struct {
	Pos  int
	Char rune
}

func (e *UnsupportedTokenError) Error() string {
	return fmt.Sprintf("unsupported character %q at %d", e.Char, e.Pos)
}
