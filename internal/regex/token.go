package regex

import (
	"strings"
	"unicode"
)

type Kind int

const (
	Literal  Kind = iota // alphanumeric symbol
	Operator             // | . *
	LParen               // (
	RParen               // )
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Operator:
		return "operator"
	case LParen:
		return "lparen"
	case RParen:
		return "rparen"
	default:
		return "unknown"
	}
}

const (
	Union  = '|'
	Concat = '.'
	Star   = '*'
)

// Token is a single character of an expression. Pos is the rune offset in
// the input; synthetic concatenation tokens reuse the offset of the token
// they follow.
type Token struct {
	Kind  Kind
	Value rune
	Pos   int
}

func (t Token) String() string { return string(t.Value) }

func IsLiteral(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) }

// startsOperand reports whether t can begin an operand.
func (t Token) startsOperand() bool { return t.Kind == Literal || t.Kind == LParen }

// endsOperand reports whether t can close an operand.
func (t Token) endsOperand() bool {
	return t.Kind == Literal || t.Kind == RParen || (t.Kind == Operator && t.Value == Star)
}

// Postfix is a token sequence in reverse Polish order, without parentheses.
type Postfix []Token

func (p Postfix) String() string {
	var sb strings.Builder
	for _, t := range p {
		sb.WriteRune(t.Value)
	}
	return sb.String()
}
