package regex

var precedence = map[rune]int{
	Star:   4,
	Concat: 3,
	Union:  2,
	'(':    1,
}

// Precedence returns the binding strength of op. '(' is the weakest so it
// is only ever popped by a matching ')'.
func Precedence(op rune) (int, bool) {
	p, ok := precedence[op]
	return p, ok
}

// ToPostfix converts an infix expression to postfix order.
func ToPostfix(expr string) (Postfix, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return nil, err
	}
	return ShuntingYard(InsertConcat(tokens))
}

// InsertConcat makes concatenation explicit by placing a '.' between every
// token that ends an operand and the following token that starts one.
func InsertConcat(tokens []Token) []Token {
	out := make([]Token, 0, 2*len(tokens))
	for i, t := range tokens {
		out = append(out, t)
		if i+1 < len(tokens) && t.endsOperand() && tokens[i+1].startsOperand() {
			out = append(out, Token{Kind: Operator, Value: Concat, Pos: t.Pos})
		}
	}
	return out
}

// ShuntingYard reorders an explicit-concatenation token sequence into
// postfix. '.' and '|' are left associative.
func ShuntingYard(tokens []Token) (Postfix, error) {
	var (
		output = make(Postfix, 0, len(tokens))
		stack  []Token
	)
	top := func() Token { return stack[len(stack)-1] }
	pop := func() Token {
		t := top()
		stack = stack[:len(stack)-1]
		return t
	}

	for _, t := range tokens {
		switch t.Kind {
		case Literal:
			output = append(output, t)
		case LParen:
			stack = append(stack, t)
		case RParen:
			for len(stack) > 0 && top().Kind != LParen {
				output = append(output, pop())
			}
			if len(stack) == 0 {
				return nil, &UnbalancedParenError{Pos: t.Pos, Paren: ')'}
			}
			pop()
		case Operator:
			prec, ok := Precedence(t.Value)
			if !ok {
				return nil, &UnsupportedTokenError{Pos: t.Pos, Char: t.Value}
			}
			for len(stack) > 0 && precedence[top().Value] >= prec {
				output = append(output, pop())
			}
			stack = append(stack, t)
		default:
			return nil, &UnsupportedTokenError{Pos: t.Pos, Char: t.Value}
		}
	}

	for len(stack) > 0 {
		t := pop()
		if t.Kind == LParen {
			return nil, &UnbalancedParenError{Pos: t.Pos, Paren: '('}
		}
		output = append(output, t)
	}
	return output, nil
}
