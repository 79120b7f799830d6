package regex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("a(b|1)*.")
	require.NoError(t, err)

	want := []Kind{Literal, LParen, Literal, Operator, Literal, RParen, Operator, Operator}
	require.Len(t, tokens, len(want))
	for i, k := range want {
		assert.Equal(t, k, tokens[i].Kind, "token %d", i)
		assert.Equal(t, i, tokens[i].Pos, "token %d", i)
	}
}

func TestTokenizeUnicodeLiterals(t *testing.T) {
	tokens, err := Tokenize("ñß9")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, 'ß', tokens[1].Value)
	assert.Equal(t, 2, tokens[2].Pos)
}

func TestTokenizeRejectsUnsupported(t *testing.T) {
	tests := []struct {
		expr string
		pos  int
		char rune
	}{
		{"a+b", 1, '+'},
		{"a b", 1, ' '},
		{"ab?", 2, '?'},
		{"[a]", 0, '['},
		{"é\\", 1, '\\'},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Tokenize(tt.expr)
			var unsupported *UnsupportedTokenError
			require.True(t, errors.As(err, &unsupported), "got %v", err)
			assert.Equal(t, tt.pos, unsupported.Pos)
			assert.Equal(t, tt.char, unsupported.Char)
		})
	}
}

func TestInsertConcat(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"ab", "a.b"},
		{"abc", "a.b.c"},
		{"a|b", "a|b"},
		{"a.b", "a.b"},
		{"ab*", "a.b*"},
		{"a*b", "a*.b"},
		{"a(b)", "a.(b)"},
		{"(a)(b)", "(a).(b)"},
		{"(a|b)*abb", "(a|b)*.a.b.b"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			tokens, err := Tokenize(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Postfix(InsertConcat(tokens)).String())
		})
	}
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"ab", "ab."},
		{"a|b", "ab|"},
		{"a*", "a*"},
		{"ab|c", "ab.c|"},
		{"a|bc", "abc.|"},
		{"a|b|c", "ab|c|"},
		{"abc", "ab.c."},
		{"ab*", "ab*."},
		{"(ab)*", "ab.*"},
		{"a**", "a**"},
		{"(a|b)*abb", "ab|*a.b.b."},
		{"((a))", "a"},
		{"a|", "a|"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ToPostfix(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestToPostfixUnbalanced(t *testing.T) {
	tests := []struct {
		expr  string
		pos   int
		paren rune
	}{
		{"(a", 0, '('},
		{"a)", 1, ')'},
		{"(a|b", 0, '('},
		{"(a))", 3, ')'},
		{"((a)", 0, '('},
		{")", 0, ')'},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := ToPostfix(tt.expr)
			var unbalanced *UnbalancedParenError
			require.True(t, errors.As(err, &unbalanced), "got %v", err)
			assert.Equal(t, tt.pos, unbalanced.Pos)
			assert.Equal(t, tt.paren, unbalanced.Paren)
		})
	}
}

// Every literal and every operator application survives conversion; the
// grouping tokens do not.
func TestPostfixLength(t *testing.T) {
	for _, expr := range []string{"ab", "(a|b)*abb", "((a|b)(c|d))*e", "a(b(c(d)))", "x*y*|z"} {
		tokens, err := Tokenize(expr)
		require.NoError(t, err)
		explicit := InsertConcat(tokens)

		operands := 0
		for _, tok := range explicit {
			if tok.Kind == Literal || tok.Kind == Operator {
				operands++
			}
		}

		got, err := ShuntingYard(explicit)
		require.NoError(t, err)
		assert.Len(t, got, operands, expr)
		for _, tok := range got {
			assert.NotEqual(t, LParen, tok.Kind, expr)
			assert.NotEqual(t, RParen, tok.Kind, expr)
		}
	}
}

func TestShuntingYardRejectsUnknownOperator(t *testing.T) {
	_, err := ShuntingYard([]Token{
		{Kind: Literal, Value: 'a'},
		{Kind: Operator, Value: '+', Pos: 1},
	})
	var unsupported *UnsupportedTokenError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, '+', unsupported.Char)
}

func TestPrecedence(t *testing.T) {
	star, _ := Precedence(Star)
	concat, _ := Precedence(Concat)
	union, _ := Precedence(Union)
	paren, _ := Precedence('(')
	assert.Greater(t, star, concat)
	assert.Greater(t, concat, union)
	assert.Greater(t, union, paren)

	_, ok := Precedence('+')
	assert.False(t, ok)
}
