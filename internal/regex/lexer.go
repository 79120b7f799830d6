package regex

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Every rule matches exactly one rune, so a token's index in the stream is
// its rune offset in the expression.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Literal", Pattern: `[\p{L}\p{N}]`},
	{Name: "Operator", Pattern: `[|.*]`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Invalid", Pattern: `[\s\S]`},
})

var kinds = func() map[lexer.TokenType]Kind {
	sym := exprLexer.Symbols()
	return map[lexer.TokenType]Kind{
		sym["Literal"]:  Literal,
		sym["Operator"]: Operator,
		sym["LParen"]:   LParen,
		sym["RParen"]:   RParen,
	}
}()

// Tokenize classifies every character of expr.
func Tokenize(expr string) ([]Token, error) {
	lex, err := exprLexer.LexString("", expr)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	tokens := make([]Token, 0, len(raw))
	for i, t := range raw {
		if t.EOF() {
			break
		}
		r, _ := utf8.DecodeRuneInString(t.Value)
		kind, ok := kinds[t.Type]
		if !ok {
			return nil, &UnsupportedTokenError{Pos: i, Char: r}
		}
		tokens = append(tokens, Token{Kind: kind, Value: r, Pos: i})
	}
	return tokens, nil
}
