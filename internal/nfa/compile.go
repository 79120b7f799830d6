package nfa

import (
	"fmt"

	"regexviz/internal/regex"
)

// Compiled is the result of running an expression through every stage.
type Compiled struct {
	Expr      string
	Postfix   regex.Postfix
	Automaton *Automaton
	Labels    *Labeling
	Export    Export
}

// Compile converts expr to postfix, builds its automaton and labels it.
// Errors keep their concrete type for errors.As.
func Compile(expr string) (*Compiled, error) {
	postfix, err := regex.ToPostfix(expr)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}
	a, err := Build(postfix)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}
	labels := Label(a)
	return &Compiled{
		Expr:      expr,
		Postfix:   postfix,
		Automaton: a,
		Labels:    labels,
		Export:    labels.Export(a),
	}, nil
}

func MustCompile(expr string) *Compiled {
	c, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return c
}
