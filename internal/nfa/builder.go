package nfa

import (
	"fmt"

	"regexviz/internal/regex"
)

// MalformedExpressionError reports a postfix sequence that does not reduce
// to exactly one fragment.
type MalformedExpressionError struct {
	Pos    int
	Op     rune // 0 when the failure is not tied to one token
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	if e.Op == 0 {
		return fmt.Sprintf("malformed expression: %s", e.Reason)
	}
	return fmt.Sprintf("malformed expression: %q at %d: %s", e.Op, e.Pos, e.Reason)
}

// fragment is a partial automaton with one entry and one exit. It lives
// only on the construction stack.
type fragment struct {
	start, end StateID
}

type builder struct {
	a     *Automaton
	stack []fragment
}

func (b *builder) push(f fragment) { b.stack = append(b.stack, f) }

// pop removes n fragments and returns them in push order.
func (b *builder) pop(n int, t regex.Token) ([]fragment, error) {
	if len(b.stack) < n {
		return nil, &MalformedExpressionError{
			Pos:    t.Pos,
			Op:     t.Value,
			Reason: fmt.Sprintf("needs %d operand(s), have %d", n, len(b.stack)),
		}
	}
	frags := make([]fragment, n)
	copy(frags, b.stack[len(b.stack)-n:])
	b.stack = b.stack[:len(b.stack)-n]
	return frags, nil
}

// Build runs Thompson's construction over a postfix sequence.
func Build(postfix regex.Postfix) (*Automaton, error) {
	b := &builder{a: &Automaton{States: make([]State, 0, 2*len(postfix))}}

	for _, t := range postfix {
		if err := b.apply(t); err != nil {
			return nil, err
		}
	}

	switch len(b.stack) {
	case 0:
		return nil, &MalformedExpressionError{Reason: "empty expression"}
	case 1:
	default:
		return nil, &MalformedExpressionError{
			Reason: fmt.Sprintf("%d fragments left after the last token, want 1", len(b.stack)),
		}
	}

	f := b.stack[0]
	b.a.Start, b.a.Final = f.start, f.end
	return b.a, nil
}

func (b *builder) apply(t regex.Token) error {
	a := b.a
	switch {
	case t.Kind == regex.Literal:
		if !regex.IsLiteral(t.Value) {
			return &MalformedExpressionError{Pos: t.Pos, Op: t.Value, Reason: "not an alphanumeric literal"}
		}
		start, end := a.newState(), a.newState()
		a.addTransition(start, t.Value, end)
		b.push(fragment{start, end})

	case t.Kind == regex.Operator && t.Value == regex.Union:
		f, err := b.pop(2, t)
		if err != nil {
			return err
		}
		start, end := a.newState(), a.newState()
		a.addEpsilon(start, f[0].start)
		a.addEpsilon(start, f[1].start)
		a.addEpsilon(f[0].end, end)
		a.addEpsilon(f[1].end, end)
		b.push(fragment{start, end})

	case t.Kind == regex.Operator && t.Value == regex.Concat:
		f, err := b.pop(2, t)
		if err != nil {
			return err
		}
		a.addEpsilon(f[0].end, f[1].start)
		b.push(fragment{f[0].start, f[1].end})

	case t.Kind == regex.Operator && t.Value == regex.Star:
		f, err := b.pop(1, t)
		if err != nil {
			return err
		}
		start, end := a.newState(), a.newState()
		a.addEpsilon(start, f[0].start)
		a.addEpsilon(start, end)
		a.addEpsilon(f[0].end, f[0].start)
		a.addEpsilon(f[0].end, end)
		b.push(fragment{start, end})

	default:
		return &MalformedExpressionError{Pos: t.Pos, Op: t.Value, Reason: "unexpected token in postfix"}
	}
	return nil
}
