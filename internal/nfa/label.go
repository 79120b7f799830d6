package nfa

// Labeling numbers the states reachable from the start state in the order a
// depth-first walk first discovers them: symbol transitions by ascending
// symbol, then epsilon targets in insertion order.
type Labeling struct {
	Order  []StateID
	labels []int // by StateID, -1 when unreachable
}

// Label walks a from its start state. The walk uses an explicit stack so
// deeply nested expressions cannot exhaust the goroutine stack.
func Label(a *Automaton) *Labeling {
	l := &Labeling{
		Order:  make([]StateID, 0, a.Len()),
		labels: make([]int, a.Len()),
	}
	for i := range l.labels {
		l.labels[i] = -1
	}
	if a.Len() == 0 {
		return l
	}

	stack := []StateID{a.Start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l.labels[id] >= 0 {
			continue
		}
		l.labels[id] = len(l.Order)
		l.Order = append(l.Order, id)

		next := successors(a.State(id))
		for i := len(next) - 1; i >= 0; i-- {
			if l.labels[next[i]] < 0 {
				stack = append(stack, next[i])
			}
		}
	}
	return l
}

func successors(s *State) []StateID {
	next := make([]StateID, 0, len(s.Transitions)+len(s.Epsilon))
	for _, r := range s.Symbols() {
		next = append(next, s.Transitions[r])
	}
	return append(next, s.Epsilon...)
}

// Label returns the label of id and whether id is reachable.
func (l *Labeling) Label(id StateID) (int, bool) {
	if int(id) < 0 || int(id) >= len(l.labels) || l.labels[id] < 0 {
		return 0, false
	}
	return l.labels[id], true
}

func (l *Labeling) Len() int { return len(l.Order) }

type Node struct {
	Label int
	Final bool
}

// Edge is a labeled transition. Symbol is meaningful only when Epsilon is
// false.
type Edge struct {
	From, To int
	Symbol   rune
	Epsilon  bool
}

// Export is the node and edge enumeration handed to renderers.
type Export struct {
	Start int
	Nodes []Node
	Edges []Edge
}

// Export lists the labeled states and their edges. Edges are read from each
// state's own transitions, visited in label order.
func (l *Labeling) Export(a *Automaton) Export {
	exp := Export{Nodes: make([]Node, 0, len(l.Order))}
	if start, ok := l.Label(a.Start); ok {
		exp.Start = start
	}
	for label, id := range l.Order {
		s := a.State(id)
		exp.Nodes = append(exp.Nodes, Node{Label: label, Final: a.IsFinal(id)})
		for _, r := range s.Symbols() {
			to, _ := l.Label(s.Transitions[r])
			exp.Edges = append(exp.Edges, Edge{From: label, To: to, Symbol: r})
		}
		for _, t := range s.Epsilon {
			to, _ := l.Label(t)
			exp.Edges = append(exp.Edges, Edge{From: label, To: to, Epsilon: true})
		}
	}
	return exp
}
