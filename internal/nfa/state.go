package nfa

import "sort"

// StateID indexes a state in its automaton's arena.
type StateID int

// State is a node of the graph. Transitions holds at most one target per
// symbol; Epsilon holds each target once, in insertion order.
type State struct {
	Transitions map[rune]StateID
	Epsilon     []StateID
}

// Symbols returns the transition symbols in ascending order.
func (s *State) Symbols() []rune {
	syms := make([]rune, 0, len(s.Transitions))
	for r := range s.Transitions {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Automaton owns every state it references. Edges are arena indices, so the
// back-edges introduced by '*' are plain integers.
type Automaton struct {
	States []State
	Start  StateID
	Final  StateID
}

func (a *Automaton) State(id StateID) *State { return &a.States[id] }

func (a *Automaton) IsFinal(id StateID) bool { return id == a.Final }

func (a *Automaton) Len() int { return len(a.States) }

func (a *Automaton) newState() StateID {
	a.States = append(a.States, State{})
	return StateID(len(a.States) - 1)
}

func (a *Automaton) addTransition(from StateID, symbol rune, to StateID) {
	s := &a.States[from]
	if s.Transitions == nil {
		s.Transitions = make(map[rune]StateID, 1)
	}
	s.Transitions[symbol] = to
}

func (a *Automaton) addEpsilon(from, to StateID) {
	s := &a.States[from]
	for _, t := range s.Epsilon {
		if t == to {
			return
		}
	}
	s.Epsilon = append(s.Epsilon, to)
}
