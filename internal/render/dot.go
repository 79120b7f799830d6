package render

import (
	"bufio"
	"fmt"
	"io"

	"regexviz/internal/nfa"
)

const (
	DefaultRankDir      = "LR"
	DefaultEpsilonLabel = "λ"
)

type DOTOptions struct {
	RankDir      string
	EpsilonLabel string
}

func (o DOTOptions) withDefaults() DOTOptions {
	if o.RankDir == "" {
		o.RankDir = DefaultRankDir
	}
	if o.EpsilonLabel == "" {
		o.EpsilonLabel = DefaultEpsilonLabel
	}
	return o
}

// WriteDOT prints the Graphviz form of exp to w. Accepting states are drawn
// as double circles.
func WriteDOT(w io.Writer, exp nfa.Export, opts DOTOptions) error {
	opts = opts.withDefaults()
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph NFA {")
	fmt.Fprintf(bw, "    rankdir=%s;\n", opts.RankDir)

	for _, n := range exp.Nodes {
		shape := "circle"
		if n.Final {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    n%d [shape=%s, label=\"%d\"];\n", n.Label, shape, n.Label)
	}
	for _, e := range exp.Edges {
		label := opts.EpsilonLabel
		if !e.Epsilon {
			label = string(e.Symbol)
		}
		fmt.Fprintf(bw, "    n%d -> n%d [label=%q];\n", e.From, e.To, label)
	}
	if len(exp.Nodes) > 0 {
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", exp.Start)
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
