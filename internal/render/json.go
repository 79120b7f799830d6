package render

import (
	"encoding/json"
	"io"

	"regexviz/internal/nfa"
)

type jsonNode struct {
	Label int  `json:"label"`
	Final bool `json:"final"`
}

type jsonEdge struct {
	From    int    `json:"from"`
	To      int    `json:"to"`
	Symbol  string `json:"symbol,omitempty"`
	Epsilon bool   `json:"epsilon,omitempty"`
}

type jsonAutomaton struct {
	Expression string     `json:"expression"`
	Postfix    string     `json:"postfix"`
	Start      int        `json:"start"`
	Nodes      []jsonNode `json:"nodes"`
	Edges      []jsonEdge `json:"edges"`
}

// WriteJSON encodes the compiled expression and its exported graph.
func WriteJSON(w io.Writer, c *nfa.Compiled) error {
	out := jsonAutomaton{
		Expression: c.Expr,
		Postfix:    c.Postfix.String(),
		Start:      c.Export.Start,
		Nodes:      make([]jsonNode, 0, len(c.Export.Nodes)),
		Edges:      make([]jsonEdge, 0, len(c.Export.Edges)),
	}
	for _, n := range c.Export.Nodes {
		out.Nodes = append(out.Nodes, jsonNode{Label: n.Label, Final: n.Final})
	}
	for _, e := range c.Export.Edges {
		je := jsonEdge{From: e.From, To: e.To, Epsilon: e.Epsilon}
		if !e.Epsilon {
			je.Symbol = string(e.Symbol)
		}
		out.Edges = append(out.Edges, je)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
