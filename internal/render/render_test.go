package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexviz/internal/nfa"
)

func TestWriteDOT(t *testing.T) {
	c := nfa.MustCompile("ab")

	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, c.Export, DOTOptions{}))

	want := `digraph NFA {
    rankdir=LR;
    n0 [shape=circle, label="0"];
    n1 [shape=circle, label="1"];
    n2 [shape=circle, label="2"];
    n3 [shape=doublecircle, label="3"];
    n0 -> n1 [label="a"];
    n1 -> n2 [label="λ"];
    n2 -> n3 [label="b"];
    _start [shape=point]; _start -> n0;
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteDOTOptions(t *testing.T) {
	c := nfa.MustCompile("a*")

	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, c.Export, DOTOptions{RankDir: "TB", EpsilonLabel: "eps"}))

	out := buf.String()
	assert.Contains(t, out, "rankdir=TB;")
	assert.Contains(t, out, `[label="eps"]`)
	assert.NotContains(t, out, "λ")
	assert.Equal(t, 1, strings.Count(out, "doublecircle"))
}

func TestWriteDOTEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, nfa.Export{}, DOTOptions{}))
	assert.NotContains(t, buf.String(), "_start")
}

func TestWriteJSON(t *testing.T) {
	c := nfa.MustCompile("a|b")

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, c))

	var got jsonAutomaton
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "a|b", got.Expression)
	assert.Equal(t, "ab|", got.Postfix)
	assert.Len(t, got.Nodes, 6)
	assert.Len(t, got.Edges, 6)

	symbols := 0
	for _, e := range got.Edges {
		if !e.Epsilon {
			symbols++
			assert.Contains(t, []string{"a", "b"}, e.Symbol)
		}
	}
	assert.Equal(t, 2, symbols)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"dot", FormatDOT, false},
		{"json", FormatJSON, false},
		{"", FormatDOT, false},
		{"png", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, ".json", FormatJSON.Ext())
}

func TestWriteDispatch(t *testing.T) {
	c := nfa.MustCompile("a")

	var dot, js bytes.Buffer
	require.NoError(t, Write(&dot, c, FormatDOT, DOTOptions{}))
	require.NoError(t, Write(&js, c, FormatJSON, DOTOptions{}))
	assert.True(t, strings.HasPrefix(dot.String(), "digraph"))
	assert.True(t, strings.HasPrefix(js.String(), "{"))
	assert.Error(t, Write(&dot, c, Format("xml"), DOTOptions{}))
}
