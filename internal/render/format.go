package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"regexviz/internal/nfa"
)

type Format string

const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDOT, FormatJSON:
		return f, nil
	case "":
		return FormatDOT, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want dot or json)", s)
	}
}

// Ext is the file extension used for f.
func (f Format) Ext() string { return "." + string(f) }

// Write emits c in format f.
func Write(w io.Writer, c *nfa.Compiled, f Format, opts DOTOptions) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, c)
	case FormatDOT, "":
		return WriteDOT(w, c.Export, opts)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// RenderImage pipes a DOT document through the Graphviz dot binary, writing
// an image of the given type (png, svg, ...) to out.
func RenderImage(ctx context.Context, dot []byte, imageType, out string) error {
	cmd := exec.CommandContext(ctx, "dot", "-T"+imageType, "-o", out)
	cmd.Stdin = bytes.NewReader(dot)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot -T%s: %w: %s", imageType, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
