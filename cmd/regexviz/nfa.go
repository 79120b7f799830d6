package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexviz/internal/nfa"
	"regexviz/internal/render"
)

type nfaOptions struct {
	output string
	format string
	image  string
}

func newNFACmd(a *app) *cobra.Command {
	opts := &nfaOptions{}
	cmd := &cobra.Command{
		Use:   "nfa [expression]",
		Short: "Build the Thompson NFA of an expression and export it",
		Long: `Builds the NFA of an expression and writes it as Graphviz DOT or JSON.
Without an argument the expression is read from standard input.
Example) regexviz nfa "(a|b)*abb" --image png -o abb.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = a.cfg.Format
			}
			if !cmd.Flags().Changed("image") {
				opts.image = a.cfg.Image
			}

			var expr string
			if len(args) == 1 {
				expr = args[0]
			} else {
				var err error
				if expr, err = prompt(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()
			return runNFA(ctx, a, cmd.OutOrStdout(), cmd.ErrOrStderr(), expr, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "Output path, - for standard output")
	cmd.Flags().StringVar(&opts.format, "format", "dot", "Output format: dot or json")
	cmd.Flags().StringVar(&opts.image, "image", "", "Render through Graphviz into this image type (png, svg, ...)")
	return cmd
}

func prompt(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "regular expression: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runNFA(ctx context.Context, a *app, stdout, stderr io.Writer, expr string, opts *nfaOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	c, err := nfa.Compile(expr)
	if err != nil {
		fmt.Fprint(stderr, formatCompileError(expr, err))
		return &reportedError{err}
	}
	a.logger.Debug("automaton built",
		zap.String("expr", expr),
		zap.String("postfix", c.Postfix.String()),
		zap.Int("states", c.Labels.Len()),
		zap.Int("edges", len(c.Export.Edges)))
	fmt.Fprintf(stderr, "%s %s\n", headerStyle.Sprint("postfix:"), postfixStyle.Sprint(c.Postfix.String()))

	if opts.image != "" {
		if opts.output == "-" {
			return fmt.Errorf("--image needs an output file (-o)")
		}
		var buf bytes.Buffer
		if err := render.WriteDOT(&buf, c.Export, a.cfg.DOTOptions()); err != nil {
			return err
		}
		if err := render.RenderImage(ctx, buf.Bytes(), opts.image, opts.output); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "%s written to %s\n", strings.ToUpper(opts.image), opts.output)
		return nil
	}

	if opts.output == "-" {
		return render.Write(stdout, c, format, a.cfg.DOTOptions())
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", opts.output, err)
	}
	defer f.Close()
	if err := render.Write(f, c, format, a.cfg.DOTOptions()); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "%s written to %s\n", strings.ToUpper(string(format)), opts.output)
	return nil
}
