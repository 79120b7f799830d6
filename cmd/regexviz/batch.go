package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexviz/internal/batch"
	"regexviz/internal/render"
)

type batchOptions struct {
	outDir   string
	format   string
	image    string
	watch    bool
	progress bool
}

func newBatchCmd(a *app) *cobra.Command {
	opts := &batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Compile every named expression of a batch file",
		Long: `Compiles each entry of a batch file and writes <name>.dot (or .json) per entry.
A batch file holds lines of the form:  name = "(a|b)*abb";`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out-dir") {
				opts.outDir = a.cfg.OutDir
			}
			if !cmd.Flags().Changed("format") {
				opts.format = a.cfg.Format
			}
			if !cmd.Flags().Changed("image") {
				opts.image = a.cfg.Image
			}
			path := args[0]

			if !opts.watch {
				ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
				defer cancel()
				return runBatch(ctx, a, cmd.OutOrStdout(), cmd.ErrOrStderr(), path, opts)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			var reported *reportedError
			if err := runBatch(ctx, a, cmd.OutOrStdout(), cmd.ErrOrStderr(), path, opts); err != nil && !errors.As(err, &reported) {
				printError(cmd.ErrOrStderr(), err)
			}
			return batch.Watch(ctx, a.logger, path, func() error {
				runCtx, cancel := context.WithTimeout(ctx, a.timeout)
				defer cancel()
				return runBatch(runCtx, a, cmd.OutOrStdout(), cmd.ErrOrStderr(), path, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.outDir, "out-dir", ".", "Directory for the generated files")
	cmd.Flags().StringVar(&opts.format, "format", "dot", "Output format: dot or json")
	cmd.Flags().StringVar(&opts.image, "image", "", "Also render each DOT file into this image type")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Recompile whenever the batch file changes")
	cmd.Flags().BoolVar(&opts.progress, "progress", true, "Show a progress bar")
	return cmd
}

func runBatch(ctx context.Context, a *app, stdout, stderr io.Writer, path string, opts *batchOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	f, err := batch.Load(path)
	if err != nil {
		return err
	}

	runOpts := batch.Options{
		OutDir: opts.outDir,
		Format: format,
		DOT:    a.cfg.DOTOptions(),
		Image:  opts.image,
	}
	if opts.progress {
		runOpts.Progress = stderr
	}

	results, err := batch.Run(ctx, a.logger, f, runOpts)
	if err != nil {
		a.logger.Error("batch run failed", zap.String("path", path), zap.Error(err))
		return err
	}
	if opts.progress {
		fmt.Fprintln(stderr)
	}

	for _, r := range results {
		if r.Err == nil {
			fmt.Fprintf(stdout, "%s %s -> %s\n", headerStyle.Sprint(r.Name), postfixStyle.Sprint(r.Compiled.Postfix.String()), r.Path)
		}
	}

	failed := batch.Failed(results)
	for _, r := range failed {
		fmt.Fprintf(stderr, "%s: %s", r.Name, formatCompileError(r.Expr, r.Err))
	}
	if len(failed) > 0 {
		return &reportedError{fmt.Errorf("%d of %d expressions failed", len(failed), len(results))}
	}
	return nil
}
