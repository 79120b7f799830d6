package batch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"regexviz/internal/nfa"
	"regexviz/internal/render"
)

type Options struct {
	OutDir string
	Format render.Format
	DOT    render.DOTOptions
	// Image, when set, also renders each DOT output through Graphviz.
	Image string
	// Progress receives a progress bar; nil disables it.
	Progress io.Writer
}

// Result describes one entry. Err is set when the expression did not
// compile; such entries produce no output file.
type Result struct {
	Name     string
	Expr     string
	Compiled *nfa.Compiled
	Path     string
	Err      error
}

// Run compiles every entry in parallel and writes one output file per
// successful entry. Results are in file order. The returned error is
// reserved for I/O failures and cancellation.
func Run(ctx context.Context, logger *zap.Logger, f *File, opts Options) ([]Result, error) {
	if opts.Format == "" {
		opts.Format = render.FormatDOT
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(f.Entries),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("compiling"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	results := make([]Result, len(f.Entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, e := range f.Entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runEntry(ctx, e, opts)
			if err != nil {
				return err
			}
			if res.Err != nil {
				logger.Warn("expression rejected", zap.String("entry", e.Name), zap.String("pos", e.Pos.String()), zap.Error(res.Err))
			} else {
				logger.Debug("expression compiled", zap.String("entry", e.Name), zap.String("output", res.Path), zap.Int("states", res.Compiled.Labels.Len()))
			}
			results[i] = res
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results, nil
}

func runEntry(ctx context.Context, e *Entry, opts Options) (Result, error) {
	res := Result{Name: e.Name, Expr: e.Expr}
	c, err := nfa.Compile(e.Expr)
	if err != nil {
		res.Err = err
		return res, nil
	}
	res.Compiled = c

	var buf bytes.Buffer
	if err := render.Write(&buf, c, opts.Format, opts.DOT); err != nil {
		return res, err
	}
	res.Path = filepath.Join(opts.OutDir, e.Name+opts.Format.Ext())
	if err := os.WriteFile(res.Path, buf.Bytes(), 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", res.Path, err)
	}

	if opts.Image != "" && opts.Format == render.FormatDOT {
		img := strings.TrimSuffix(res.Path, opts.Format.Ext()) + "." + opts.Image
		if err := render.RenderImage(ctx, buf.Bytes(), opts.Image, img); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Failed returns the results whose expression did not compile.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
