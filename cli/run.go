package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dialup-inc/img2sh"
	"github.com/dialup-inc/img2sh/decode"
	"github.com/dialup-inc/img2sh/pixel"
	"github.com/dialup-inc/img2sh/resample"
	"github.com/dialup-inc/img2sh/size"
	"github.com/dialup-inc/img2sh/term"
)

// RenderFile runs the whole pipeline for one file: decode, size, resample,
// render.
func (p *Plan) RenderFile(ctx context.Context, path string) (*img2sh.Text, error) {
	img, format, err := decode.Open(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	dims, err := size.Resolve(bounds.Dx(), bounds.Dy(), p.Constraint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("rendering",
		slog.String("file", path),
		slog.String("format", format),
		slog.String("source", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy())),
		slog.String("target", dims.String()),
	)

	scaled := resample.Resample(img, dims.Width, dims.Height, p.Filter)

	text, err := p.Transformer.Render(ctx, pixel.FromImage(scaled), p.Mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

type result struct {
	text *img2sh.Text
	err  error
}

// Run renders paths on up to p.Jobs goroutines and writes each block to w in
// argument order. A file that fails is logged and skipped; Run then returns
// an error counting the failures. Only a failed write stops the run early.
// Run does not return until every worker has stopped.
func (p *Plan) Run(ctx context.Context, w io.Writer, paths []string) error {
	ctx, cancel := context.WithCancel(ctx)

	results := make([]chan result, len(paths))
	for i := range results {
		results[i] = make(chan result, 1)
	}

	// Workers never return errors: one bad file must not cancel the rest.
	var g errgroup.Group
	g.SetLimit(p.Jobs)
	done := make(chan struct{})
	defer func() {
		cancel()
		<-done
	}()
	go func() {
		defer close(done)
		defer g.Wait()
		for i, path := range paths {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					results[i] <- result{err: err}
					return nil
				}
				text, err := p.RenderFile(ctx, path)
				results[i] <- result{text, err}
				return nil
			})
		}
	}()

	var failed int
	for i, path := range paths {
		r := <-results[i]
		if r.err != nil {
			failed++
			slog.Error("skipping file",
				slog.String("file", path),
				slog.String("stage", stage(r.err)),
				slog.Any("error", r.err),
			)
			continue
		}

		if err := p.write(w, r.text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

// write prints one block followed by a blank line. Color blocks reset the
// terminal first so the last background color does not bleed.
func (p *Plan) write(w io.Writer, text *img2sh.Text) error {
	if _, err := text.WriteTo(w); err != nil {
		return err
	}
	if _, ok := p.Mode.(img2sh.Color); ok {
		term.ANSI{w}.Reset()
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func stage(err error) string {
	var (
		openErr  *decode.FileOpenError
		decErr   *decode.DecodeError
		dimErr   *size.DimensionError
		quantErr *img2sh.QuantizationError
	)
	switch {
	case errors.As(err, &openErr):
		return "open"
	case errors.As(err, &decErr):
		return "decode"
	case errors.As(err, &dimErr):
		return "resize"
	case errors.As(err, &quantErr):
		return "quantize"
	default:
		return "render"
	}
}
