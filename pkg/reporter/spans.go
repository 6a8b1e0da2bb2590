package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/richmd/internal/ui/pretty"
	"github.com/yaklabco/richmd/pkg/richtext"
)

// Compile-time interface check.
var _ Renderer = (*SpansRenderer)(nil)

// SpansRenderer emits the annotation and link tables for inspection.
type SpansRenderer struct {
	opts      Options
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewSpansRenderer creates a new spans table renderer.
func NewSpansRenderer(opts Options) *SpansRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	termWidth := opts.TermWidth
	if termWidth <= 0 {
		termWidth = pretty.TerminalWidth()
	}
	return &SpansRenderer{
		opts:      opts,
		formatter: pretty.NewTableFormatter(pretty.NewStyles(colorEnabled), termWidth),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *SpansRenderer) Render(_ context.Context, doc *richtext.RichText) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if _, err := r.bw.WriteString(r.formatter.FormatSpans(doc)); err != nil {
		return fmt.Errorf("write spans: %w", err)
	}

	return nil
}
