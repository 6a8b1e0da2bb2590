package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/richmd/internal/ui/pretty"
	"github.com/yaklabco/richmd/pkg/richtext"
)

// Compile-time interface check.
var _ Renderer = (*ANSIRenderer)(nil)

// ANSIRenderer emits styled terminal text, one escape sequence per
// annotated run.
type ANSIRenderer struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewANSIRenderer creates a new ANSI renderer.
func NewANSIRenderer(opts Options) *ANSIRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &ANSIRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *ANSIRenderer) Render(_ context.Context, doc *richtext.RichText) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	out := pretty.RenderPreview(doc, r.styles)
	if _, err := r.bw.WriteString(out); err != nil {
		return fmt.Errorf("write ansi: %w", err)
	}
	if len(out) > 0 {
		if err := r.bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write ansi: %w", err)
		}
	}

	return nil
}
