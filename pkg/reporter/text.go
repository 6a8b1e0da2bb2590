package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/richmd/pkg/richtext"
)

// Compile-time interface check.
var _ Renderer = (*TextRenderer)(nil)

// TextRenderer emits the flattened text with no styling.
type TextRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewTextRenderer creates a new plain text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, doc *richtext.RichText) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if doc == nil {
		return nil
	}

	if _, err := r.bw.WriteString(doc.Text); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	if len(doc.Text) > 0 {
		if err := r.bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}

	return nil
}
