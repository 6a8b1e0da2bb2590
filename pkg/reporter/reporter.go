// Package reporter writes compiled documents in the supported output formats.
package reporter

import "fmt"

// New creates a Renderer for the specified options.
func New(opts Options) (Renderer, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONRenderer(opts), nil
	case FormatANSI:
		return NewANSIRenderer(opts), nil
	case FormatSpans:
		return NewSpansRenderer(opts), nil
	case FormatText:
		return NewTextRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
