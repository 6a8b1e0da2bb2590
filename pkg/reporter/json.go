package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/richmd/pkg/richtext"
)

// Compile-time interface check.
var _ Renderer = (*JSONRenderer)(nil)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string     `json:"version"`
	Text    string     `json:"text"`
	Spans   []JSONSpan `json:"spans"`
	Links   []JSONLink `json:"links"`
}

// JSONSpan represents a single annotation.
type JSONSpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Kind  string `json:"kind"`

	// Style fields, present only for explicit-style annotations.
	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	// Syntax is the token identifier for syntax annotations.
	Syntax uint32 `json:"syntax,omitempty"`
}

// JSONLink pairs a link's text range with its URL.
type JSONLink struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	URL   string `json:"url"`
}

// JSONRenderer formats documents as JSON.
type JSONRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, doc *richtext.RichText) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildOutput(doc)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func buildOutput(doc *richtext.RichText) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Spans:   make([]JSONSpan, 0),
		Links:   make([]JSONLink, 0),
	}

	if doc == nil {
		return output
	}

	output.Text = doc.Text

	for _, span := range doc.Spans {
		jsonSpan := JSONSpan{
			Start: span.Range.Start,
			End:   span.Range.End,
			Kind:  span.Highlight.Kind.String(),
		}
		switch span.Highlight.Kind {
		case richtext.HighlightStyle:
			jsonSpan.Bold = span.Highlight.Style.Bold
			jsonSpan.Italic = span.Highlight.Style.Italic
			jsonSpan.Underline = span.Highlight.Style.Underline
		case richtext.HighlightSyntax:
			jsonSpan.Syntax = uint32(span.Highlight.Syntax)
		}
		output.Spans = append(output.Spans, jsonSpan)
	}

	for i, linkRange := range doc.LinkRanges {
		link := JSONLink{
			Start: linkRange.Start,
			End:   linkRange.End,
		}
		if i < len(doc.LinkURLs) {
			link.URL = doc.LinkURLs[i]
		}
		output.Links = append(output.Links, link)
	}

	return output
}
