package pretty

import (
	"strings"

	"github.com/yaklabco/richmd/pkg/richtext"
)

// RenderPreview renders a document as styled terminal text. Annotated
// runs are styled per ForHighlight; unannotated gaps pass through as-is.
func RenderPreview(doc *richtext.RichText, styles *Styles) string {
	if doc == nil {
		return ""
	}

	var builder strings.Builder
	cursor := 0

	for _, span := range doc.Spans {
		start, end := span.Range.Start, span.Range.End
		if start < cursor {
			start = cursor
		}
		if end > len(doc.Text) {
			end = len(doc.Text)
		}
		if start >= end {
			continue
		}

		if cursor < start {
			builder.WriteString(doc.Text[cursor:start])
		}
		builder.WriteString(styles.ForHighlight(span.Highlight).Render(doc.Text[start:end]))
		cursor = end
	}

	if cursor < len(doc.Text) {
		builder.WriteString(doc.Text[cursor:])
	}

	return builder.String()
}
