package richtext

import "github.com/yaklabco/richmd/pkg/mdstream"

// appendCode appends code content verbatim and converts the language's
// sparse token ranges into spans that fully cover the appended region:
// every gap before, between, and after tokens becomes a HighlightCode span,
// and every token becomes a HighlightSyntax span at its offset-adjusted
// position. No merging happens here; tokenizers already coalesce runs.
func (r *renderer) appendCode(content string, lang Language) {
	prevLen := len(r.out)
	r.out = append(r.out, content...)

	offset := 0
	for _, tok := range lang.HighlightText(content) {
		if tok.Range.Start > offset {
			r.spans = append(r.spans, Span{
				Range:     mdstream.Range{Start: prevLen + offset, End: prevLen + tok.Range.Start},
				Highlight: Highlight{Kind: HighlightCode},
			})
		}
		r.spans = append(r.spans, Span{
			Range:     mdstream.Range{Start: prevLen + tok.Range.Start, End: prevLen + tok.Range.End},
			Highlight: SyntaxHighlight(tok.ID),
		})
		offset = tok.Range.End
	}
	if offset < len(content) {
		r.spans = append(r.spans, Span{
			Range:     mdstream.Range{Start: prevLen + offset, End: prevLen + len(content)},
			Highlight: Highlight{Kind: HighlightCode},
		})
	}
}
