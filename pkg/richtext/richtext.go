// Package richtext compiles a Markdown event stream into a flattened
// display string with an ordered set of style and semantic annotations.
//
// The output pairs the text with three parallel structures: highlight spans
// (style runs, code regions, syntax tokens, mentions), link ranges, and the
// link destination URLs correlated by index. Parsing and syntax highlighting
// are external: the event stream comes from pkg/parser/goldmark and code
// tokenization from any Language implementation (pkg/highlight binds chroma).
package richtext

import "github.com/yaklabco/richmd/pkg/mdstream"

// HighlightKind discriminates the annotation variants.
type HighlightKind uint8

const (
	// HighlightCode marks code content with no specific syntax category.
	HighlightCode HighlightKind = iota
	// HighlightSyntax carries an opaque syntax token identifier resolved
	// later by the presentation layer.
	HighlightSyntax
	// HighlightStyle carries an explicit character style.
	HighlightStyle
	// HighlightMention marks a spliced mention of another user.
	HighlightMention
	// HighlightSelfMention marks a spliced mention of the current user.
	HighlightSelfMention
)

// String returns the annotation kind name used in span dumps.
func (k HighlightKind) String() string {
	switch k {
	case HighlightCode:
		return "code"
	case HighlightSyntax:
		return "syntax"
	case HighlightStyle:
		return "style"
	case HighlightMention:
		return "mention"
	case HighlightSelfMention:
		return "self-mention"
	default:
		return "unknown"
	}
}

// SyntaxID is an opaque token category handle produced by a Language.
// The transform never interprets it.
type SyntaxID uint32

// Style is an explicit character style. The zero value is the default style
// and is never recorded as a highlight.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
}

// Highlight is a tagged annotation variant. Style is meaningful only for
// HighlightStyle, Syntax only for HighlightSyntax.
type Highlight struct {
	Kind   HighlightKind
	Style  Style
	Syntax SyntaxID
}

// StyleHighlight returns an explicit-style annotation.
func StyleHighlight(style Style) Highlight {
	return Highlight{Kind: HighlightStyle, Style: style}
}

// SyntaxHighlight returns a syntax-token annotation.
func SyntaxHighlight(id SyntaxID) Highlight {
	return Highlight{Kind: HighlightSyntax, Syntax: id}
}

// Span is an annotation attached to a half-open range of the output text.
type Span struct {
	Range     mdstream.Range
	Highlight Highlight
}

// RichText is the compiled document. Text is final once Render returns;
// Spans are ordered as constructed; LinkURLs[i] is the destination for
// LinkRanges[i].
type RichText struct {
	Text       string
	Spans      []Span
	LinkRanges []mdstream.Range
	LinkURLs   []string
}

// Mention is an externally identified span of the Markdown source that must
// be re-tagged at the corresponding offset of the output text.
//
// Callers must supply mentions sorted ascending by Range.Start and
// non-overlapping. Each mention is consumed at most once.
type Mention struct {
	Range  mdstream.Range
	IsSelf bool
}

// SyntaxToken is one highlighted region of a code string, with the range
// expressed relative to that string.
type SyntaxToken struct {
	Range mdstream.Range
	ID    SyntaxID
}

// Language tokenizes code content for syntax highlighting.
//
// HighlightText must return non-overlapping token ranges in ascending order,
// all within bounds of code. Gaps are permitted; the folder fills them with
// HighlightCode spans.
type Language interface {
	HighlightText(code string) []SyntaxToken
}

// LanguageResolver maps a fenced-code-block language name to a Language.
//
// TryLanguage is a non-blocking, best-effort probe: it must return
// immediately, with ok false when the language is unknown or not yet
// available. Implementations must be safe for concurrent, repeated,
// idempotent queries.
type LanguageResolver interface {
	TryLanguage(name string) (Language, bool)
}
