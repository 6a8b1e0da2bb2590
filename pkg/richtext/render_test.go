package richtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goldmarkparser "github.com/yaklabco/richmd/pkg/parser/goldmark"
	"github.com/yaklabco/richmd/pkg/mdstream"
	"github.com/yaklabco/richmd/pkg/richtext"
)

// stubLanguage returns a fixed token sequence regardless of input.
type stubLanguage struct {
	tokens []richtext.SyntaxToken
}

func (s stubLanguage) HighlightText(_ string) []richtext.SyntaxToken {
	return s.tokens
}

// stubResolver resolves only the names it was seeded with.
type stubResolver map[string]richtext.Language

func (s stubResolver) TryLanguage(name string) (richtext.Language, bool) {
	lang, ok := s[name]
	return lang, ok
}

func render(t *testing.T, source string, mentions []richtext.Mention, resolver richtext.LanguageResolver, defaultLang richtext.Language) richtext.RichText {
	t.Helper()
	p := goldmarkparser.New(goldmarkparser.FlavorCommonMark)
	return richtext.Render(p.Events([]byte(source)), mentions, resolver, defaultLang)
}

func TestRender_PlainText(t *testing.T) {
	doc := render(t, "Hello, world.", nil, nil, nil)

	assert.Equal(t, "Hello, world.", doc.Text)
	assert.Empty(t, doc.Spans)
	assert.Empty(t, doc.LinkRanges)
	assert.Empty(t, doc.LinkURLs)
}

func TestRender_TrailingWhitespaceTrimmed(t *testing.T) {
	doc := render(t, "text   \n\n", nil, nil, nil)
	assert.Equal(t, "text", doc.Text)
}

func TestRender_BoldRun(t *testing.T) {
	doc := render(t, "**bold** text", nil, nil, nil)

	assert.Equal(t, "bold text", doc.Text)
	require.Len(t, doc.Spans, 1)
	assert.Equal(t, mdstream.Range{Start: 0, End: 4}, doc.Spans[0].Range)
	assert.Equal(t, richtext.StyleHighlight(richtext.Style{Bold: true}), doc.Spans[0].Highlight)
}

func TestRender_NestedStrongEmphasisCombines(t *testing.T) {
	doc := render(t, "***word***", nil, nil, nil)

	assert.Equal(t, "word", doc.Text)
	require.Len(t, doc.Spans, 1, "nested strong+emphasis must produce one combined run")
	assert.Equal(t, richtext.StyleHighlight(richtext.Style{Bold: true, Italic: true}), doc.Spans[0].Highlight)
	assert.Equal(t, mdstream.Range{Start: 0, End: 4}, doc.Spans[0].Range)
}

func TestRender_AdjacentIdenticalRunsMerge(t *testing.T) {
	// The escape splits the strong content into multiple text events;
	// identical contiguous style runs must collapse into one span.
	doc := render(t, `**a\*b**`, nil, nil, nil)

	assert.Equal(t, "a*b", doc.Text)
	require.Len(t, doc.Spans, 1)
	assert.Equal(t, mdstream.Range{Start: 0, End: 3}, doc.Spans[0].Range)
	assert.Equal(t, richtext.StyleHighlight(richtext.Style{Bold: true}), doc.Spans[0].Highlight)
}

func TestRender_CharacterReferencesResolved(t *testing.T) {
	doc := render(t, "fish &amp; chips&#33;", nil, nil, nil)

	assert.Equal(t, "fish & chips!", doc.Text)
	assert.Empty(t, doc.Spans)
}

func TestRender_SoftBreakSplitsRuns(t *testing.T) {
	doc := render(t, "**a\nb**", nil, nil, nil)

	assert.Equal(t, "a\nb", doc.Text)
	// The newline byte between the runs breaks contiguity: no merge.
	require.Len(t, doc.Spans, 2)
	assert.Equal(t, mdstream.Range{Start: 0, End: 1}, doc.Spans[0].Range)
	assert.Equal(t, mdstream.Range{Start: 2, End: 3}, doc.Spans[1].Range)
}

func TestRender_HeadingIsBold(t *testing.T) {
	doc := render(t, "# Title", nil, nil, nil)

	assert.Equal(t, "Title", doc.Text)
	require.Len(t, doc.Spans, 1)
	assert.Equal(t, richtext.StyleHighlight(richtext.Style{Bold: true}), doc.Spans[0].Highlight)
	assert.Equal(t, mdstream.Range{Start: 0, End: 5}, doc.Spans[0].Range)
}

func TestRender_ParagraphsSeparatedByBlankLine(t *testing.T) {
	doc := render(t, "one\n\ntwo", nil, nil, nil)
	assert.Equal(t, "one\n\ntwo", doc.Text)
}

func TestRender_HeadingThenParagraph(t *testing.T) {
	doc := render(t, "# Title\n\nbody", nil, nil, nil)
	assert.Equal(t, "Title\n\nbody", doc.Text)
}

func TestRender_HardBreak(t *testing.T) {
	doc := render(t, "a  \nb", nil, nil, nil)
	assert.Equal(t, "a\nb", doc.Text)
}

func TestRender_SoftBreak(t *testing.T) {
	doc := render(t, "a\nb", nil, nil, nil)
	assert.Equal(t, "a\nb", doc.Text)
}

func TestRender_BlockquoteContentFlows(t *testing.T) {
	doc := render(t, "> quoted", nil, nil, nil)
	assert.Equal(t, "quoted", doc.Text)
}

func TestRender_Link(t *testing.T) {
	doc := render(t, "[link](http://x)", nil, nil, nil)

	assert.Equal(t, "link", doc.Text)
	require.Len(t, doc.LinkRanges, 1)
	require.Len(t, doc.LinkURLs, 1)
	assert.Equal(t, mdstream.Range{Start: 0, End: 4}, doc.LinkRanges[0])
	assert.Equal(t, "http://x", doc.LinkURLs[0])
	require.Len(t, doc.Spans, 1)
	assert.Equal(t, richtext.StyleHighlight(richtext.Style{Underline: true}), doc.Spans[0].Highlight)
	assert.Equal(t, mdstream.Range{Start: 0, End: 4}, doc.Spans[0].Range)
}

func TestRender_InlineCodeInLink(t *testing.T) {
	doc := render(t, "[`code`](http://x)", nil, nil, nil)

	assert.Equal(t, "code", doc.Text)
	require.Len(t, doc.Spans, 1)
	assert.Equal(t, richtext.StyleHighlight(richtext.Style{Underline: true}), doc.Spans[0].Highlight)
	require.Len(t, doc.LinkRanges, 1)
	assert.Equal(t, mdstream.Range{Start: 0, End: 4}, doc.LinkRanges[0])
	assert.Equal(t, []string{"http://x"}, doc.LinkURLs)
}

func TestRender_InlineCodeOutsideLinkUnstyled(t *testing.T) {
	doc := render(t, "run `ls` now", nil, nil, nil)

	assert.Equal(t, "run ls now", doc.Text)
	assert.Empty(t, doc.Spans)
	assert.Empty(t, doc.LinkRanges)
}

func TestRender_UnorderedListMarkers(t *testing.T) {
	doc := render(t, "- a\n- b", nil, nil, nil)
	assert.Equal(t, "- a\n- b", doc.Text)
}

func TestRender_OrderedListCounters(t *testing.T) {
	doc := render(t, "1. a\n2. b", nil, nil, nil)
	assert.Equal(t, "1. a\n2. b", doc.Text)
}

func TestRender_OrderedListCustomStart(t *testing.T) {
	doc := render(t, "5. x\n6. y", nil, nil, nil)
	assert.Equal(t, "5. x\n6. y", doc.Text)
}

func TestRender_NestedListIndentation(t *testing.T) {
	doc := render(t, "- a\n  - b", nil, nil, nil)
	assert.Equal(t, "- a\n  - b", doc.Text)
}

func TestRender_ContinuationParagraphInItem(t *testing.T) {
	doc := render(t, "- a\n\n  b", nil, nil, nil)
	assert.Equal(t, "- a\n\n  b", doc.Text)
}

func TestRender_MentionInPlainText(t *testing.T) {
	// "@alice" sits after a 3-byte prefix with no intervening markup.
	source := "cc @alice please"
	mentions := []richtext.Mention{{Range: mdstream.Range{Start: 3, End: 9}}}

	doc := render(t, source, mentions, nil, nil)

	assert.Equal(t, source, doc.Text)
	require.Len(t, doc.Spans, 1)
	assert.Equal(t, richtext.HighlightMention, doc.Spans[0].Highlight.Kind)
	assert.Equal(t, mdstream.Range{Start: 3, End: 9}, doc.Spans[0].Range)
	assert.Equal(t, 6, doc.Spans[0].Range.Len())
}

func TestRender_SelfMention(t *testing.T) {
	mentions := []richtext.Mention{{Range: mdstream.Range{Start: 0, End: 3}, IsSelf: true}}

	doc := render(t, "@me hi", mentions, nil, nil)

	require.Len(t, doc.Spans, 1)
	assert.Equal(t, richtext.HighlightSelfMention, doc.Spans[0].Highlight.Kind)
}

func TestRender_MentionOffsetRemapping(t *testing.T) {
	// The heading markup shifts output offsets relative to the source.
	source := "# Title\n\nping @bob"
	mentions := []richtext.Mention{{Range: mdstream.Range{Start: 14, End: 18}}}

	doc := render(t, source, mentions, nil, nil)

	assert.Equal(t, "Title\n\nping @bob", doc.Text)

	var mentionSpans []richtext.Span
	for _, s := range doc.Spans {
		if s.Highlight.Kind == richtext.HighlightMention {
			mentionSpans = append(mentionSpans, s)
		}
	}
	require.Len(t, mentionSpans, 1)
	assert.Equal(t, mdstream.Range{Start: 12, End: 16}, mentionSpans[0].Range)
	assert.Equal(t, "@bob", doc.Text[12:16])
}

func TestRender_StraddlingMentionDropped(t *testing.T) {
	// The mention covers both plain text and strong markup, so it is never
	// contained in a single text event and must be silently dropped.
	source := "a **b** c"
	mentions := []richtext.Mention{{Range: mdstream.Range{Start: 0, End: 5}}}

	doc := render(t, source, mentions, nil, nil)

	for _, s := range doc.Spans {
		assert.NotEqual(t, richtext.HighlightMention, s.Highlight.Kind)
		assert.NotEqual(t, richtext.HighlightSelfMention, s.Highlight.Kind)
	}
}

func TestRender_FencedCodeZeroTokens(t *testing.T) {
	resolver := stubResolver{"foo": stubLanguage{}}

	doc := render(t, "```foo\nbar baz\n```", nil, resolver, nil)

	assert.Equal(t, "bar baz", doc.Text)
	require.Len(t, doc.Spans, 1, "zero tokens must yield a single generic-code span over the content")
	assert.Equal(t, richtext.Highlight{Kind: richtext.HighlightCode}, doc.Spans[0].Highlight)
	assert.Equal(t, mdstream.Range{Start: 0, End: len(doc.Text)}, doc.Spans[0].Range)
}

func TestRender_FencedCodeTokenGapFill(t *testing.T) {
	// Content line is "abcdefg\n"; tokens cover [1,3) and [5,7). Gaps
	// before, between, and after must be filled with generic-code spans.
	lang := stubLanguage{tokens: []richtext.SyntaxToken{
		{Range: mdstream.Range{Start: 1, End: 3}, ID: 7},
		{Range: mdstream.Range{Start: 5, End: 7}, ID: 9},
	}}
	resolver := stubResolver{"foo": lang}

	doc := render(t, "```foo\nabcdefg\n```", nil, resolver, nil)

	assert.Equal(t, "abcdefg", doc.Text)
	require.Len(t, doc.Spans, 4)
	assert.Equal(t, richtext.Highlight{Kind: richtext.HighlightCode}, doc.Spans[0].Highlight)
	assert.Equal(t, mdstream.Range{Start: 0, End: 1}, doc.Spans[0].Range)
	assert.Equal(t, richtext.SyntaxHighlight(7), doc.Spans[1].Highlight)
	assert.Equal(t, mdstream.Range{Start: 1, End: 3}, doc.Spans[1].Range)
	assert.Equal(t, richtext.Highlight{Kind: richtext.HighlightCode}, doc.Spans[2].Highlight)
	assert.Equal(t, mdstream.Range{Start: 3, End: 5}, doc.Spans[2].Range)
	assert.Equal(t, richtext.SyntaxHighlight(9), doc.Spans[3].Highlight)
	assert.Equal(t, mdstream.Range{Start: 5, End: 7}, doc.Spans[3].Range)
}

func TestRender_FencedCodeUnknownLanguageIsPlain(t *testing.T) {
	doc := render(t, "```nosuch\nplain code\n```", nil, stubResolver{}, nil)

	assert.Equal(t, "plain code", doc.Text)
	assert.Empty(t, doc.Spans, "unresolvable language renders as plain text")
}

func TestRender_FencedCodeNilResolverIsPlain(t *testing.T) {
	doc := render(t, "```go\nx := 1\n```", nil, nil, nil)

	assert.Equal(t, "x := 1", doc.Text)
	assert.Empty(t, doc.Spans)
}

func TestRender_IndentedCodeUsesDefaultLanguage(t *testing.T) {
	doc := render(t, "    x = 1\n", nil, nil, stubLanguage{})

	assert.Equal(t, "x = 1", doc.Text)
	require.Len(t, doc.Spans, 1)
	assert.Equal(t, richtext.Highlight{Kind: richtext.HighlightCode}, doc.Spans[0].Highlight)
}

func TestRender_IndentedCodeWithoutDefaultIsPlain(t *testing.T) {
	doc := render(t, "    x = 1\n", nil, nil, nil)

	assert.Equal(t, "x = 1", doc.Text)
	assert.Empty(t, doc.Spans)
}

func TestRender_CodeContentSkipsMentions(t *testing.T) {
	// The mention range sits inside the code block content; code bypasses
	// mention splicing entirely.
	source := "```foo\nping @bob\n```"
	mentions := []richtext.Mention{{Range: mdstream.Range{Start: 12, End: 16}}}

	doc := render(t, source, mentions, stubResolver{"foo": stubLanguage{}}, nil)

	for _, s := range doc.Spans {
		assert.NotEqual(t, richtext.HighlightMention, s.Highlight.Kind)
	}
}

func TestRender_InvariantsOnMixedDocument(t *testing.T) {
	source := "# Head\n\nsome **bold** and *italic* text with [a link](https://example.com)\n\n" +
		"- one\n- two\n  - deep\n\n```foo\nlet x = 1;\n```\n\ntail @eve here"
	mentionStart := len(source) - len("@eve here")
	mentions := []richtext.Mention{{Range: mdstream.Range{Start: mentionStart, End: mentionStart + 4}}}
	lang := stubLanguage{tokens: []richtext.SyntaxToken{
		{Range: mdstream.Range{Start: 0, End: 3}, ID: 1},
		{Range: mdstream.Range{Start: 4, End: 5}, ID: 2},
	}}

	doc := render(t, source, mentions, stubResolver{"foo": lang}, nil)

	require.Equal(t, len(doc.LinkRanges), len(doc.LinkURLs))

	prevStart := 0
	prevEnd := 0
	for i, s := range doc.Spans {
		assert.GreaterOrEqual(t, s.Range.Start, prevStart, "span %d start out of order", i)
		assert.GreaterOrEqual(t, s.Range.Start, prevEnd, "span %d overlaps previous", i)
		assert.Less(t, s.Range.Start, s.Range.End, "span %d is empty or inverted", i)
		assert.LessOrEqual(t, s.Range.End, len(doc.Text), "span %d out of bounds", i)
		prevStart = s.Range.Start
		prevEnd = s.Range.End
	}
	for i, r := range doc.LinkRanges {
		assert.LessOrEqual(t, r.End, len(doc.Text), "link range %d out of bounds", i)
	}

	var kinds []richtext.HighlightKind
	for _, s := range doc.Spans {
		kinds = append(kinds, s.Highlight.Kind)
	}
	assert.Contains(t, kinds, richtext.HighlightMention)
	assert.Contains(t, kinds, richtext.HighlightSyntax)
	assert.Contains(t, kinds, richtext.HighlightCode)
	assert.Contains(t, kinds, richtext.HighlightStyle)
}
