package richtext

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/yaklabco/richmd/pkg/mdstream"
)

// Render folds a Markdown event stream into a RichText document.
//
// mentions must be sorted ascending by start offset and non-overlapping.
// resolver may be nil, in which case no fenced code block resolves a
// language. defaultLanguage applies to indented code blocks and may be nil.
//
// Render is a pure function of its inputs: all intermediate state is owned
// by this call, so concurrent invocations are safe as long as the resolver
// tolerates concurrent queries.
func Render(events []mdstream.Event, mentions []Mention, resolver LanguageResolver, defaultLanguage Language) RichText {
	r := renderer{
		mentions:        mentions,
		resolver:        resolver,
		defaultLanguage: defaultLanguage,
	}

	for _, ev := range events {
		r.handle(ev)
	}

	text := strings.TrimRightFunc(string(r.out), unicode.IsSpace)

	// The trim only removes whitespace past rendered content, but a code
	// block's final newline is covered by its coverage spans; clamp anything
	// that reached into the trimmed tail so every range indexes into text.
	spans := r.spans[:0]
	for _, s := range r.spans {
		if s.Range.Start >= len(text) {
			continue
		}
		if s.Range.End > len(text) {
			s.Range.End = len(text)
		}
		spans = append(spans, s)
	}
	if len(spans) == 0 {
		spans = nil
	}

	return RichText{
		Text:       text,
		Spans:      spans,
		LinkRanges: r.linkRanges,
		LinkURLs:   r.linkURLs,
	}
}

// listFrame tracks one currently-open list: its running counter for ordered
// lists, and whether the current item has emitted block content yet.
type listFrame struct {
	ordered    bool
	number     int
	hasContent bool
}

// renderer holds all mutable fold state. Created fresh per Render call.
type renderer struct {
	out        []byte
	spans      []Span
	linkRanges []mdstream.Range
	linkURLs   []string

	mentions        []Mention
	resolver        LanguageResolver
	defaultLanguage Language

	boldDepth   int
	italicDepth int
	linkURL     string
	linkActive  bool
	codeLang    Language
	listStack   []listFrame
}

func (r *renderer) handle(ev mdstream.Event) {
	prevLen := len(r.out)

	switch ev.Kind {
	case mdstream.KindText:
		if r.codeLang != nil {
			// Code content bypasses mention splicing and style runs.
			r.appendCode(ev.Text, r.codeLang)
			return
		}
		r.spliceMentions(ev.Range, prevLen)
		r.out = append(r.out, ev.Text...)

		style := Style{Bold: r.boldDepth > 0, Italic: r.italicDepth > 0}
		if r.linkActive {
			r.linkRanges = append(r.linkRanges, mdstream.Range{Start: prevLen, End: len(r.out)})
			r.linkURLs = append(r.linkURLs, r.linkURL)
			style.Underline = true
		}
		if style != (Style{}) {
			r.appendStyled(mdstream.Range{Start: prevLen, End: len(r.out)}, style)
		}

	case mdstream.KindCode:
		r.out = append(r.out, ev.Text...)
		if r.linkActive {
			span := mdstream.Range{Start: prevLen, End: len(r.out)}
			r.spans = append(r.spans, Span{Range: span, Highlight: StyleHighlight(Style{Underline: true})})
			r.linkRanges = append(r.linkRanges, span)
			r.linkURLs = append(r.linkURLs, r.linkURL)
		}

	case mdstream.KindStart:
		r.handleStart(ev)

	case mdstream.KindEnd:
		r.handleEnd(ev)

	case mdstream.KindHardBreak, mdstream.KindSoftBreak:
		r.out = append(r.out, '\n')
	}
}

func (r *renderer) handleStart(ev mdstream.Event) {
	switch ev.Tag {
	case mdstream.TagParagraph:
		r.breakParagraph()
	case mdstream.TagHeading:
		r.breakParagraph()
		r.boldDepth++
	case mdstream.TagCodeBlock:
		r.breakParagraph()
		if ev.Fenced {
			if r.resolver != nil {
				if lang, ok := r.resolver.TryLanguage(ev.Language); ok {
					r.codeLang = lang
				}
			}
		} else {
			r.codeLang = r.defaultLanguage
		}
	case mdstream.TagEmphasis:
		r.italicDepth++
	case mdstream.TagStrong:
		r.boldDepth++
	case mdstream.TagLink:
		// Links do not nest in the source grammar; last write wins.
		r.linkURL = ev.Destination
		r.linkActive = true
	case mdstream.TagList:
		r.listStack = append(r.listStack, listFrame{ordered: ev.Ordered, number: ev.ListStart})
	case mdstream.TagItem:
		r.startItem()
	}
}

func (r *renderer) handleEnd(ev mdstream.Event) {
	switch ev.Tag {
	case mdstream.TagHeading, mdstream.TagStrong:
		r.boldDepth--
	case mdstream.TagEmphasis:
		r.italicDepth--
	case mdstream.TagCodeBlock:
		r.codeLang = nil
	case mdstream.TagLink:
		r.linkActive = false
		r.linkURL = ""
	case mdstream.TagList:
		if n := len(r.listStack); n > 0 {
			r.listStack = r.listStack[:n-1]
		}
	}
}

// startItem emits the marker for a new list item: one line break if the
// buffer does not already end with one, two spaces of indentation per
// nesting level beyond the innermost, then the counter or bullet prefix.
func (r *renderer) startItem() {
	if len(r.listStack) == 0 {
		return
	}
	frame := &r.listStack[len(r.listStack)-1]
	frame.hasContent = false

	if len(r.out) > 0 && r.out[len(r.out)-1] != '\n' {
		r.out = append(r.out, '\n')
	}
	for range len(r.listStack) - 1 {
		r.out = append(r.out, "  "...)
	}
	if frame.ordered {
		r.out = append(r.out, strconv.Itoa(frame.number)...)
		r.out = append(r.out, ". "...)
		frame.number++
	} else {
		r.out = append(r.out, "- "...)
	}
}

// breakParagraph inserts blank-line and indentation spacing before a block
// element, respecting list context.
//
// The first block inside a list item shares its line with the item marker:
// the frame is marked as having content and nothing is emitted. Later
// blocks get a blank separator line, indentation for the enclosing lists,
// and two extra spaces to align continuation paragraphs under the marker.
func (r *renderer) breakParagraph() {
	subsequentInItem := false
	if n := len(r.listStack); n > 0 {
		frame := &r.listStack[n-1]
		if frame.hasContent {
			subsequentInItem = true
		} else {
			frame.hasContent = true
			return
		}
	}

	if len(r.out) > 0 {
		if r.out[len(r.out)-1] != '\n' {
			r.out = append(r.out, '\n')
		}
		r.out = append(r.out, '\n')
	}
	for i := 0; i+1 < len(r.listStack); i++ {
		r.out = append(r.out, "  "...)
	}
	if subsequentInItem {
		r.out = append(r.out, "  "...)
	}
}

// appendStyled records an explicit-style run, extending the previous span
// when it has the identical style and ends exactly where this run starts.
// The merge bounds span-list growth for long uniformly-styled passages and
// must never combine unlike annotation kinds.
func (r *renderer) appendStyled(rng mdstream.Range, style Style) {
	if n := len(r.spans); n > 0 {
		last := &r.spans[n-1]
		if last.Highlight.Kind == HighlightStyle && last.Highlight.Style == style && last.Range.End == rng.Start {
			last.Range.End = rng.End
			return
		}
	}
	r.spans = append(r.spans, Span{Range: rng, Highlight: StyleHighlight(style)})
}
