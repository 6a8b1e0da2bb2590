package goldmark

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/richmd/pkg/mdstream"
)

// emitter flattens a goldmark AST into the event sequence.
type emitter struct {
	source []byte
	events []mdstream.Event
}

func (e *emitter) emitChildren(parent ast.Node) {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		e.emitNode(child)
	}
}

// emitNode emits the events for a single node and its subtree.
func (e *emitter) emitNode(n ast.Node) {
	switch gmn := n.(type) {
	case *ast.Document:
		e.emitChildren(n)

	case *ast.Heading:
		e.emitWrapped(n, mdstream.TagHeading)

	case *ast.Paragraph:
		e.emitWrapped(n, mdstream.TagParagraph)

	case *ast.TextBlock:
		// Tight list item content: no paragraph events, so the text
		// shares its line with the item marker.
		e.emitChildren(n)

	case *ast.Blockquote:
		e.emitWrapped(n, mdstream.TagBlockquote)

	case *ast.List:
		e.emitList(gmn)

	case *ast.ListItem:
		e.emitWrapped(n, mdstream.TagItem)

	case *ast.FencedCodeBlock:
		e.emitCodeBlock(n, string(gmn.Language(e.source)), true)

	case *ast.CodeBlock:
		e.emitCodeBlock(n, "", false)

	case *ast.ThematicBreak, *ast.HTMLBlock:
		e.startEnd(n, mdstream.TagOther)

	case *ast.Text:
		e.emitText(gmn)

	case *ast.String:
		if len(gmn.Value) > 0 {
			e.events = append(e.events, mdstream.Event{
				Kind:  mdstream.KindText,
				Range: mdstream.Unknown(),
				Text:  string(gmn.Value),
			})
		}

	case *ast.Emphasis:
		tag := mdstream.TagEmphasis
		if gmn.Level >= 2 {
			tag = mdstream.TagStrong
		}
		e.emitWrapped(n, tag)

	case *ast.CodeSpan:
		e.emitCodeSpan(gmn)

	case *ast.Link:
		e.start(mdstream.Event{
			Kind:        mdstream.KindStart,
			Tag:         mdstream.TagLink,
			Range:       nodeRange(n),
			Destination: string(gmn.Destination),
		})
		e.emitChildren(n)
		e.end(n, mdstream.TagLink)

	case *ast.AutoLink:
		e.emitAutoLink(gmn)

	case *ast.Image:
		e.emitWrapped(n, mdstream.TagImage)

	case *ast.RawHTML:
		// Raw HTML produces no output text.

	case *east.Strikethrough:
		// No strikethrough rendering; the inner text still flows.
		e.emitChildren(n)

	default:
		// Unknown and extension nodes (tables, task boxes, footnotes)
		// degrade to their textual content. The stream stays total.
		e.emitChildren(n)
	}
}

func (e *emitter) start(ev mdstream.Event) {
	e.events = append(e.events, ev)
}

func (e *emitter) end(n ast.Node, tag mdstream.Tag) {
	e.events = append(e.events, mdstream.Event{Kind: mdstream.KindEnd, Tag: tag, Range: nodeRange(n)})
}

// emitWrapped emits start/children/end for a plain container node.
func (e *emitter) emitWrapped(n ast.Node, tag mdstream.Tag) {
	e.start(mdstream.Event{Kind: mdstream.KindStart, Tag: tag, Range: nodeRange(n)})
	e.emitChildren(n)
	e.end(n, tag)
}

// startEnd emits an empty start/end pair for structures without content
// rendering (thematic breaks, HTML blocks).
func (e *emitter) startEnd(n ast.Node, tag mdstream.Tag) {
	e.start(mdstream.Event{Kind: mdstream.KindStart, Tag: tag, Range: nodeRange(n)})
	e.end(n, tag)
}

func (e *emitter) emitList(list *ast.List) {
	ev := mdstream.Event{
		Kind:    mdstream.KindStart,
		Tag:     mdstream.TagList,
		Range:   nodeRange(list),
		Ordered: list.IsOrdered(),
	}
	if ev.Ordered {
		ev.ListStart = list.Start
	}
	e.start(ev)
	e.emitChildren(list)
	e.end(list, mdstream.TagList)
}

// emitCodeBlock emits the block wrapper and one text event per source line
// of code content.
func (e *emitter) emitCodeBlock(n ast.Node, language string, fenced bool) {
	e.start(mdstream.Event{
		Kind:     mdstream.KindStart,
		Tag:      mdstream.TagCodeBlock,
		Range:    nodeRange(n),
		Language: language,
		Fenced:   fenced,
	})

	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		e.events = append(e.events, mdstream.Event{
			Kind:  mdstream.KindText,
			Range: mdstream.Range{Start: seg.Start, End: seg.Stop},
			Text:  string(seg.Value(e.source)),
		})
	}

	e.end(n, mdstream.TagCodeBlock)
}

// emitText emits the text node's content, followed by a break event when
// goldmark flags the node as ending its source line.
//
// goldmark leaves backslash escapes and character references in the segment
// and resolves them in its renderer; cooked text resolves them here instead,
// splitting the segment into one event per literal run so every emitted
// range still maps byte-for-byte onto the source.
func (e *emitter) emitText(t *ast.Text) {
	seg := t.Segment
	if seg.Len() > 0 {
		if t.IsRaw() {
			e.literal(seg.Start, seg.Stop)
		} else {
			e.emitCooked(seg.Start, seg.Stop)
		}
	}
	switch {
	case t.HardLineBreak():
		e.events = append(e.events, mdstream.Event{Kind: mdstream.KindHardBreak, Range: mdstream.Unknown()})
	case t.SoftLineBreak():
		e.events = append(e.events, mdstream.Event{Kind: mdstream.KindSoftBreak, Range: mdstream.Unknown()})
	}
}

// emitCooked emits the literal runs of source[start:limit], dropping the
// backslash of punctuation escapes and substituting character references.
// An escaped punctuation byte starts a fresh run, so its event range begins
// right after the backslash.
func (e *emitter) emitCooked(start, limit int) {
	n := start
	for i := start; i < limit; i++ {
		switch e.source[i] {
		case '\\':
			if i+1 < limit && util.IsPunct(e.source[i+1]) {
				e.literal(n, i)
				n = i + 1
				i++
			}
		case '&':
			if repl, end := resolveCharRef(e.source, i, limit); end > 0 {
				e.literal(n, i)
				// The replacement text has no byte-for-byte source
				// mapping, so the event carries no range.
				e.text(mdstream.Unknown(), repl)
				n = end
				i = end - 1
			}
		}
	}
	e.literal(n, limit)
}

// literal emits one text event covering source[start:end] verbatim.
func (e *emitter) literal(start, end int) {
	if end <= start {
		return
	}
	e.text(mdstream.Range{Start: start, End: end}, string(e.source[start:end]))
}

func (e *emitter) text(rng mdstream.Range, s string) {
	if s == "" {
		return
	}
	e.events = append(e.events, mdstream.Event{Kind: mdstream.KindText, Range: rng, Text: s})
}

// resolveCharRef decodes the entity or numeric character reference starting
// at pos, returning the replacement text and the index just past the closing
// semicolon. end is 0 when the bytes are not a valid reference. The accepted
// forms and digit limits follow goldmark's renderer.
func resolveCharRef(source []byte, pos, limit int) (repl string, end int) {
	next := pos + 1
	if next < limit && source[next] == '#' {
		nnext := next + 1
		if nnext >= limit {
			return "", 0
		}
		switch nc := source[nnext]; {
		case nc == 'x' || nc == 'X':
			start := nnext + 1
			i, ok := util.ReadWhile(source, [2]int{start, limit}, util.IsHexDecimal)
			if ok && i < limit && source[i] == ';' && i-start < 7 {
				v, _ := strconv.ParseUint(string(source[start:i]), 16, 32)
				return string(util.ToValidRune(rune(v))), i + 1
			}
		case nc >= '0' && nc <= '9':
			start := nnext
			i, ok := util.ReadWhile(source, [2]int{start, limit}, util.IsNumeric)
			if ok && i < limit && i-start < 8 && source[i] == ';' {
				v, _ := strconv.ParseUint(string(source[start:i]), 10, 32)
				return string(util.ToValidRune(rune(v))), i + 1
			}
		}
		return "", 0
	}

	i, ok := util.ReadWhile(source, [2]int{next, limit}, util.IsAlphaNumeric)
	if ok && i < limit && i > next && source[i] == ';' {
		if entity, found := util.LookUpHTML5EntityByName(string(source[next:i])); found {
			return string(entity.Characters), i + 1
		}
	}
	return "", 0
}

// emitCodeSpan emits a single inline-code event with the concatenated
// content of the span's text children.
func (e *emitter) emitCodeSpan(cs *ast.CodeSpan) {
	var content []byte
	rng := mdstream.Unknown()
	for child := cs.FirstChild(); child != nil; child = child.NextSibling() {
		t, ok := child.(*ast.Text)
		if !ok {
			continue
		}
		content = append(content, t.Segment.Value(e.source)...)
		if rng.Start == -1 || t.Segment.Start < rng.Start {
			rng.Start = t.Segment.Start
		}
		if t.Segment.Stop > rng.End {
			rng.End = t.Segment.Stop
		}
	}
	e.events = append(e.events, mdstream.Event{
		Kind:  mdstream.KindCode,
		Range: rng,
		Text:  string(content),
	})
}

// emitAutoLink expands an autolink into link start, label text, link end.
func (e *emitter) emitAutoLink(al *ast.AutoLink) {
	url := string(al.URL(e.source))
	if al.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
		url = "mailto:" + url
	}
	rng := nodeRange(al)
	e.start(mdstream.Event{
		Kind:        mdstream.KindStart,
		Tag:         mdstream.TagLink,
		Range:       rng,
		Destination: url,
	})
	e.events = append(e.events, mdstream.Event{
		Kind:  mdstream.KindText,
		Range: rng,
		Text:  string(al.Label(e.source)),
	})
	e.end(al, mdstream.TagLink)
}
