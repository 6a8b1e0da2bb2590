package goldmark

import (
	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/richmd/pkg/mdstream"
)

// nodeRange extracts the source byte range for a goldmark node.
// Returns mdstream.Unknown() when the node exposes no position; unknown
// ranges never satisfy mention containment downstream.
func nodeRange(n ast.Node) mdstream.Range {
	if n.Type() == ast.TypeInline {
		return inlineNodeRange(n)
	}

	lines := n.Lines()
	if lines.Len() == 0 {
		return mdstream.Unknown()
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return mdstream.Range{Start: first.Start, End: last.Stop}
}

// inlineNodeRange derives a range from an inline node's text segments.
// Inline nodes do not carry Lines(); their extent is the union of their
// text children, plus the node's own segment for text nodes.
func inlineNodeRange(n ast.Node) mdstream.Range {
	rng := mdstream.Unknown()

	widen := func(start, stop int) {
		if rng.Start == -1 || start < rng.Start {
			rng.Start = start
		}
		if stop > rng.End {
			rng.End = stop
		}
	}

	if t, ok := n.(*ast.Text); ok {
		widen(t.Segment.Start, t.Segment.Stop)
		return rng
	}

	if raw, ok := n.(*ast.RawHTML); ok {
		for i := range raw.Segments.Len() {
			seg := raw.Segments.At(i)
			widen(seg.Start, seg.Stop)
		}
		return rng
	}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			widen(t.Segment.Start, t.Segment.Stop)
		}
	}
	return rng
}
