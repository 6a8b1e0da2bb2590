// Package mdstream defines the flat Markdown event stream consumed by the
// richtext folder. Parsers (see pkg/parser/goldmark) lower their document
// representation into this stream; each event carries the byte range of the
// source it was produced from, which is what makes mention offset remapping
// possible downstream.
package mdstream

// Range is a half-open byte range [Start, End).
//
// Ranges appear in two coordinate spaces: source ranges (into the Markdown
// input) on events and mentions, and output ranges (into the flattened text)
// on rendered spans. The type is shared; the space is determined by context.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// ContainsInclusive reports whether other lies entirely within r,
// boundaries included.
func (r Range) ContainsInclusive(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Unknown is the range used for events whose source position cannot be
// recovered. It never contains any mention range.
func Unknown() Range {
	return Range{Start: -1, End: -1}
}

// Kind discriminates event categories.
type Kind uint8

const (
	// KindText is literal text content.
	KindText Kind = iota
	// KindCode is an inline code span with its literal content.
	KindCode
	// KindStart opens the structure identified by the event's Tag.
	KindStart
	// KindEnd closes the structure identified by the event's Tag.
	KindEnd
	// KindHardBreak is an explicit line break.
	KindHardBreak
	// KindSoftBreak is a source line break inside a paragraph.
	KindSoftBreak
)

// Tag identifies the structure opened or closed by a Start/End event.
type Tag uint8

const (
	TagParagraph Tag = iota
	TagHeading
	TagCodeBlock
	TagEmphasis
	TagStrong
	TagLink
	TagImage
	TagBlockquote
	TagList
	TagItem
	// TagOther covers structures the folder has no rendering for
	// (thematic breaks, HTML blocks, tables, ...). Emitted so the
	// stream stays total; ignored downstream.
	TagOther
)

// Event is one element of the stream.
//
// Payload fields are populated per kind/tag: Text for KindText and KindCode,
// Destination for Start/TagLink, Language and Fenced for Start/TagCodeBlock,
// ListStart and Ordered for Start/TagList.
type Event struct {
	Kind  Kind
	Tag   Tag
	Range Range

	Text        string
	Destination string
	Language    string
	Fenced      bool
	ListStart   int
	Ordered     bool
}
