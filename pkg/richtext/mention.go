package richtext

import "github.com/yaklabco/richmd/pkg/mdstream"

// spliceMentions consumes queued mentions whose source ranges lie entirely
// within the current text event's source range, emitting a mention span at
// the remapped output offset for each. destStart is the output offset at
// which the event's text will be appended.
//
// A mention that straddles markup boundaries is never contained in a single
// text event and therefore never emitted; it also stops consumption, since
// the queue is ordered and everything behind it lies still further ahead.
func (r *renderer) spliceMentions(source mdstream.Range, destStart int) {
	for len(r.mentions) > 0 {
		mention := r.mentions[0]
		if !source.ContainsInclusive(mention.Range) {
			break
		}
		r.mentions = r.mentions[1:]

		delta := destStart - source.Start
		kind := HighlightMention
		if mention.IsSelf {
			kind = HighlightSelfMention
		}
		r.spans = append(r.spans, Span{
			Range:     mdstream.Range{Start: mention.Range.Start + delta, End: mention.Range.End + delta},
			Highlight: Highlight{Kind: kind},
		})
	}
}
