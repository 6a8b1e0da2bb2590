// Package goldmark lowers Markdown into the mdstream event sequence using
// the goldmark library. goldmark produces a document tree; this package
// flattens it into start/end/text events carrying source byte ranges, the
// shape the richtext folder consumes.
package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/richmd/pkg/mdstream"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser turns Markdown source into an mdstream event sequence.
//
// Parsing is total: malformed input degrades to whatever structure goldmark
// recovers, never an error.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a parser for the given flavor. Supported flavors are
// "commonmark" and "gfm"; anything else defaults to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Events parses source and returns the flattened event sequence.
func (p *Parser) Events(source []byte) []mdstream.Event {
	reader := text.NewReader(source)
	doc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	e := &emitter{source: source}
	e.emitChildren(doc)
	return e.events
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New(opts...)
}
