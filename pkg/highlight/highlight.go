// Package highlight binds the richtext language interfaces to chroma.
//
// A Registry resolves fenced-code-block language names to lexers; a Lang
// tokenizes code content into ascending, non-overlapping byte ranges tagged
// with opaque syntax identifiers. Identifiers are chroma token types and can
// be mapped back for presentation with TokenType.
package highlight

import (
	"sort"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/yaklabco/richmd/pkg/mdstream"
	"github.com/yaklabco/richmd/pkg/richtext"
)

// Registry resolves language names against chroma's lexer registry.
//
// Resolution is non-blocking and idempotent; resolved languages are cached.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	langs sync.Map // name -> *Lang
}

// NewRegistry creates an empty registry backed by chroma's global lexers.
func NewRegistry() *Registry {
	return &Registry{}
}

// TryLanguage implements richtext.LanguageResolver. Unknown or empty names
// report ok false; the call never blocks.
func (r *Registry) TryLanguage(name string) (richtext.Language, bool) {
	if name == "" {
		return nil, false
	}
	if cached, ok := r.langs.Load(name); ok {
		return cached.(*Lang), true
	}

	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, false
	}
	lang := &Lang{name: name, lexer: chroma.Coalesce(lexer)}

	actual, _ := r.langs.LoadOrStore(name, lang)
	return actual.(*Lang), true
}

// Lang is a chroma-backed richtext.Language.
type Lang struct {
	name  string
	lexer chroma.Lexer
}

// Name returns the name the language was resolved under.
func (l *Lang) Name() string {
	return l.name
}

// HighlightText tokenizes code and returns syntax tokens with ranges
// relative to code. Plain text, whitespace, and error regions produce no
// token; those gaps render as generic code downstream. Tokenise failures
// degrade to zero tokens.
func (l *Lang) HighlightText(code string) []richtext.SyntaxToken {
	it, err := l.lexer.Tokenise(nil, code)
	if err != nil {
		return nil
	}

	var tokens []richtext.SyntaxToken
	offset := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := len(tok.Value)
		if n == 0 {
			continue
		}
		if significant(tok.Type) {
			tokens = append(tokens, richtext.SyntaxToken{
				Range: mdstream.Range{Start: offset, End: offset + n},
				ID:    richtext.SyntaxID(tok.Type),
			})
		}
		offset += n
	}
	return tokens
}

// significant reports whether a chroma token type deserves its own syntax
// span. Unstyled categories are left to the generic-code gap fill.
func significant(t chroma.TokenType) bool {
	if t < 0 || t == chroma.EOFType {
		// Specials: Error, Other, None.
		return false
	}
	return t.Category() != chroma.Text
}

// TokenType recovers the chroma token type behind an opaque syntax
// identifier. Presentation layers use this to pick colors; the transform
// itself never calls it.
func TokenType(id richtext.SyntaxID) chroma.TokenType {
	return chroma.TokenType(id)
}

// Names lists the resolvable language names, sorted, without aliases.
func Names() []string {
	names := lexers.GlobalLexerRegistry.Names(false)
	sort.Strings(names)
	return names
}
