// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/richmd/pkg/highlight"
	"github.com/yaklabco/richmd/pkg/richtext"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Inline annotation styles
	Code        lipgloss.Style
	Mention     lipgloss.Style
	SelfMention lipgloss.Style

	// Syntax token category styles
	Keyword  lipgloss.Style
	Name     lipgloss.Style
	Literal  lipgloss.Style
	Comment  lipgloss.Style
	Operator lipgloss.Style
	Generic  lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableLegend    lipgloss.Style

	// Misc
	Dim lipgloss.Style

	colorEnabled bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Code:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Mention:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		SelfMention: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Reverse(true),

		Keyword:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Name:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Literal:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Comment:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Operator: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Generic:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		colorEnabled: true,
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Code:           plain,
		Mention:        plain,
		SelfMention:    plain,
		Keyword:        plain,
		Name:           plain,
		Literal:        plain,
		Comment:        plain,
		Operator:       plain,
		Generic:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TableLegend:    plain,
		Dim:            plain,
	}
}

// ForHighlight returns the style used to render a single annotation.
// Explicit text styles compose bold/italic/underline dynamically; the
// other kinds map to fixed styles.
func (s *Styles) ForHighlight(h richtext.Highlight) lipgloss.Style {
	switch h.Kind {
	case richtext.HighlightCode:
		return s.Code
	case richtext.HighlightSyntax:
		return s.forTokenCategory(highlight.TokenType(h.Syntax).Category())
	case richtext.HighlightMention:
		return s.Mention
	case richtext.HighlightSelfMention:
		return s.SelfMention
	case richtext.HighlightStyle:
		if !s.colorEnabled {
			return lipgloss.NewStyle()
		}
		style := lipgloss.NewStyle()
		if h.Style.Bold {
			style = style.Bold(true)
		}
		if h.Style.Italic {
			style = style.Italic(true)
		}
		if h.Style.Underline {
			style = style.Underline(true)
		}
		return style
	default:
		return lipgloss.NewStyle()
	}
}

// forTokenCategory maps a chroma token category to a style.
func (s *Styles) forTokenCategory(cat chroma.TokenType) lipgloss.Style {
	switch cat {
	case chroma.Keyword:
		return s.Keyword
	case chroma.Name:
		return s.Name
	case chroma.Literal, chroma.LiteralString, chroma.LiteralNumber:
		return s.Literal
	case chroma.Comment:
		return s.Comment
	case chroma.Operator, chroma.Punctuation:
		return s.Operator
	default:
		return s.Generic
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
