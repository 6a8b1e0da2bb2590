package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/richmd/pkg/highlight"
	"github.com/yaklabco/richmd/pkg/richtext"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // RANGE, KIND, DETAIL, TEXT
	minRangeWidth    = 11
	minKindWidth     = 12
	minDetailWidth   = 14
	minTextWidth     = 20
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single annotation in the spans table.
type TableRow struct {
	Range  string
	Kind   string
	Detail string
	Text   string
}

// TableFormatter formats a document's annotations as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter. A non-positive
// termWidth falls back to a fixed default.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// TerminalWidth returns the width of the attached terminal, or 0 when
// stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// FormatSpans formats a document's annotations and link table.
func (t *TableFormatter) FormatSpans(doc *richtext.RichText) string {
	if doc == nil || len(doc.Spans) == 0 {
		return t.styles.Dim.Render(" no annotations") + "\n"
	}

	rows := collectRows(doc)
	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	if len(doc.LinkRanges) > 0 {
		builder.WriteString(t.formatLinks(doc, widths))
	}

	return builder.String()
}

// collectRows converts annotations into display rows.
func collectRows(doc *richtext.RichText) []TableRow {
	rows := make([]TableRow, 0, len(doc.Spans))
	for _, span := range doc.Spans {
		rows = append(rows, TableRow{
			Range:  fmt.Sprintf("%d..%d", span.Range.Start, span.Range.End),
			Kind:   span.Highlight.Kind.String(),
			Detail: detailFor(span.Highlight),
			Text:   excerpt(doc.Text, span.Range.Start, span.Range.End),
		})
	}
	return rows
}

// detailFor describes the variant-specific payload of an annotation.
func detailFor(h richtext.Highlight) string {
	switch h.Kind {
	case richtext.HighlightSyntax:
		return highlight.TokenType(h.Syntax).String()
	case richtext.HighlightStyle:
		var parts []string
		if h.Style.Bold {
			parts = append(parts, "bold")
		}
		if h.Style.Italic {
			parts = append(parts, "italic")
		}
		if h.Style.Underline {
			parts = append(parts, "underline")
		}
		return strings.Join(parts, "+")
	default:
		return ""
	}
}

// excerpt returns the annotated text with newlines made visible.
func excerpt(text string, start, end int) string {
	if start < 0 || end > len(text) || start >= end {
		return ""
	}
	return strings.ReplaceAll(text[start:end], "\n", "\\n")
}

// calculateColumnWidths determines optimal column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		rang:   minRangeWidth,
		kind:   minKindWidth,
		detail: minDetailWidth,
		text:   minTextWidth,
	}

	for _, row := range rows {
		if len(row.Range) > widths.rang {
			widths.rang = len(row.Range)
		}
		if len(row.Kind) > widths.kind {
			widths.kind = len(row.Kind)
		}
		if len(row.Detail) > widths.detail {
			widths.detail = len(row.Detail)
		}
		if len(row.Text) > widths.text {
			widths.text = len(row.Text)
		}
	}

	// Constrain to terminal width, squeezing the text column first.
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.text = max(minTextWidth, widths.text-excess)

		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.detail = max(minDetailWidth, widths.detail-excess)
		}
	}

	return widths
}

type columnWidths struct {
	rang   int
	kind   int
	detail int
	text   int
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.rang + widths.kind + widths.detail + widths.text +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		widths.rang, "RANGE",
		widths.kind, "KIND",
		widths.detail, "DETAIL",
		widths.text, "TEXT",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	sep := strings.Repeat(char, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	return fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		widths.rang, truncateString(row.Range, widths.rang),
		widths.kind, truncateString(row.Kind, widths.kind),
		widths.detail, truncateString(row.Detail, widths.detail),
		widths.text, truncateString(row.Text, widths.text),
	)
}

// formatLinks formats the link table beneath the spans table.
func (t *TableFormatter) formatLinks(doc *richtext.RichText, widths columnWidths) string {
	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(" LINKS"))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, lightSeparator))
	builder.WriteString("\n")

	for i, linkRange := range doc.LinkRanges {
		url := ""
		if i < len(doc.LinkURLs) {
			url = doc.LinkURLs[i]
		}
		builder.WriteString(fmt.Sprintf(" %-*s  %s\n",
			widths.rang, fmt.Sprintf("%d..%d", linkRange.Start, linkRange.End),
			truncateString(url, t.termWidth-widths.rang-tablePadding*2),
		))
	}

	return builder.String()
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
