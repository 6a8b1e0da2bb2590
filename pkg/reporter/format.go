package reporter

// Format specifies the output format for rendered documents.
type Format string

const (
	// FormatText emits only the flattened text.
	FormatText Format = "text"

	// FormatANSI emits styled terminal text.
	FormatANSI Format = "ansi"

	// FormatJSON emits the document as structured JSON.
	FormatJSON Format = "json"

	// FormatSpans emits an annotation table for inspection.
	FormatSpans Format = "spans"
)

// IsValid returns true if the format is recognized.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatANSI, FormatJSON, FormatSpans:
		return true
	default:
		return false
	}
}
