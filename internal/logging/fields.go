// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFlavor       = "flavor"
	FieldFormat       = "format"
	FieldCodeLanguage = "code_language"
	FieldColor        = "color"

	// Rendering statistics fields.
	FieldBytesIn  = "bytes_in"
	FieldTextLen  = "text_len"
	FieldSpans    = "spans"
	FieldLinks    = "links"
	FieldMentions = "mentions"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
