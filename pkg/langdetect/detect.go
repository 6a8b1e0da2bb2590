// Package langdetect guesses a programming language for code content.
// It backs the CLI's "auto" default-language mode for code blocks that
// carry no fence tag, using go-enry plus a few high-signal patterns.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const (
	langGo     = "go"
	langPython = "python"
	langJSON   = "json"
	langYAML   = "yaml"
	langSQL    = "sql"
	langBash   = "bash"
)

// classifierCandidates are the languages offered to the enry classifier.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON", "YAML",
}

// Detect returns a fence-tag style language name for the given content,
// or an empty string when nothing can be determined with confidence.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Fall back to the classifier; only trust high-confidence results.
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// detectByPattern checks a few patterns that identify a language outright.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	str := string(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return langGo
	case strings.Contains(str, "def ") && strings.Contains(str, "):"):
		return langPython
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)):
		return langJSON
	case sqlPrefix(str):
		return langSQL
	case yamlKeyCount(content) >= 2:
		return langYAML
	}
	return ""
}

func sqlPrefix(str string) bool {
	upper := strings.TrimSpace(strings.ToUpper(str))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// yamlKeyCount counts lines that look like top-level YAML mappings or list
// items, excluding lines that look like code.
func yamlKeyCount(content []byte) int {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count
}

// normalize converts enry language names to the fence tags chroma resolves.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
