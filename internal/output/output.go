// Package output provides output formatters for journal entries.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/angelhq/angelui/internal/journal"
)

// Formatter formats journal entries for output.
type Formatter interface {
	// Format writes formatted entries to the writer.
	Format(w io.Writer, entries []journal.Entry) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// ParseFormat resolves a --format flag value. Unknown values are an error.
func ParseFormat(s string) (FormatType, error) {
	switch FormatType(strings.ToLower(s)) {
	case FormatPlain:
		return FormatPlain, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected plain, json or yaml)", s)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatPlain:
		fallthrough
	default:
		return &PlainFormatter{}
	}
}
