package output

import (
	"encoding/json"
	"io"

	"github.com/angelhq/angelui/internal/journal"
)

// JSONFormatter formats entries as a JSON array.
type JSONFormatter struct{}

// Format writes entries as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, entries []journal.Entry) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}
