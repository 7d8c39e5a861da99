package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/angelhq/angelui/internal/journal"
)

// PlainFormatter formats entries as human-readable lines.
type PlainFormatter struct{}

// Format writes one line per entry, newest first ordering preserved.
func (f *PlainFormatter) Format(w io.Writer, entries []journal.Entry) error {
	for i, e := range entries {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("[%d] ", i+1))
		sb.WriteString(fmt.Sprintf("%s → %s", e.Previous, e.Theme))
		sb.WriteString(fmt.Sprintf(" (%s, %s)", e.Source, e.RelativeTime()))
		sb.WriteString("\n")

		if _, err := w.Write([]byte(sb.String())); err != nil {
			return err
		}
	}
	return nil
}
