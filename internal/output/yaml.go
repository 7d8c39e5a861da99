package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/angelhq/angelui/internal/journal"
)

// YAMLFormatter formats entries as YAML.
type YAMLFormatter struct{}

// Format writes entries as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, entries []journal.Entry) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
