package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/flavours/internal/model"
)

// JSONFormatter formats resources as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes resources as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, resources []model.Resource) error {
	if resources == nil {
		resources = []model.Resource{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resources)
}

// FormatValue writes any value as indented JSON.
func FormatValue(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
