package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jmylchreest/flavours/internal/model"
)

// PlainFormatter writes every resource on a single space-separated line.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes resources separated by spaces.
func (f *PlainFormatter) Format(w io.Writer, resources []model.Resource) error {
	if len(resources) == 0 {
		return nil
	}
	parts := make([]string, len(resources))
	for i := range resources {
		parts[i] = label(&resources[i], f.opts)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

// LinesFormatter writes one resource per line.
type LinesFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewLinesFormatter creates a new lines formatter.
func NewLinesFormatter(opts FormatterOptions) *LinesFormatter {
	f := &LinesFormatter{opts: opts}

	// Parse custom template if provided
	if opts.Template != "" {
		tmpl, err := template.New("lines").Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes resources one per line.
func (f *LinesFormatter) Format(w io.Writer, resources []model.Resource) error {
	for i := range resources {
		r := &resources[i]
		if f.template != nil {
			var buf strings.Builder
			if err := f.template.Execute(&buf, r); err == nil {
				if _, err := fmt.Fprintln(w, buf.String()); err != nil {
					return err
				}
				continue
			}
		}
		if _, err := fmt.Fprintln(w, label(r, f.opts)); err != nil {
			return err
		}
	}
	return nil
}
