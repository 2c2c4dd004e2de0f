// Package output provides output formatters for resolved resources.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/flavours/internal/model"
)

// Formatter formats resources for output.
type Formatter interface {
	// Format writes formatted resources to the writer.
	Format(w io.Writer, resources []model.Resource) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatLines FormatType = "lines"
	FormatLong  FormatType = "long"
	FormatJSON  FormatType = "json"
)

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template string // Custom text/template for the lines format
	ShowPath bool   // Print paths instead of names
	Color    bool   // Style output with ANSI colours
}

// ParseFormat parses a format name.
func ParseFormat(s string) (FormatType, error) {
	switch f := FormatType(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPlain, nil
	case FormatPlain, FormatLines, FormatLong, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want plain, lines, long or json)", s)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatLong:
		return NewLongFormatter(opts)
	case FormatLines:
		return NewLinesFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

func label(r *model.Resource, opts FormatterOptions) string {
	if opts.ShowPath {
		return r.Path
	}
	return r.Name
}
