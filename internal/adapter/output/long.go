package output

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/jmylchreest/flavours/internal/model"
)

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Name   lipgloss.Style
	Config lipgloss.Style
	Data   lipgloss.Style
	Dim    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. The colour decision is
// made by the caller, so the renderer never inspects w itself.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles returns the output styles for w, plain when color is false.
func NewStyles(w io.Writer, color bool) Styles {
	r := NewRenderer(w, color)
	return Styles{
		Name:   r.NewStyle().Bold(true),
		Config: r.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Data:   r.NewStyle().Foreground(lipgloss.Color("12")), // Blue
		Dim:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// LongFormatter writes one resource per line with origin, size and age.
type LongFormatter struct {
	opts FormatterOptions
	now  func() time.Time
}

// NewLongFormatter creates a new long formatter.
func NewLongFormatter(opts FormatterOptions) *LongFormatter {
	return &LongFormatter{opts: opts, now: time.Now}
}

// Format writes resources in long form.
func (f *LongFormatter) Format(w io.Writer, resources []model.Resource) error {
	now := f.now()
	styles := NewStyles(w, f.opts.Color)
	for i := range resources {
		r := &resources[i]
		origin := styles.Data
		if r.Origin == "config" {
			origin = styles.Config
		}
		_, err := fmt.Fprintf(w, "%s %s %s %s %s\n",
			origin.Render(fmt.Sprintf("%-6s", r.Origin)),
			fmt.Sprintf("%8s", humanize.Bytes(uint64(max(r.Size, 0)))),
			fmt.Sprintf("%-14s", humanize.RelTime(r.ModTime, now, "ago", "from now")),
			styles.Name.Render(r.Name),
			styles.Dim.Render(r.Path),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
