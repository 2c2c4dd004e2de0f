package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/flavours/internal/model"
)

// FormatScheme writes a scheme's name, author, path and colours. With
// color enabled each colour gets a swatch rendered in that colour.
func FormatScheme(w io.Writer, s *model.Scheme, path string, color bool) error {
	r := NewRenderer(w, color)
	styles := NewStyles(w, color)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", styles.Name.Render(s.Name), s.Slug)
	if s.Author != "" {
		fmt.Fprintf(&sb, "by %s\n", s.Author)
	}
	fmt.Fprintf(&sb, "%s\n", styles.Dim.Render(path))

	for _, key := range model.BaseKeys {
		hex := s.Color(key)
		if color {
			swatch := r.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
			fmt.Fprintf(&sb, "%s %s %s\n", swatch, key, hex)
			continue
		}
		fmt.Fprintf(&sb, "%s %s\n", key, hex)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
