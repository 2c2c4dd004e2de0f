package output

import (
	"io"
	"os"
)

// ResolveColorMode decides whether to colour output. mode is "never",
// "always" or "auto"; auto colours only terminals.
func ResolveColorMode(mode string, w io.Writer) bool {
	switch mode {
	case "never":
		return false
	case "always":
		return true
	default:
		return IsTTY(w)
	}
}

// IsTTY checks if a writer is a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
