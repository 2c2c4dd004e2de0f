// Package store reads the small state files flavours keeps in the data
// root.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoCurrentScheme is returned when no scheme has been applied yet.
var ErrNoCurrentScheme = errors.New("no scheme has been applied yet")

// LastSchemePath returns the path of the file recording the last applied
// scheme.
func LastSchemePath(dataRoot string) string {
	return filepath.Join(dataRoot, "lastscheme")
}

// LoadLastScheme returns the name of the last applied scheme.
func LoadLastScheme(dataRoot string) (string, error) {
	data, err := os.ReadFile(LastSchemePath(dataRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCurrentScheme
		}
		return "", err
	}

	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", ErrNoCurrentScheme
	}
	return name, nil
}
