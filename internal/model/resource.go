// Package model defines the core data structures for flavours.
package model

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Kind is the kind of a resolved resource.
type Kind string

const (
	KindScheme   Kind = "scheme"
	KindTemplate Kind = "template"
)

// Resource is a resolved file on disk with the details callers display.
type Resource struct {
	Kind    Kind      `json:"kind"`
	Name    string    `json:"name"`
	Origin  string    `json:"origin,omitempty"` // config or data
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// NewResource describes the file at path. The file is stat'd but never
// opened.
func NewResource(kind Kind, path, origin string) (Resource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Resource{}, err
	}
	name := SchemeName(path)
	if kind == KindTemplate {
		name = TemplateRefFromPath(path).String()
	}
	return Resource{
		Kind:    kind,
		Name:    name,
		Origin:  origin,
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// SchemeName returns the logical name of a scheme file: its base name
// without the YAML extension.
func SchemeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
