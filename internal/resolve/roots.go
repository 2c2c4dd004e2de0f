package resolve

import (
	"path/filepath"
	"strings"
)

// Kind identifies a resource kind with its own search directories.
type Kind string

const (
	KindScheme   Kind = "scheme"
	KindTemplate Kind = "template"
)

// Origin names the root a search directory belongs to.
type Origin string

const (
	OriginConfig Origin = "config"
	OriginData   Origin = "data"
)

// Roots holds the two absolute directories resources are looked up in.
type Roots struct {
	Config string // user-writable overlay
	Data   string // shared install
}

// SearchDir is one directory searched for a resource kind.
type SearchDir struct {
	Origin Origin `json:"origin"`
	Path   string `json:"path"`
}

// searchTable lists, per kind, the directories searched and their order.
// Schemes only live in the config root.
var searchTable = map[Kind][]struct {
	origin Origin
	elems  []string
}{
	KindScheme: {
		{OriginConfig, []string{"schemes"}},
	},
	KindTemplate: {
		{OriginConfig, []string{"templates"}},
		{OriginData, []string{"base16", "templates"}},
	},
}

// SearchDirs returns the directories searched for kind, in precedence order.
func (r Roots) SearchDirs(kind Kind) []SearchDir {
	entries := searchTable[kind]
	dirs := make([]SearchDir, 0, len(entries))
	for _, e := range entries {
		root := r.Config
		if e.origin == OriginData {
			root = r.Data
		}
		dirs = append(dirs, SearchDir{
			Origin: e.origin,
			Path:   filepath.Join(append([]string{root}, e.elems...)...),
		})
	}
	return dirs
}

// OriginOf reports which search directory of kind contains path.
// Returns false if path is outside all of them.
func (r Roots) OriginOf(kind Kind, path string) (Origin, bool) {
	for _, dir := range r.SearchDirs(kind) {
		rel, err := filepath.Rel(dir.Path, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return dir.Origin, true
	}
	return "", false
}
