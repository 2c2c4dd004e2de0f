package resolve

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// braceEscaper makes '{' and '}' literal; patterns have no alternation.
var braceEscaper = strings.NewReplacer("{", `\{`, "}", `\}`)

// Expand returns every existing path below root matching pattern. pattern
// is relative to root and '/'-separated; root itself is never read as a
// pattern. Entries within a directory come back in lexical order. "**"
// matches zero or more directories, so a trailing "**" also yields root.
//
// An invalid pattern yields a *GlobSyntaxError before any I/O happens. A
// directory that cannot be listed, or a match that cannot be stat'd (such
// as a dangling symlink), yields an *EntryAccessError and no partial
// results. A missing root simply has no matches.
func Expand(root, pattern string) ([]string, error) {
	glob := braceEscaper.Replace(strings.TrimLeft(filepath.ToSlash(pattern), "/"))
	if !doublestar.ValidatePattern(glob) {
		return nil, &GlobSyntaxError{Pattern: pattern, Err: doublestar.ErrBadPattern}
	}

	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &EntryAccessError{Path: root, Err: err}
	}

	matches, err := doublestar.Glob(os.DirFS(root), glob, doublestar.WithFailOnIOErrors())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, &GlobSyntaxError{Pattern: pattern, Err: err}
		}
		return nil, &EntryAccessError{Path: root, Err: err}
	}

	found := make([]string, 0, len(matches))
	for _, m := range matches {
		path := filepath.Join(root, filepath.FromSlash(m))
		if _, err := os.Stat(path); err != nil {
			return nil, &EntryAccessError{Path: path, Err: err}
		}
		found = append(found, path)
	}
	return found, nil
}
