package resolve

import (
	"errors"
	"fmt"
)

var (
	// ErrGlobSyntax marks a glob expression that cannot be compiled.
	ErrGlobSyntax = errors.New("invalid glob pattern")
	// ErrEntryAccess marks a matched entry that could not be inspected.
	ErrEntryAccess = errors.New("cannot access entry")
	// ErrNotFound marks a template missing from both roots.
	ErrNotFound = errors.New("template not found")
)

// GlobSyntaxError reports a glob expression that failed to compile.
type GlobSyntaxError struct {
	Pattern string
	Err     error
}

func (e *GlobSyntaxError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

func (e *GlobSyntaxError) Unwrap() error { return e.Err }

func (e *GlobSyntaxError) Is(target error) bool { return target == ErrGlobSyntax }

// EntryAccessError reports a filesystem entry that could not be read or
// stat'd while expanding a glob.
type EntryAccessError struct {
	Path string
	Err  error
}

func (e *EntryAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *EntryAccessError) Unwrap() error { return e.Err }

func (e *EntryAccessError) Is(target error) bool { return target == ErrEntryAccess }

// NotFoundError reports that neither template candidate exists.
type NotFoundError struct {
	Family      string
	Subtemplate string
	Candidates  []string
}

func (e *NotFoundError) Error() string {
	if len(e.Candidates) == 2 {
		return fmt.Sprintf("neither %q nor %q exist", e.Candidates[0], e.Candidates[1])
	}
	return fmt.Sprintf("template %s/%s not found in %q", e.Family, e.Subtemplate, e.Candidates)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
