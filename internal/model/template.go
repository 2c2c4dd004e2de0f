package model

import (
	"errors"
	"path/filepath"
	"strings"
)

// TemplateExt is the extension of template files.
const TemplateExt = ".mustache"

// ErrInvalidTemplateRef is returned for a reference that does not name
// both a family and a subtemplate.
var ErrInvalidTemplateRef = errors.New("template reference must be family/subtemplate")

// TemplateRef identifies a template by family and subtemplate.
type TemplateRef struct {
	Family      string `json:"family"`
	Subtemplate string `json:"subtemplate"`
}

// String returns "family/subtemplate".
func (r TemplateRef) String() string {
	if r.Family == "" {
		return r.Subtemplate
	}
	return r.Family + "/" + r.Subtemplate
}

// ParseTemplateRef splits "family/subtemplate". A bare family selects the
// "default" subtemplate. "family/templates/sub" and a trailing .mustache
// are accepted too.
func ParseTemplateRef(s string) (TemplateRef, error) {
	s = strings.TrimSuffix(s, TemplateExt)
	family, sub, found := strings.Cut(s, "/")
	if !found {
		sub = "default"
	}
	sub = strings.TrimPrefix(sub, "templates/")
	if family == "" || sub == "" || strings.Contains(sub, "/") {
		return TemplateRef{}, ErrInvalidTemplateRef
	}
	return TemplateRef{Family: family, Subtemplate: sub}, nil
}

// TemplateRefFromPath recovers the reference of a file laid out as
// <family>/templates/<subtemplate>.mustache. Paths with another layout keep
// only their base name as the subtemplate.
func TemplateRefFromPath(path string) TemplateRef {
	sub := strings.TrimSuffix(filepath.Base(path), TemplateExt)
	dir := filepath.Dir(path)
	if filepath.Base(dir) != "templates" {
		return TemplateRef{Subtemplate: sub}
	}
	return TemplateRef{Family: filepath.Base(filepath.Dir(dir)), Subtemplate: sub}
}
