// Package core provides sorting and lookup logic over resolved resources.
package core

import (
	"sort"
	"strings"

	"github.com/jmylchreest/flavours/internal/model"
)

// SortField represents a field to sort by.
type SortField string

const (
	SortByName    SortField = "name"
	SortByPath    SortField = "path"
	SortByModTime SortField = "modified"
)

// SortOrder represents ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortOptions specifies sorting criteria.
type SortOptions struct {
	Field SortField
	Order SortOrder
}

// DefaultSortOptions returns default sort options (by name, A to Z).
func DefaultSortOptions() SortOptions {
	return SortOptions{
		Field: SortByName,
		Order: SortAsc,
	}
}

// Sort sorts resources in place. Ties keep their resolution order, so a
// config-root entry stays ahead of the data-root entry of the same name.
func Sort(resources []model.Resource, opts SortOptions) {
	if len(resources) == 0 {
		return
	}

	sort.SliceStable(resources, func(i, j int) bool {
		a, b := resources[i], resources[j]
		var less bool

		switch opts.Field {
		case SortByPath:
			less = a.Path < b.Path
		case SortByModTime:
			less = a.ModTime.Before(b.ModTime)
		default:
			less = strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}

		if opts.Order == SortDesc {
			return !less && !equalKey(a, b, opts.Field)
		}
		return less
	})
}

func equalKey(a, b model.Resource, field SortField) bool {
	switch field {
	case SortByPath:
		return a.Path == b.Path
	case SortByModTime:
		return a.ModTime.Equal(b.ModTime)
	default:
		return strings.EqualFold(a.Name, b.Name)
	}
}

// ParseSortField parses a sort field string.
func ParseSortField(s string) SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path", "p":
		return SortByPath
	case "modified", "mtime", "time", "m":
		return SortByModTime
	default:
		return SortByName
	}
}

// ParseSortOrder parses a sort order string.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending", "d":
		return SortDesc
	default:
		return SortAsc
	}
}
