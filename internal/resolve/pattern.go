package resolve

import "strings"

const (
	templateExt    = ".mustache"
	templateSubdir = "templates/"
)

// PatternShape classifies a template pattern before expansion.
type PatternShape int

const (
	// ShapeNoSlash patterns have no family part and are used verbatim.
	ShapeNoSlash PatternShape = iota
	// ShapeShorthand patterns look like "family/sub".
	ShapeShorthand
	// ShapeQualified patterns already look like "family/templates/sub".
	ShapeQualified
	// ShapeRejected patterns have extra segments and are used verbatim.
	ShapeRejected
)

func (s PatternShape) String() string {
	switch s {
	case ShapeNoSlash:
		return "no-slash"
	case ShapeShorthand:
		return "shorthand"
	case ShapeQualified:
		return "qualified"
	case ShapeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ClassifyTemplatePattern reports the shape of pattern along with the
// family and subtemplate halves it splits into. head and tail are empty
// for ShapeNoSlash.
func ClassifyTemplatePattern(pattern string) (shape PatternShape, head, tail string) {
	trimmed := pattern
	for strings.HasSuffix(trimmed, templateExt) {
		trimmed = strings.TrimSuffix(trimmed, templateExt)
	}

	head, tail, found := strings.Cut(trimmed, "/")
	switch {
	case !found:
		return ShapeNoSlash, "", ""
	case !strings.Contains(tail, "/"):
		return ShapeShorthand, head, tail
	case strings.HasPrefix(tail, templateSubdir):
		return ShapeQualified, head, tail
	default:
		return ShapeRejected, head, tail
	}
}

// NormalizeTemplatePattern rewrites "family/sub" and
// "family/templates/sub" (with or without the .mustache extension) into
// "family/templates/sub.mustache". Any other pattern is returned unchanged.
func NormalizeTemplatePattern(pattern string) string {
	shape, head, tail := ClassifyTemplatePattern(pattern)
	switch shape {
	case ShapeShorthand, ShapeQualified:
		tail = strings.ReplaceAll(tail, templateSubdir, "")
		return head + "/" + templateSubdir + tail + templateExt
	default:
		return pattern
	}
}
