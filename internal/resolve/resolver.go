package resolve

import "log/slog"

// Resolver binds a pair of roots and logs the lookups it performs.
type Resolver struct {
	roots  Roots
	logger *slog.Logger
}

// NewResolver creates a resolver over roots.
func NewResolver(roots Roots, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{roots: roots, logger: logger}
}

// Roots returns the roots the resolver searches.
func (r *Resolver) Roots() Roots {
	return r.roots
}

// Schemes finds scheme files matching any of patterns, in pattern order.
func (r *Resolver) Schemes(patterns ...string) ([]string, error) {
	var found []string
	for _, pattern := range patterns {
		matches, err := FindSchemes(pattern, r.roots.Config)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("expanded scheme pattern", "pattern", pattern, "matches", len(matches))
		found = append(found, matches...)
	}
	return found, nil
}

// Templates finds template files matching any of patterns, in pattern order.
func (r *Resolver) Templates(patterns ...string) ([]string, error) {
	var found []string
	for _, pattern := range patterns {
		shape, _, _ := ClassifyTemplatePattern(pattern)
		matches, err := FindTemplates(pattern, r.roots.Data, r.roots.Config)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("expanded template pattern",
			"pattern", pattern,
			"shape", shape,
			"normalized", NormalizeTemplatePattern(pattern),
			"matches", len(matches))
		found = append(found, matches...)
	}
	return found, nil
}

// Template resolves a single family/subtemplate pair.
func (r *Resolver) Template(family, subtemplate string) (string, error) {
	path, err := FindTemplate(family, subtemplate, r.roots.Data, r.roots.Config)
	if err != nil {
		return "", err
	}
	origin, _ := r.roots.OriginOf(KindTemplate, path)
	r.logger.Debug("resolved template", "family", family, "subtemplate", subtemplate, "origin", origin, "path", path)
	return path, nil
}
