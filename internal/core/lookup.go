package core

import "github.com/jmylchreest/flavours/internal/model"

// Effective keeps only the first resource of each name. Given resolution
// order, that is the config-root copy of anything overridden.
func Effective(resources []model.Resource) []model.Resource {
	seen := make(map[string]bool)
	var result []model.Resource

	for _, r := range resources {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		result = append(result, r)
	}

	return result
}
