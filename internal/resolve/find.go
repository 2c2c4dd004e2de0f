package resolve

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindSchemes returns the scheme files under the config root whose name
// matches pattern. Both .yml and .yaml files match. Only the config root
// is searched.
func FindSchemes(pattern, configRoot string) ([]string, error) {
	return expandAll(Roots{Config: configRoot}.SearchDirs(KindScheme), schemeGlob(pattern))
}

// FindTemplates returns the template files matching pattern in the config
// root followed by those in the data root. A template present in both
// roots is returned twice.
func FindTemplates(pattern, dataRoot, configRoot string) ([]string, error) {
	roots := Roots{Config: configRoot, Data: dataRoot}
	return expandAll(roots.SearchDirs(KindTemplate), NormalizeTemplatePattern(pattern))
}

// FindTemplate returns the single file for family and subtemplate,
// preferring the config root. Both names are literal path segments.
func FindTemplate(family, subtemplate, dataRoot, configRoot string) (string, error) {
	roots := Roots{Config: configRoot, Data: dataRoot}
	candidates := TemplateCandidates(roots, family, subtemplate)
	for _, path := range candidates {
		if isFile(path) {
			return path, nil
		}
	}
	return "", &NotFoundError{Family: family, Subtemplate: subtemplate, Candidates: candidates}
}

// TemplateCandidates returns the paths FindTemplate checks, in order.
func TemplateCandidates(roots Roots, family, subtemplate string) []string {
	dirs := roots.SearchDirs(KindTemplate)
	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, filepath.Join(dir.Path, family, "templates", subtemplate+templateExt))
	}
	return paths
}

func schemeGlob(pattern string) string {
	return fmt.Sprintf("*/%s.y*ml", pattern)
}

func expandAll(dirs []SearchDir, pattern string) ([]string, error) {
	var found []string
	for _, dir := range dirs {
		matches, err := Expand(dir.Path, pattern)
		if err != nil {
			return nil, err
		}
		found = append(found, matches...)
	}
	return found, nil
}

// isFile reports whether path is a regular file. Stat failures of any
// kind count as absent.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
