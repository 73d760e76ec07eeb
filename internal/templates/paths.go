package templates

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrTemplateNotFound is returned by Find.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateSearchPaths returns template directories in precedence order.
func TemplateSearchPaths(configDir string) []string {
	paths := make([]string, 0, 2)
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "templates"))
	}
	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "themedeck", "templates"))
	return paths
}

// LoadTemplatesFromSearchPaths loads user templates with first-hit precedence,
// then the builtins that were not shadowed.
func LoadTemplatesFromSearchPaths(configDir string) ([]*Template, error) {
	seen := make(map[string]*Template)
	order := make([]string, 0)

	add := func(list []*Template) {
		for _, tmpl := range list {
			if _, exists := seen[tmpl.Name]; exists {
				continue
			}
			seen[tmpl.Name] = tmpl
			order = append(order, tmpl.Name)
		}
	}

	for _, path := range TemplateSearchPaths(configDir) {
		list, err := LoadTemplatesFromDir(path)
		if err != nil {
			return nil, err
		}
		add(list)
	}

	builtins, err := LoadBuiltinTemplates()
	if err != nil {
		return nil, err
	}
	add(builtins)

	resolved := make([]*Template, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// Find returns the template called name from the search paths.
func Find(configDir, name string) (*Template, error) {
	list, err := LoadTemplatesFromSearchPaths(configDir)
	if err != nil {
		return nil, err
	}
	for _, tmpl := range list {
		if tmpl.Name == name {
			return tmpl, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
}
