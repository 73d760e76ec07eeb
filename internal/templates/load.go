package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTemplate reads a single template from disk.
func LoadTemplate(path string) (*Template, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("template path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	tmpl.Source = path
	return tmpl, nil
}

// LoadTemplatesFromDir loads every *.yaml/*.yml template in dir. A missing
// directory yields no templates.
func LoadTemplatesFromDir(dir string) ([]*Template, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Template{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Template{}, nil
		}
		return nil, fmt.Errorf("read templates dir %s: %w", dir, err)
	}

	templates := make([]*Template, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		tmpl, err := LoadTemplate(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})

	return templates, nil
}

func parseTemplate(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, err
	}

	tmpl.Name = strings.TrimSpace(tmpl.Name)
	if tmpl.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if strings.TrimSpace(tmpl.Body) == "" {
		return nil, fmt.Errorf("template %q has an empty body", tmpl.Name)
	}

	seen := make(map[string]struct{}, len(tmpl.Variables))
	for i, variable := range tmpl.Variables {
		name := strings.TrimSpace(variable.Name)
		if name == "" {
			return nil, fmt.Errorf("template %q: variable %d has no name", tmpl.Name, i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("template %q: duplicate variable %q", tmpl.Name, name)
		}
		seen[name] = struct{}{}
		tmpl.Variables[i].Name = name
	}

	tmpl.Extension = strings.TrimPrefix(strings.TrimSpace(tmpl.Extension), ".")
	return &tmpl, nil
}
