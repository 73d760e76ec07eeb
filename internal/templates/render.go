package templates

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/claritypath/themedeck/internal/cssvars"
	"github.com/claritypath/themedeck/internal/theme"
)

// Data is what a template body sees.
type Data struct {
	Theme  theme.Theme
	Vars   []cssvars.Var     // styling environment, in canonical order
	Colors []cssvars.Var     // color roles by camelCase name
	Values map[string]string // template variables after defaults
}

// NewData builds template data for t from the styling environment vars.
func NewData(t theme.Theme, vars []cssvars.Var) Data {
	colors := make([]cssvars.Var, 0, 10)
	t.Colors.Each(func(name, value string) {
		colors = append(colors, cssvars.Var{Name: name, Value: value})
	})
	return Data{Theme: t, Vars: vars, Colors: colors}
}

// RenderTemplate renders tmpl with data and the user supplied values.
func RenderTemplate(tmpl *Template, data Data, values map[string]string) (string, error) {
	if tmpl == nil {
		return "", fmt.Errorf("template is required")
	}

	resolved := make(map[string]string, len(values)+len(tmpl.Variables))
	for key, value := range values {
		resolved[key] = value
	}
	for _, variable := range tmpl.Variables {
		if strings.TrimSpace(resolved[variable.Name]) != "" {
			continue
		}
		if variable.Default != "" {
			resolved[variable.Name] = variable.Default
			continue
		}
		if variable.Required {
			return "", fmt.Errorf("missing required variable %q", variable.Name)
		}
	}
	data.Values = resolved

	parsed, err := template.New(tmpl.Name).
		Funcs(funcs).
		Option("missingkey=zero").
		Parse(tmpl.Body)
	if err != nil {
		return "", fmt.Errorf("parse template %q: %w", tmpl.Name, err)
	}

	var out strings.Builder
	if err := parsed.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render template %q: %w", tmpl.Name, err)
	}
	return out.String(), nil
}

var funcs = template.FuncMap{
	"default": defaultValue,
	"kebab":   cssvars.Kebab,
	"bare":    func(property string) string { return strings.TrimPrefix(property, "--") },
	"envName": cssvars.EnvName,
}

func defaultValue(def string, value any) string {
	if value == nil {
		return def
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	default:
		text := strings.TrimSpace(fmt.Sprint(v))
		if text == "" {
			return def
		}
		return text
	}
}
