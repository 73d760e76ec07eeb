// Package templates loads and renders theme export templates: text/template
// bodies that turn a resolved theme into SCSS, Tailwind, TypeScript and similar
// formats.
package templates

// Template is a single export template.
type Template struct {
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description" json:"description"`
	Extension   string        `yaml:"extension" json:"extension"`
	Body        string        `yaml:"body" json:"-"`
	Variables   []TemplateVar `yaml:"variables,omitempty" json:"variables,omitempty"`
	Source      string        `yaml:"-" json:"source"` // file path or "builtin"
}

// TemplateVar describes a user-settable value referenced as .Values.<name>.
type TemplateVar struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
	Required    bool   `yaml:"required" json:"required"`
}
