package cssvars

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed css.tmpl
var templates embed.FS

// Output formats understood by Render.
const (
	FormatCSS  = "css"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatEnv  = "env"
)

// DefaultSelector scopes rendered CSS to the document root.
const DefaultSelector = ":root"

var cssTemplate = template.Must(template.ParseFS(templates, "css.tmpl"))

// RenderOptions controls rendering.
type RenderOptions struct {
	Format    string
	Selector  string // css only
	Comment   string // css only
	EnvPrefix string // env only
}

// Formats lists supported formats.
func Formats() []string {
	return []string{FormatCSS, FormatJSON, FormatYAML, FormatEnv}
}

// Render writes vars to w in the requested format.
func Render(w io.Writer, vars []Var, opts RenderOptions) error {
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatCSS:
		return RenderCSS(w, vars, opts.Selector, opts.Comment)
	case FormatJSON:
		return RenderJSON(w, vars)
	case FormatYAML:
		return RenderYAML(w, vars)
	case FormatEnv:
		return RenderEnv(w, vars, opts.EnvPrefix)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", opts.Format, strings.Join(Formats(), ", "))
	}
}

// RenderCSS writes a single rule block declaring every variable.
func RenderCSS(w io.Writer, vars []Var, selector, comment string) error {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}
	data := struct {
		Selector string
		Comment  string
		Vars     []Var
	}{
		Selector: selector,
		Comment:  strings.ReplaceAll(comment, "*/", "* /"),
		Vars:     vars,
	}
	if err := cssTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render css: %w", err)
	}
	return nil
}

// RenderJSON writes vars as a JSON object keyed by property name.
func RenderJSON(w io.Writer, vars []Var) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(orderedMap(vars)); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

// RenderYAML writes vars as a YAML mapping that preserves their order.
func RenderYAML(w io.Writer, vars []Var) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range vars {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: v.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v.Value, Style: yaml.DoubleQuotedStyle},
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}
	return enc.Close()
}

// RenderEnv writes vars as shell-style KEY="value" lines.
func RenderEnv(w io.Writer, vars []Var, prefix string) error {
	if prefix == "" {
		prefix = "THEMEDECK"
	}
	for _, v := range vars {
		if _, err := fmt.Fprintf(w, "%s=%q\n", EnvName(prefix, v.Name), v.Value); err != nil {
			return err
		}
	}
	return nil
}

// orderedMap marshals as a JSON object without reordering keys.
type orderedMap []Var

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(v.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.Value)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}
