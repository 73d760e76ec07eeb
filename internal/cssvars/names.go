// Package cssvars mirrors the active theme into a flat CSS custom property
// environment and renders that environment for external consumers.
package cssvars

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/claritypath/themedeck/internal/theme"
)

// Var is a single custom property.
type Var struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Kebab converts a camelCase logical name to kebab-case ("textPrimary" -> "text-primary").
func Kebab(logical string) string {
	var b strings.Builder
	b.Grow(len(logical) + 4)
	for i, r := range logical {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// VarName builds the custom property name for a logical attribute, optionally
// namespaced by group ("color", "textPrimary" -> "--color-text-primary").
func VarName(group, logical string) string {
	if group == "" {
		return "--" + Kebab(logical)
	}
	return "--" + Kebab(group) + "-" + Kebab(logical)
}

// Variables flattens t into the fixed, ordered custom property set.
func Variables(t theme.Theme) []Var {
	vars := make([]Var, 0, 24)

	t.Colors.Each(func(name, value string) {
		vars = append(vars, Var{Name: VarName("color", name), Value: value})
	})

	d := t.Design
	vars = append(vars,
		Var{Name: VarName("", "borderRadiusSm"), Value: d.Radius.Small},
		Var{Name: VarName("", "borderRadius"), Value: d.Radius.Base},
		Var{Name: VarName("", "borderRadiusLg"), Value: d.Radius.Large},
		Var{Name: VarName("", "shadow"), Value: d.Shadow.Base},
		Var{Name: VarName("", "shadowLg"), Value: d.Shadow.Elevated},
		Var{Name: VarName("", "fontFamily"), Value: d.FontFamily},
		Var{Name: VarName("fontWeight", "normal"), Value: strconv.Itoa(d.Weights.Normal)},
		Var{Name: VarName("fontWeight", "medium"), Value: strconv.Itoa(d.Weights.Medium)},
		Var{Name: VarName("fontWeight", "semibold"), Value: strconv.Itoa(d.Weights.Semibold)},
		Var{Name: VarName("fontWeight", "bold"), Value: strconv.Itoa(d.Weights.Bold)},
	)

	// Short aliases used by stylesheets that predate the color- namespace.
	vars = append(vars,
		Var{Name: VarName("bg", "primary"), Value: t.Colors.Background},
		Var{Name: VarName("bg", "surface"), Value: t.Colors.Surface},
		Var{Name: VarName("", "textPrimary"), Value: t.Colors.TextPrimary},
		Var{Name: VarName("", "textSecondary"), Value: t.Colors.TextSecondary},
	)

	return vars
}

// Keys returns every property name Variables can produce, in order.
func Keys() []string {
	vars := Variables(theme.Default())
	keys := make([]string, len(vars))
	for i, v := range vars {
		keys[i] = v.Name
	}
	return keys
}

// EnvName converts a property name into an environment variable name
// ("--color-primary" -> "THEMEDECK_COLOR_PRIMARY").
func EnvName(prefix, property string) string {
	name := strings.TrimPrefix(property, "--")
	name = strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}
