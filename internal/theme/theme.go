// Package theme holds the built-in palette and style tables and resolves
// (palette, style) pairs into immutable Theme values.
//
// A Theme is a plain comparable value: two resolutions of the same pair are
// equal under ==, and callers replace a Theme wholesale rather than editing it.
//
//	t, err := theme.Resolve(theme.PaletteModernWellness, theme.StyleCleanCard)
//	if err != nil {
//		return err
//	}
//	fmt.Println(t.ID, t.Colors.Primary, t.Design.Radius.Base)
package theme

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultPalette = PaletteCalmProfessional
	DefaultStyle   = StyleCleanCard
)

var (
	// ErrUnknownPalette is returned when a palette id is outside the built-in set.
	ErrUnknownPalette = errors.New("unknown palette")
	// ErrUnknownStyle is returned when a style id is outside the built-in set.
	ErrUnknownStyle = errors.New("unknown style")
)

// Theme is the resolved combination of one palette and one style.
type Theme struct {
	ID      string    `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Palette PaletteID `json:"palette" yaml:"palette"`
	Style   StyleID   `json:"style" yaml:"style"`
	Colors  Colors    `json:"colors" yaml:"colors"`
	Design  Design    `json:"design" yaml:"design"`
}

// IsZero reports whether t was never resolved.
func (t Theme) IsZero() bool {
	return t.ID == ""
}

// Resolve combines a palette and a style into a Theme.
func Resolve(paletteID PaletteID, styleID StyleID) (Theme, error) {
	p, ok := palettes[paletteID]
	if !ok {
		return Theme{}, unknownPalette(paletteID)
	}
	s, ok := styles[styleID]
	if !ok {
		return Theme{}, unknownStyle(styleID)
	}

	return Theme{
		ID:      ComposeID(paletteID, styleID),
		Name:    titleCase(string(paletteID)) + " + " + titleCase(string(styleID)),
		Palette: paletteID,
		Style:   styleID,
		Colors:  p.Colors,
		Design:  s.Design,
	}, nil
}

// Default returns the baseline theme.
func Default() Theme {
	t, err := Resolve(DefaultPalette, DefaultStyle)
	if err != nil {
		panic(err) // built-in tables are broken
	}
	return t
}

// ResolveOrDefault resolves the pair, falling back to Default when either id is
// unknown. The bool reports whether the fallback was taken.
func ResolveOrDefault(paletteID PaletteID, styleID StyleID) (Theme, bool) {
	t, err := Resolve(paletteID, styleID)
	if err != nil {
		return Default(), true
	}
	return t, false
}

// ComposeID builds the composite theme id for a pair.
func ComposeID(paletteID PaletteID, styleID StyleID) string {
	return string(paletteID) + "-" + string(styleID)
}

func titleCase(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func unknownPalette(id PaletteID) error {
	return fmt.Errorf("%w: %q", ErrUnknownPalette, string(id))
}

func unknownStyle(id StyleID) error {
	return fmt.Errorf("%w: %q", ErrUnknownStyle, string(id))
}
