package theme

import "strings"

// PaletteID identifies one of the built-in color palettes.
type PaletteID string

const (
	PaletteCalmProfessional PaletteID = "calm-professional"
	PaletteModernWellness   PaletteID = "modern-wellness"
	PaletteWarmEarth        PaletteID = "warm-earth"
)

// Colors defines the ten semantic color roles of a palette.
type Colors struct {
	Primary       string `json:"primary" yaml:"primary"`
	Secondary     string `json:"secondary" yaml:"secondary"`
	Accent        string `json:"accent" yaml:"accent"`
	Background    string `json:"background" yaml:"background"`
	Surface       string `json:"surface" yaml:"surface"`
	TextPrimary   string `json:"textPrimary" yaml:"textPrimary"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary"`
	Success       string `json:"success" yaml:"success"`
	Warning       string `json:"warning" yaml:"warning"`
	Error         string `json:"error" yaml:"error"`
}

// Palette bundles a color set with its display metadata.
type Palette struct {
	ID          PaletteID
	Name        string
	ShortName   string
	Description string
	Colors      Colors
}

var paletteOrder = [...]PaletteID{
	PaletteCalmProfessional,
	PaletteModernWellness,
	PaletteWarmEarth,
}

var palettes = map[PaletteID]Palette{
	PaletteCalmProfessional: {
		ID:          PaletteCalmProfessional,
		Name:        "Calm Professional",
		ShortName:   "Healthcare",
		Description: "Trust & professionalism",
		Colors: Colors{
			Primary:       "#0D7377",
			Secondary:     "#7FB069",
			Accent:        "#E8AA42",
			Background:    "#FAFBFC",
			Surface:       "#F0F4F5",
			TextPrimary:   "#1A2B3C",
			TextSecondary: "#5A6978",
			Success:       "#22C55E",
			Warning:       "#F59E0B",
			Error:         "#EF4444",
		},
	},
	PaletteModernWellness: {
		ID:          PaletteModernWellness,
		Name:        "Modern Wellness",
		ShortName:   "Tech-Forward",
		Description: "Modern & calming",
		Colors: Colors{
			Primary:       "#4F46E5",
			Secondary:     "#A78BFA",
			Accent:        "#34D399",
			Background:    "#FEFEFE",
			Surface:       "#F5F3FF",
			TextPrimary:   "#1E1B4B",
			TextSecondary: "#6B7280",
			Success:       "#10B981",
			Warning:       "#FBBF24",
			Error:         "#F43F5E",
		},
	},
	PaletteWarmEarth: {
		ID:          PaletteWarmEarth,
		Name:        "Warm Earth Tones",
		ShortName:   "Approachable",
		Description: "Human-centered",
		Colors: Colors{
			Primary:       "#C2704B",
			Secondary:     "#2D5A4A",
			Accent:        "#D4A853",
			Background:    "#FDF9F6",
			Surface:       "#F5EDE4",
			TextPrimary:   "#2C1810",
			TextSecondary: "#6B5B4F",
			Success:       "#84CC16",
			Warning:       "#FB923C",
			Error:         "#DC2626",
		},
	},
}

// Palettes lists palette ids in display order.
func Palettes() []PaletteID {
	out := make([]PaletteID, len(paletteOrder))
	copy(out, paletteOrder[:])
	return out
}

// LookupPalette returns the palette for id.
func LookupPalette(id PaletteID) (Palette, bool) {
	p, ok := palettes[id]
	return p, ok
}

// ParsePalette normalizes user input into a known palette id.
func ParsePalette(value string) (PaletteID, error) {
	id := PaletteID(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := palettes[id]; !ok {
		return "", unknownPalette(id)
	}
	return id, nil
}

// Next returns the palette after id in display order, wrapping around.
func (id PaletteID) Next() PaletteID {
	return paletteOrder[(paletteIndex(id)+1)%len(paletteOrder)]
}

// Prev returns the palette before id in display order, wrapping around.
func (id PaletteID) Prev() PaletteID {
	n := len(paletteOrder)
	return paletteOrder[(paletteIndex(id)+n-1)%n]
}

func paletteIndex(id PaletteID) int {
	for i, candidate := range paletteOrder {
		if candidate == id {
			return i
		}
	}
	return 0
}

// Each calls fn for every color role in declaration order using its camelCase name.
func (c Colors) Each(fn func(name, value string)) {
	fn("primary", c.Primary)
	fn("secondary", c.Secondary)
	fn("accent", c.Accent)
	fn("background", c.Background)
	fn("surface", c.Surface)
	fn("textPrimary", c.TextPrimary)
	fn("textSecondary", c.TextSecondary)
	fn("success", c.Success)
	fn("warning", c.Warning)
	fn("error", c.Error)
}
