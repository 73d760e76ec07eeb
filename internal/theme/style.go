package theme

import "strings"

// StyleID identifies one of the built-in design styles.
type StyleID string

const (
	StyleCleanCard          StyleID = "clean-card"
	StyleSoftNeumorphic     StyleID = "soft-neumorphic"
	StyleMinimalistClinical StyleID = "minimalist-clinical"
)

// Radius holds the three corner rounding sizes.
type Radius struct {
	Small string `json:"sm" yaml:"sm"`
	Base  string `json:"base" yaml:"base"`
	Large string `json:"lg" yaml:"lg"`
}

// Shadow holds the base and elevated layered shadow descriptors.
type Shadow struct {
	Base     string `json:"base" yaml:"base"`
	Elevated string `json:"elevated" yaml:"elevated"`
}

// Weights is the numeric font weight scale.
type Weights struct {
	Normal   int `json:"normal" yaml:"normal"`
	Medium   int `json:"medium" yaml:"medium"`
	Semibold int `json:"semibold" yaml:"semibold"`
	Bold     int `json:"bold" yaml:"bold"`
}

// Design is the shape and typography half of a theme.
type Design struct {
	Radius     Radius  `json:"radius" yaml:"radius"`
	Shadow     Shadow  `json:"shadow" yaml:"shadow"`
	FontFamily string  `json:"fontFamily" yaml:"fontFamily"`
	Weights    Weights `json:"fontWeight" yaml:"fontWeight"`
}

// Style bundles a design with its display metadata.
type Style struct {
	ID          StyleID
	Name        string
	ShortName   string
	Description string
	Design      Design
}

var styleOrder = [...]StyleID{
	StyleCleanCard,
	StyleSoftNeumorphic,
	StyleMinimalistClinical,
}

var standardWeights = Weights{Normal: 400, Medium: 500, Semibold: 600, Bold: 700}

var styles = map[StyleID]Style{
	StyleCleanCard: {
		ID:          StyleCleanCard,
		Name:        "Clean Card-Based",
		ShortName:   "Clean",
		Description: "Rounded, subtle shadows",
		Design: Design{
			Radius: Radius{Small: "8px", Base: "12px", Large: "16px"},
			Shadow: Shadow{
				Base:     "0 2px 8px rgba(0,0,0,0.08)",
				Elevated: "0 4px 16px rgba(0,0,0,0.1)",
			},
			FontFamily: "'Inter', system-ui, sans-serif",
			Weights:    standardWeights,
		},
	},
	StyleSoftNeumorphic: {
		ID:          StyleSoftNeumorphic,
		Name:        "Soft Neumorphic",
		ShortName:   "Soft",
		Description: "Pillow-like, depth",
		Design: Design{
			Radius: Radius{Small: "12px", Base: "16px", Large: "20px"},
			Shadow: Shadow{
				Base:     "6px 6px 12px rgba(0,0,0,0.08), -6px -6px 12px rgba(255,255,255,0.9)",
				Elevated: "8px 8px 20px rgba(0,0,0,0.1), -8px -8px 20px rgba(255,255,255,0.95)",
			},
			FontFamily: "'Outfit', system-ui, sans-serif",
			Weights:    standardWeights,
		},
	},
	StyleMinimalistClinical: {
		ID:          StyleMinimalistClinical,
		Name:        "Minimalist Clinical",
		ShortName:   "Minimal",
		Description: "Sharp, content-first",
		Design: Design{
			Radius: Radius{Small: "2px", Base: "4px", Large: "6px"},
			Shadow: Shadow{
				Base:     "0 1px 3px rgba(0,0,0,0.06)",
				Elevated: "0 2px 6px rgba(0,0,0,0.08)",
			},
			FontFamily: "'DM Sans', system-ui, sans-serif",
			Weights:    standardWeights,
		},
	},
}

// Styles lists style ids in display order.
func Styles() []StyleID {
	out := make([]StyleID, len(styleOrder))
	copy(out, styleOrder[:])
	return out
}

// LookupStyle returns the style for id.
func LookupStyle(id StyleID) (Style, bool) {
	s, ok := styles[id]
	return s, ok
}

// ParseStyle normalizes user input into a known style id.
func ParseStyle(value string) (StyleID, error) {
	id := StyleID(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := styles[id]; !ok {
		return "", unknownStyle(id)
	}
	return id, nil
}

// Next returns the style after id in display order, wrapping around.
func (id StyleID) Next() StyleID {
	return styleOrder[(styleIndex(id)+1)%len(styleOrder)]
}

// Prev returns the style before id in display order, wrapping around.
func (id StyleID) Prev() StyleID {
	n := len(styleOrder)
	return styleOrder[(styleIndex(id)+n-1)%n]
}

func styleIndex(id StyleID) int {
	for i, candidate := range styleOrder {
		if candidate == id {
			return i
		}
	}
	return 0
}
