package theme

import "sync"

// Registry is the precomputed set of every palette x style combination.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	ordered []Theme
	byID    map[string]int
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// NewRegistry resolves every built-in combination, palette-major.
func NewRegistry() *Registry {
	r := &Registry{
		ordered: make([]Theme, 0, len(paletteOrder)*len(styleOrder)),
		byID:    make(map[string]int, len(paletteOrder)*len(styleOrder)),
	}
	for _, p := range paletteOrder {
		for _, s := range styleOrder {
			t, err := Resolve(p, s)
			if err != nil {
				panic(err) // tables and order lists disagree
			}
			r.byID[t.ID] = len(r.ordered)
			r.ordered = append(r.ordered, t)
		}
	}
	return r
}

// DefaultRegistry returns the process-wide registry, built on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Get returns the theme with the given composite id.
func (r *Registry) Get(id string) (Theme, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Theme{}, false
	}
	return r.ordered[idx], true
}

// Lookup returns the theme for a pair.
func (r *Registry) Lookup(paletteID PaletteID, styleID StyleID) (Theme, bool) {
	return r.Get(ComposeID(paletteID, styleID))
}

// ByPalette returns every theme built from paletteID.
func (r *Registry) ByPalette(paletteID PaletteID) []Theme {
	return r.filter(func(t Theme) bool { return t.Palette == paletteID })
}

// ByStyle returns every theme built from styleID.
func (r *Registry) ByStyle(styleID StyleID) []Theme {
	return r.filter(func(t Theme) bool { return t.Style == styleID })
}

// All returns every theme in palette-major order.
func (r *Registry) All() []Theme {
	out := make([]Theme, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of themes.
func (r *Registry) Len() int {
	return len(r.ordered)
}

func (r *Registry) filter(keep func(Theme) bool) []Theme {
	var out []Theme
	for _, t := range r.ordered {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
