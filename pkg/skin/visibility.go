package skin

// LayerToggle holds the visibility flags of one part's two layers.
type LayerToggle struct {
	Base    bool
	Overlay bool
}

// Visibility maps each part to its layer toggles. Parts missing from the map
// default to fully visible.
type Visibility map[PartKey]LayerToggle

// DefaultVisibility returns a map with every part and layer visible.
func DefaultVisibility() Visibility {
	v := make(Visibility, len(Parts))
	for _, p := range Parts {
		v[p] = LayerToggle{Base: true, Overlay: true}
	}
	return v
}

// visible reports whether the given part/layer pair is visible. A nil map
// means everything is visible.
func (v Visibility) visible(p PartKey, l Layer) bool {
	t, ok := v[p]
	if !ok {
		return true
	}
	if l == LayerOverlay {
		return t.Overlay
	}
	return t.Base
}
