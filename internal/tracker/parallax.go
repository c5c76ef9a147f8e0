package tracker

// Layer is one decorative element that moves against the scroll.
type Layer struct {
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
}

// DefaultLayers are the parallax consumers on the page.
var DefaultLayers = []Layer{
	{Name: "hero", Coefficient: 0.5},
	{Name: "hero-shape-a", Coefficient: 0.1},
	{Name: "hero-shape-b", Coefficient: 0.15},
	{Name: "hero-image", Coefficient: 0.05},
	{Name: "about", Coefficient: 0.3},
	{Name: "about-shape", Coefficient: 0.06},
}

// Offset scales basis by a consumer's coefficient. The result is the upward
// translation in pixels.
func Offset(basis, coefficient float64) float64 {
	return basis * coefficient
}

// Layers maps every layer to its offset for basis.
func Layers(basis float64, layers []Layer) map[string]float64 {
	out := make(map[string]float64, len(layers))
	for _, l := range layers {
		out[l.Name] = Offset(basis, l.Coefficient)
	}
	return out
}
