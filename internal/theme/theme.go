package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Zachkp/scroll-portfolio/internal/section"
)

// Record describes how the page looks while a section is active.
type Record struct {
	Primary           string `json:"primary"`
	Secondary         string `json:"secondary"`
	Background        string `json:"background"`
	Text              string `json:"text"`
	Accent            string `json:"accent"`
	Gradient          string `json:"gradient"`
	Particles         string `json:"particles"`
	Animation         string `json:"animation"`
	ParticleCount     string `json:"particleCount"`
	BackgroundPattern string `json:"backgroundPattern"`
	InteractionStyle  string `json:"interactionStyle"`
}

// DefaultSection is the entry returned for names outside the table.
const DefaultSection = section.Home

// base carries the palette shared by every section; sections differ in motion
// and background only.
var base = Record{
	Primary:    "#007ACC",
	Secondary:  "#0066cc",
	Background: "#ffffff",
	Text:       "#1d1d1f",
	Accent:     "#e6f3ff",
	Gradient:   "linear-gradient(135deg, #007ACC 0%, #0066cc 100%)",
	Particles:  "#007ACC20",
}

var records = map[section.Section]Record{
	section.Home:       with(base, "floating", "normal", "gradient", "hover-scale"),
	section.About:      with(base, "pulse", "dense", "dots", "hover-glow"),
	section.Experience: with(base, "vehicles", "traffic", "roads", "hover-drive"),
	section.Skills:     with(base, "rotate", "animated", "waves", "hover-bounce"),
	section.Projects:   with(base, "morph", "burst", "geometric", "hover-3d"),
	section.Contact:    with(base, "ripple", "flowing", "organic", "hover-magnetic"),
}

func with(r Record, animation, particleCount, pattern, interaction string) Record {
	r.Animation = animation
	r.ParticleCount = particleCount
	r.BackgroundPattern = pattern
	r.InteractionStyle = interaction
	return r
}

// Resolve returns the record for name. Unknown names get the home record.
func Resolve(name string) Record {
	if s, ok := section.Parse(name); ok {
		if r, ok := records[s]; ok {
			return r
		}
	}
	return records[DefaultSection]
}

// For is Resolve for an already-typed section.
func For(s section.Section) Record {
	return Resolve(string(s))
}

// Default returns the fallback record.
func Default() Record {
	return records[DefaultSection]
}

// All returns a copy of the table.
func All() map[section.Section]Record {
	out := make(map[section.Section]Record, len(records))
	for k, v := range records {
		out[k] = v
	}
	return out
}

// ShowsPattern reports whether the decorative background pattern is drawn
// for s. Skills and projects carry their own artwork.
func ShowsPattern(s section.Section) bool {
	return s != section.Skills && s != section.Projects
}

// CSSVars renders r as custom properties on :root.
func CSSVars(r Record) string {
	vars := map[string]string{
		"primary":            r.Primary,
		"secondary":          r.Secondary,
		"background":         r.Background,
		"text":               r.Text,
		"accent":             r.Accent,
		"gradient":           r.Gradient,
		"particles":          r.Particles,
		"animation":          r.Animation,
		"background-pattern": r.BackgroundPattern,
		"interaction-style":  r.InteractionStyle,
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  --%s: %s;\n", k, vars[k])
	}
	b.WriteString("}\n")
	return b.String()
}
