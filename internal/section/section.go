// Package section maps scroll position to the named page sections.
package section

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Section identifies one block of the page.
type Section string

const (
	Home       Section = "home"
	About      Section = "about"
	Experience Section = "experience"
	Skills     Section = "skills"
	Projects   Section = "projects"
	Contact    Section = "contact"
)

// Order is the top-to-bottom order of sections on the page.
var Order = []Section{Home, About, Experience, Skills, Projects, Contact}

// ErrInvalidSample is returned when viewport metrics are out of range.
var ErrInvalidSample = errors.New("invalid viewport sample")

// Sample is a single viewport measurement reported by the page.
type Sample struct {
	ScrollOffset   float64 `json:"scrollOffset"`
	ViewportHeight float64 `json:"viewportHeight"`
	DocumentHeight float64 `json:"documentHeight"`
}

// Validate checks that the sample describes a real viewport.
func (s Sample) Validate() error {
	switch {
	case math.IsNaN(s.ScrollOffset) || math.IsNaN(s.ViewportHeight) || math.IsNaN(s.DocumentHeight):
		return fmt.Errorf("%w: NaN metric", ErrInvalidSample)
	case s.ScrollOffset < 0:
		return fmt.Errorf("%w: scroll offset %v is negative", ErrInvalidSample, s.ScrollOffset)
	case s.ViewportHeight <= 0:
		return fmt.Errorf("%w: viewport height %v must be positive", ErrInvalidSample, s.ViewportHeight)
	case s.DocumentHeight < s.ViewportHeight:
		return fmt.Errorf("%w: document height %v is smaller than viewport %v", ErrInvalidSample, s.DocumentHeight, s.ViewportHeight)
	}
	return nil
}

// Fraction returns how far down the scrollable range the sample is, in [0,1].
// A page with nothing to scroll reports 0.
func Fraction(s Sample) float64 {
	scrollable := s.DocumentHeight - s.ViewportHeight
	if scrollable <= 0 || math.IsNaN(scrollable) {
		return 0
	}
	f := s.ScrollOffset / scrollable
	if math.IsNaN(f) {
		return 0
	}
	return clamp(f)
}

// Resolve returns the section whose equal-width bucket contains fraction.
// Values at or below 0 give the first section and values at or above 1 the last.
func Resolve(fraction float64, sections []Section) Section {
	n := len(sections)
	if n == 0 {
		return ""
	}
	if math.IsNaN(fraction) {
		fraction = 0
	}

	idx := int(math.Floor(clamp(fraction) * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sections[idx]
}

// Parse looks a name up in Order, ignoring case and surrounding space.
func Parse(name string) (Section, bool) {
	key := Section(strings.ToLower(strings.TrimSpace(name)))
	if Index(key) < 0 {
		return "", false
	}
	return key, true
}

// Index returns the position of s in Order, or -1.
func Index(s Section) int {
	for i, known := range Order {
		if known == s {
			return i
		}
	}
	return -1
}

// Title is the navigation label for s.
func (s Section) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
