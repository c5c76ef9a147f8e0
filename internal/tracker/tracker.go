// Package tracker turns a stream of viewport samples into the active section.
package tracker

import (
	"sync"

	"github.com/Zachkp/scroll-portfolio/internal/section"
)

// Update is the result of processing one sample.
type Update struct {
	Section  section.Section `json:"section"`
	Previous section.Section `json:"previous"`
	Changed  bool            `json:"changed"`
	Fraction float64         `json:"fraction"`
	// Progress is Fraction as a percentage, for the progress bar.
	Progress float64 `json:"progress"`
	// ParallaxBasis is the raw scroll offset; consumers scale it themselves.
	ParallaxBasis float64 `json:"parallaxBasis"`
}

// Observer is called after the active section changes.
type Observer func(Update)

// State is the tracker-owned active section.
type State struct {
	Current section.Section
}

type subscriber struct {
	id int
	fn Observer
}

// Tracker owns State and notifies observers when the section changes.
type Tracker struct {
	mu        sync.Mutex
	sections  []section.Section
	state     State
	basis     float64
	nextID    int
	observers []subscriber
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithSections replaces the default section order.
func WithSections(sections []section.Section) Option {
	return func(t *Tracker) {
		if len(sections) > 0 {
			t.sections = append([]section.Section(nil), sections...)
		}
	}
}

// WithInitial sets the section reported before the first sample arrives.
func WithInitial(s section.Section) Option {
	return func(t *Tracker) {
		if s != "" {
			t.state.Current = s
		}
	}
}

// New returns a tracker starting on the first section unless WithInitial says otherwise.
func New(opts ...Option) *Tracker {
	t := &Tracker{sections: section.Order}
	for _, opt := range opts {
		opt(t)
	}
	if t.state.Current == "" {
		t.state.Current = t.sections[0]
	}
	return t
}

// Subscribe registers fn and returns a function that removes it.
func (t *Tracker) Subscribe(fn Observer) (cancel func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.observers = append(t.observers, subscriber{id: id, fn: fn})
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			for i, s := range t.observers {
				if s.id == id {
					t.observers = append(t.observers[:i:i], t.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// OnViewportChange processes one sample. Observers run synchronously, in
// subscription order, and only when the resolved section differs from the
// current one.
func (t *Tracker) OnViewportChange(sample section.Sample) Update {
	fraction := section.Fraction(sample)

	t.mu.Lock()
	resolved := section.Resolve(fraction, t.sections)
	u := Update{
		Section:       resolved,
		Previous:      t.state.Current,
		Changed:       resolved != t.state.Current,
		Fraction:      fraction,
		Progress:      fraction * 100,
		ParallaxBasis: sample.ScrollOffset,
	}
	t.basis = sample.ScrollOffset
	if !u.Changed {
		t.mu.Unlock()
		return u
	}
	t.state.Current = resolved
	observers := make([]Observer, len(t.observers))
	for i, s := range t.observers {
		observers[i] = s.fn
	}
	t.mu.Unlock()

	for _, fn := range observers {
		fn(u)
	}
	return u
}

// Current returns the active section.
func (t *Tracker) Current() section.Section {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Current
}

// Basis returns the scroll offset of the most recent sample.
func (t *Tracker) Basis() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.basis
}
