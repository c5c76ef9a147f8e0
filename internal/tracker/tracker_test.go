package tracker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/scroll-portfolio/internal/section"
)

func sample(offset float64) section.Sample {
	return section.Sample{ScrollOffset: offset, ViewportHeight: 1000, DocumentHeight: 7000}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, section.Home, New().Current())
	assert.Equal(t, section.Experience, New(WithInitial(section.Experience)).Current())

	custom := New(WithSections([]section.Section{section.Projects, section.Contact}))
	assert.Equal(t, section.Projects, custom.Current())
}

func TestIdenticalSampleNotifiesOnce(t *testing.T) {
	t.Parallel()

	tr := New()
	var got []Update
	tr.Subscribe(func(u Update) { got = append(got, u) })

	first := tr.OnViewportChange(sample(3000))
	second := tr.OnViewportChange(sample(3000))

	require.Len(t, got, 1)
	assert.True(t, first.Changed)
	assert.False(t, second.Changed)
	assert.Equal(t, section.Skills, got[0].Section)
	assert.Equal(t, section.Home, got[0].Previous)
	assert.Equal(t, section.Skills, tr.Current())
}

func TestScrollWithinSectionIsSilent(t *testing.T) {
	t.Parallel()

	tr := New()
	calls := 0
	tr.Subscribe(func(Update) { calls++ })

	for offset := 0.0; offset < 1000; offset += 50 {
		u := tr.OnViewportChange(sample(offset))
		assert.Equal(t, section.Home, u.Section)
	}
	assert.Zero(t, calls)
	assert.Equal(t, 950.0, tr.Basis())
}

func TestScenario(t *testing.T) {
	t.Parallel()

	tr := New(WithInitial(section.Experience))
	var seen []section.Section
	tr.Subscribe(func(u Update) { seen = append(seen, u.Section) })

	u := tr.OnViewportChange(sample(0))
	assert.Equal(t, section.Home, u.Section)
	assert.Zero(t, u.Fraction)

	u = tr.OnViewportChange(sample(3000))
	assert.Equal(t, section.Skills, u.Section)
	assert.InDelta(t, 50.0, u.Progress, 1e-9)
	assert.Equal(t, 3000.0, u.ParallaxBasis)

	u = tr.OnViewportChange(sample(6000))
	assert.Equal(t, section.Contact, u.Section)
	assert.Equal(t, 100.0, u.Progress)

	assert.Equal(t, []section.Section{section.Home, section.Skills, section.Contact}, seen)
}

func TestNonScrollablePage(t *testing.T) {
	t.Parallel()

	tr := New(WithInitial(section.Contact))
	u := tr.OnViewportChange(section.Sample{ScrollOffset: 0, ViewportHeight: 800, DocumentHeight: 800})
	assert.Equal(t, section.Home, u.Section)
	assert.True(t, u.Changed)
	assert.Zero(t, u.Progress)
}

func TestObserversRunInOrderAndCancel(t *testing.T) {
	t.Parallel()

	tr := New()
	var order []string
	cancelA := tr.Subscribe(func(Update) { order = append(order, "a") })
	tr.Subscribe(func(Update) { order = append(order, "b") })

	tr.OnViewportChange(sample(1500))
	assert.Equal(t, []string{"a", "b"}, order)

	cancelA()
	cancelA()
	tr.OnViewportChange(sample(6000))
	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestObserverMaySubscribe(t *testing.T) {
	t.Parallel()

	tr := New()
	late := 0
	tr.Subscribe(func(Update) {
		tr.Subscribe(func(Update) { late++ })
	})

	tr.OnViewportChange(sample(1500))
	assert.Zero(t, late)
	tr.OnViewportChange(sample(6000))
	assert.Equal(t, 1, late)
}

func TestConcurrentSamples(t *testing.T) {
	t.Parallel()

	tr := New()
	var mu sync.Mutex
	changes := 0
	tr.Subscribe(func(Update) {
		mu.Lock()
		changes++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.OnViewportChange(sample(6000))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, changes)
	assert.Equal(t, section.Contact, tr.Current())
}

func TestLayers(t *testing.T) {
	t.Parallel()

	offsets := Layers(1000, DefaultLayers)
	assert.InDelta(t, 500.0, offsets["hero"], 1e-9)
	assert.InDelta(t, 100.0, offsets["hero-shape-a"], 1e-9)
	assert.InDelta(t, 300.0, offsets["about"], 1e-9)
	assert.Len(t, offsets, len(DefaultLayers))
	assert.Zero(t, Offset(0, 0.5))
}
