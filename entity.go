package colorific

import "slices"

// Entity is anything managed by an EntityManager. Further behavior is opt-in
// through Ticker, Renderer and Layered.
type Entity interface {
	// Dead reports whether the entity should be removed on the next refresh.
	Dead() bool
}

// Ticker is an Entity with per-frame logic. dt is in seconds.
type Ticker interface {
	Tick(dt float64)
}

// Renderer is an Entity that draws itself.
type Renderer interface {
	Render(s Surface, dt float64)
}

// Layered is an Entity with an explicit render layer. Lower layers draw
// first. Entities that do not implement Layered draw beneath every layer.
type Layered interface {
	Layer() int
}

// EntityManager sequences tick, refresh and render calls over a set of
// entities. It never mutates entity state itself.
//
// Entities added during a frame are staged and only become live on the next
// Refresh, which runs their first Tick immediately so they can render in the
// same frame they were created.
type EntityManager struct {
	live   []Entity
	staged []Entity

	// render scratch
	layers  []int
	byLayer map[int][]Renderer
}

// NewEntityManager creates an empty manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{byLayer: make(map[int][]Renderer)}
}

// Add stages e. It is not visible to Tick or Render until the next Refresh.
func (m *EntityManager) Add(e Entity) {
	m.staged = append(m.staged, e)
}

// Refresh promotes staged entities, repeating while promotion stages more,
// and then removes every dead entity. Relative order is preserved.
func (m *EntityManager) Refresh(dt float64) {
	for len(m.staged) > 0 {
		batch := m.staged
		m.staged = nil
		for _, e := range batch {
			if e.Dead() {
				continue
			}
			m.live = append(m.live, e)
			if t, ok := e.(Ticker); ok {
				t.Tick(dt)
			}
		}
	}

	m.live = slices.DeleteFunc(m.live, func(e Entity) bool {
		return e.Dead()
	})
}

// Tick advances every live entity and then refreshes.
func (m *EntityManager) Tick(dt float64) {
	for _, e := range m.live {
		if t, ok := e.(Ticker); ok {
			t.Tick(dt)
		}
	}
	m.Refresh(dt)
}

// Render draws live, non-dead renderers. Unlayered entities go first in
// insertion order, then each layer in ascending order.
func (m *EntityManager) Render(s Surface, dt float64) {
	if m.byLayer == nil {
		m.byLayer = make(map[int][]Renderer)
	}
	m.layers = m.layers[:0]
	for _, e := range m.live {
		if e.Dead() {
			continue
		}
		r, ok := e.(Renderer)
		if !ok {
			continue
		}
		l, ok := e.(Layered)
		if !ok {
			r.Render(s, dt)
			continue
		}
		layer := l.Layer()
		list, seen := m.byLayer[layer]
		if !seen || len(list) == 0 {
			m.layers = append(m.layers, layer)
		}
		m.byLayer[layer] = append(list, r)
	}

	slices.Sort(m.layers)
	for _, layer := range m.layers {
		list := m.byLayer[layer]
		for _, r := range list {
			r.Render(s, dt)
		}
		clear(list)
		m.byLayer[layer] = list[:0]
	}
}

// Len returns the number of live entities.
func (m *EntityManager) Len() int {
	return len(m.live)
}

// Staged returns the number of entities waiting for the next Refresh.
func (m *EntityManager) Staged() int {
	return len(m.staged)
}

// Each calls fn for every live entity in insertion order.
func (m *EntityManager) Each(fn func(Entity)) {
	for _, e := range m.live {
		fn(e)
	}
}
