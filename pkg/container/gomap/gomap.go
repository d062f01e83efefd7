// package gomap provides a container.Mapper implementation
// backed by Go's native map for reference.
package gomap

type Gomap[V any] struct {
	capacity int
	m        map[string]V
}

func New[V any](capacity int) *Gomap[V] {
	return &Gomap[V]{
		capacity: capacity,
		m:        make(map[string]V, capacity),
	}
}

func (m *Gomap[V]) Set(key string, value V) {
	m.m[key] = value
}

func (m *Gomap[V]) Delete(key string) {
	delete(m.m, key)
}

func (m *Gomap[V]) Get(key string) (v V, ok bool) {
	v, ok = m.m[key]
	return v, ok
}

func (m *Gomap[V]) Reset() {
	m.m = make(map[string]V, m.capacity)
}

func (m *Gomap[V]) Len() int {
	return len(m.m)
}

// Map returns the underlying map.
func (m *Gomap[V]) Map() map[string]V { return m.m }
