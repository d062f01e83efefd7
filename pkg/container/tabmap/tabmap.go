// package tabmap provides a container.Mapper implementation
// backed by hashtab.Table.
package tabmap

import "github.com/graph-guard/hashtab/pkg/hashtab"

// Tabmap keeps the current table handle across resizes.
// Set and Delete panic on allocation errors, which can't occur
// with hashtab.Unbounded for realistic sizes.
type Tabmap[V hashtab.Value] struct {
	capacity int
	t        *hashtab.Table[V]
}

// New panics if capacity < 1.
func New[V hashtab.Value](capacity int) *Tabmap[V] {
	m := &Tabmap[V]{capacity: capacity}
	m.Reset()
	return m
}

func (m *Tabmap[V]) Set(key string, value V) {
	var err error
	if m.t, err = m.t.Insert(key, value); err != nil {
		panic(err)
	}
}

func (m *Tabmap[V]) Delete(key string) {
	t, err := m.t.Delete(key)
	if err != nil && err != hashtab.ErrNotFound {
		panic(err)
	}
	m.t = t
}

func (m *Tabmap[V]) Get(key string) (v V, ok bool) {
	return m.t.Get(key)
}

func (m *Tabmap[V]) Reset() {
	if m.t != nil {
		m.t.Destroy()
	}
	t, err := hashtab.New[V](m.capacity, nil)
	if err != nil {
		panic(err)
	}
	m.t = t
}

func (m *Tabmap[V]) Len() int {
	return m.t.Len()
}

// Table returns the current table handle.
func (m *Tabmap[V]) Table() *hashtab.Table[V] { return m.t }
