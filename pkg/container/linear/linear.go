// package linear provides a container.Mapper implementation
// backed by a slice and linear search for reference.
package linear

type pair[V any] struct {
	Key   string
	Value V
}

type Linear[V any] struct {
	d []pair[V]
}

func New[V any](capacity int) *Linear[V] {
	return &Linear[V]{
		d: make([]pair[V], 0, capacity),
	}
}

func (m *Linear[V]) Set(key string, value V) {
	for i := 0; i < len(m.d); i++ {
		if m.d[i].Key == key {
			m.d[i].Value = value
			return
		}
	}
	m.d = append(m.d, pair[V]{Key: key, Value: value})
}

func (m *Linear[V]) Delete(key string) {
	for i := 0; i < len(m.d); i++ {
		if m.d[i].Key == key {
			m.d[i] = m.d[len(m.d)-1]
			m.d = m.d[:len(m.d)-1]
			return
		}
	}
}

func (m *Linear[V]) Get(key string) (v V, ok bool) {
	for i := 0; i < len(m.d); i++ {
		if m.d[i].Key == key {
			return m.d[i].Value, true
		}
	}
	return v, false
}

func (m *Linear[V]) Reset() {
	m.d = m.d[:0]
}

func (m *Linear[V]) Len() int {
	return len(m.d)
}
