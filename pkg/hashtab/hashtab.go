// Package hashtab provides a chained hash table mapping string keys
// to values of one declared kind, either text or integer.
//
// The table resizes itself keeping the load factor within [0.25, 0.75]:
// it doubles its capacity when an insert reaches 0.75 and halves it
// when a delete drops below 0.25. A resize replaces the table,
// so every mutating method returns the handle to continue with,
// similar to append:
//
//	t, err = t.Insert("x", 1)
//
// The previous handle is destroyed by a resize and panics when used.
// Failed calls return the unchanged table together with the error.
//
// Tables aren't safe for concurrent use.
package hashtab

import "strings"

type entry[V Value] struct {
	key   string
	value V
	next  *entry[V]
}

// Table is a chained hash table.
type Table[V Value] struct {
	slots     []*entry[V]
	load      int
	alloc     Allocator
	destroyed bool
}

// Stats describes the shape of a table.
type Stats struct {
	Len          int
	Cap          int
	UsedSlots    int
	LongestChain int
}

// New creates an empty table of the given capacity.
// A nil alloc is replaced by Unbounded.
func New[V Value](capacity int, alloc Allocator) (*Table[V], error) {
	if capacity < 1 {
		return nil, &ErrorCapacity{Capacity: capacity}
	}
	if alloc == nil {
		alloc = Unbounded
	}
	return newTable[V](capacity, alloc)
}

func newTable[V Value](capacity int, alloc Allocator) (*Table[V], error) {
	if capacity > MaxCapacity {
		return nil, &ErrorAllocation{
			Requested: int(^uint(0) >> 1),
			Available: slotsSize(MaxCapacity),
		}
	}
	if err := alloc.Alloc(slotsSize(capacity)); err != nil {
		return nil, err
	}
	return &Table[V]{
		slots: make([]*entry[V], capacity),
		alloc: alloc,
	}, nil
}

func (t *Table[V]) mustLive() {
	if t.destroyed {
		panic(ErrDestroyed)
	}
}

func (t *Table[V]) lookup(key string) *entry[V] {
	for e := t.slots[slotIndex(key, len(t.slots))]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// own returns a copy of value that shares no memory with the caller's.
func own[V Value](value V) V {
	if s, ok := any(value).(string); ok {
		return any(strings.Clone(s)).(V)
	}
	return value
}

// link pushes e as the new head of its chain.
func (t *Table[V]) link(e *entry[V]) {
	i := slotIndex(e.key, len(t.slots))
	e.next = t.slots[i]
	t.slots[i] = e
	t.load++
}

// Get returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
func (t *Table[V]) Get(key string) (value V, ok bool) {
	t.mustLive()
	if e := t.lookup(key); e != nil {
		return e.value, true
	}
	return value, false
}

// Insert associates key with value overwriting any existing association
// and returns the table to use from now on.
// On error the returned table is t, unchanged.
func (t *Table[V]) Insert(key string, value V) (*Table[V], error) {
	t.mustLive()
	if e := t.lookup(key); e != nil {
		// Replace, the entry keeps its position in the chain.
		if err := t.alloc.Alloc(valueSize(value)); err != nil {
			return t, err
		}
		t.alloc.Free(valueSize(e.value))
		e.value = own(value)
		return t, nil
	}

	size := entrySize(key, value)
	if err := t.alloc.Alloc(size); err != nil {
		return t, err
	}
	n := t
	if 4*(t.load+1) >= 3*len(t.slots) {
		var err error
		if n, err = newTable[V](len(t.slots)*2, t.alloc); err != nil {
			t.alloc.Free(size)
			return t, err
		}
		t.moveTo(n)
	}
	n.link(&entry[V]{key: strings.Clone(key), value: own(value)})
	return n, nil
}

// Delete removes key and returns the table to use from now on.
// Returns t and ErrNotFound if key doesn't exist.
// On error the returned table is t, unchanged.
func (t *Table[V]) Delete(key string) (*Table[V], error) {
	t.mustLive()
	i := slotIndex(key, len(t.slots))
	var prev *entry[V]
	e := t.slots[i]
	for ; e != nil; prev, e = e, e.next {
		if e.key == key {
			break
		}
	}
	if e == nil {
		return t, ErrNotFound
	}

	// The smaller table is allocated before anything is unlinked.
	var n *Table[V]
	if c := shrinkTarget(t.load-1, len(t.slots)); c < len(t.slots) {
		var err error
		if n, err = newTable[V](c, t.alloc); err != nil {
			return t, err
		}
	}

	if prev == nil {
		t.slots[i] = e.next
	} else {
		prev.next = e.next
	}
	e.next = nil
	t.load--
	t.alloc.Free(entrySize(e.key, e.value))

	if n == nil {
		return t, nil
	}
	t.moveTo(n)
	return n, nil
}

// Destroy releases all entries and the slot array.
// Destroying a destroyed table is a noop.
func (t *Table[V]) Destroy() {
	if t.destroyed {
		return
	}
	for i := range t.slots {
		for e := t.slots[i]; e != nil; e = e.next {
			t.alloc.Free(entrySize(e.key, e.value))
		}
		t.slots[i] = nil
	}
	t.alloc.Free(slotsSize(len(t.slots)))
	t.release()
}

// Len returns the number of stored keys.
func (t *Table[V]) Len() int {
	t.mustLive()
	return t.load
}

// Cap returns the number of slots.
func (t *Table[V]) Cap() int {
	t.mustLive()
	return len(t.slots)
}

// LoadFactor returns Len()/Cap().
func (t *Table[V]) LoadFactor() float64 {
	t.mustLive()
	return float64(t.load) / float64(len(t.slots))
}

// Kind returns the value kind of the table.
func (t *Table[V]) Kind() Kind { return KindOf[V]() }

// Stats walks all chains and returns the shape of the table.
func (t *Table[V]) Stats() Stats {
	t.mustLive()
	s := Stats{Len: t.load, Cap: len(t.slots)}
	for _, head := range t.slots {
		if head == nil {
			continue
		}
		s.UsedSlots++
		l := 0
		for e := head; e != nil; e = e.next {
			l++
		}
		if l > s.LongestChain {
			s.LongestChain = l
		}
	}
	return s
}
