package hashtab

// moveTo relinks every entry of t into n, which must be empty,
// rehashing each key under the capacity of n. t is destroyed afterwards.
// moveTo doesn't allocate and can't fail.
func (t *Table[V]) moveTo(n *Table[V]) {
	for i := range t.slots {
		for e := t.slots[i]; e != nil; {
			next := e.next
			n.link(e)
			e = next
		}
		t.slots[i] = nil
	}
	t.alloc.Free(slotsSize(len(t.slots)))
	t.release()
}

func (t *Table[V]) release() {
	t.slots, t.load, t.destroyed = nil, 0, true
}

// shrinkTarget halves capacity until load/capacity >= 0.25
// or capacity reaches 1.
func shrinkTarget(load, capacity int) int {
	for capacity > 1 && 4*load < capacity {
		capacity /= 2
	}
	return capacity
}
