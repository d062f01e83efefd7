// Package statistics provides synchronized thread-safe
// operation counters for tables.
package statistics

import "sync/atomic"

type TableSync struct {
	inserts       int64
	replaces      int64
	deletes       int64
	misses        int64
	grows         int64
	shrinks       int64
	allocFailures int64
}

func NewTableSync() *TableSync {
	return &TableSync{}
}

// Insert records an insert of a new key (replaced = false)
// or a replace of an existing one.
func (s *TableSync) Insert(replaced bool) {
	if replaced {
		atomic.AddInt64(&s.replaces, 1)
		return
	}
	atomic.AddInt64(&s.inserts, 1)
}

func (s *TableSync) Delete() { atomic.AddInt64(&s.deletes, 1) }

// Miss records a get or delete of an absent key.
func (s *TableSync) Miss() { atomic.AddInt64(&s.misses, 1) }

// Resize records a capacity change from oldCap to newCap.
// Equal capacities are ignored.
func (s *TableSync) Resize(oldCap, newCap int) {
	switch {
	case newCap > oldCap:
		atomic.AddInt64(&s.grows, 1)
	case newCap < oldCap:
		atomic.AddInt64(&s.shrinks, 1)
	}
}

func (s *TableSync) AllocFailure() { atomic.AddInt64(&s.allocFailures, 1) }

func (s *TableSync) GetInserts() int64 {
	return atomic.LoadInt64(&s.inserts)
}

func (s *TableSync) GetReplaces() int64 {
	return atomic.LoadInt64(&s.replaces)
}

func (s *TableSync) GetDeletes() int64 {
	return atomic.LoadInt64(&s.deletes)
}

func (s *TableSync) GetMisses() int64 {
	return atomic.LoadInt64(&s.misses)
}

func (s *TableSync) GetGrows() int64 {
	return atomic.LoadInt64(&s.grows)
}

func (s *TableSync) GetShrinks() int64 {
	return atomic.LoadInt64(&s.shrinks)
}

func (s *TableSync) GetAllocFailures() int64 {
	return atomic.LoadInt64(&s.allocFailures)
}
