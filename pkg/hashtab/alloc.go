package hashtab

import (
	"unsafe"

	"github.com/graph-guard/hashtab/pkg/math"
)

// Allocator accounts the memory a table holds.
// A table calls Alloc before it takes ownership of new memory
// and Free when it releases it.
type Allocator interface {
	Alloc(size int) error
	Free(size int)
}

const slotSize = int(unsafe.Sizeof(uintptr(0)))

// MaxCapacity is the largest slot count a table can be created or resized to.
const MaxCapacity = int(^uint(0)>>1) / slotSize

type unbounded struct{}

func (unbounded) Alloc(int) error { return nil }
func (unbounded) Free(int)        {}

// Unbounded never fails an allocation.
// It's used when New receives a nil Allocator.
var Unbounded Allocator = unbounded{}

// Budget is an Allocator with a fixed byte limit.
// It's not safe for concurrent use, share it only between
// tables owned by the same goroutine.
type Budget struct {
	limit, used int
}

// NewBudget creates a budget of limit bytes.
func NewBudget(limit int) *Budget {
	return &Budget{limit: math.Max(limit, 0)}
}

// Alloc reserves size bytes or returns *ErrorAllocation.
func (b *Budget) Alloc(size int) error {
	if size > b.Available() {
		return &ErrorAllocation{Requested: size, Available: b.Available()}
	}
	b.used += size
	return nil
}

// Free releases size bytes.
func (b *Budget) Free(size int) { b.used = math.Max(b.used-size, 0) }

// Used returns the number of reserved bytes.
func (b *Budget) Used() int { return b.used }

// Limit returns the byte limit.
func (b *Budget) Limit() int { return b.limit }

// Available returns the number of bytes left.
func (b *Budget) Available() int { return b.limit - b.used }

func slotsSize(capacity int) int { return capacity * slotSize }

func entrySize[V Value](key string, value V) int {
	return int(unsafe.Sizeof(entry[V]{})) + len(key) + valueSize(value)
}

// valueSize is the memory a value holds outside of its entry.
func valueSize[V Value](value V) int {
	if s, ok := any(value).(string); ok {
		return len(s)
	}
	return 0
}
