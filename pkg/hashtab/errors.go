package hashtab

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned by Delete when the key doesn't exist.
	ErrNotFound = errors.New("key not found")

	// ErrDestroyed is the panic value of any call on a destroyed table,
	// including a handle that was replaced by a resize.
	ErrDestroyed = errors.New("use of destroyed table")
)

// ErrorAllocation is returned when an allocation would exceed
// the memory available to the table's Allocator.
type ErrorAllocation struct {
	Requested int
	Available int
}

func (e *ErrorAllocation) Error() string {
	var b strings.Builder
	b.WriteString("allocating ")
	b.WriteString(strconv.Itoa(e.Requested))
	b.WriteString(" bytes: ")
	b.WriteString(strconv.Itoa(e.Available))
	b.WriteString(" available")
	return b.String()
}

// ErrorCapacity is returned by New for capacities below 1.
type ErrorCapacity struct {
	Capacity int
}

func (e *ErrorCapacity) Error() string {
	return "illegal capacity " + strconv.Itoa(e.Capacity) + ": must be at least 1"
}

// ErrorKindMismatch is the panic value of a Dynamic insert
// with a value of the wrong kind.
type ErrorKindMismatch struct {
	Expected Kind
	Value    any
}

func (e *ErrorKindMismatch) Error() string {
	return fmt.Sprintf(
		"value of type %T doesn't match table kind %s",
		e.Value, e.Expected,
	)
}
