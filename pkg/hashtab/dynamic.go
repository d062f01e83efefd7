package hashtab

import "fmt"

// Dynamic is a table whose value kind is chosen at runtime.
// Dynamic owns its table handle and replaces it after every
// mutating call, callers keep using the same *Dynamic.
type Dynamic struct {
	kind    Kind
	text    *Table[string]
	integer *Table[int]
}

type shape interface {
	Len() int
	Cap() int
	Stats() Stats
	Destroy()
}

// NewDynamic creates an empty table of the given capacity storing
// values of kind.
func NewDynamic(capacity int, kind Kind, alloc Allocator) (*Dynamic, error) {
	d := &Dynamic{kind: kind}
	var err error
	switch kind {
	case KindText:
		d.text, err = New[string](capacity, alloc)
	case KindInteger:
		d.integer, err = New[int](capacity, alloc)
	default:
		return nil, fmt.Errorf("unknown kind: %s", kind)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dynamic) table() shape {
	if d.kind == KindText {
		return d.text
	}
	return d.integer
}

// Kind returns the declared value kind.
func (d *Dynamic) Kind() Kind { return d.kind }

// Insert associates key with value.
// Panics with *ErrorKindMismatch if value isn't of the declared kind,
// use Kind().Check to validate untrusted values first.
func (d *Dynamic) Insert(key string, value any) (err error) {
	if err := d.kind.Check(value); err != nil {
		panic(err)
	}
	switch v := value.(type) {
	case string:
		d.text, err = d.text.Insert(key, v)
	case int:
		d.integer, err = d.integer.Insert(key, v)
	}
	return err
}

// Get returns (value, true) if key exists, otherwise returns (nil, false).
func (d *Dynamic) Get(key string) (any, bool) {
	if d.kind == KindText {
		if v, ok := d.text.Get(key); ok {
			return v, true
		}
		return nil, false
	}
	if v, ok := d.integer.Get(key); ok {
		return v, true
	}
	return nil, false
}

// Delete removes key, returns ErrNotFound if key doesn't exist.
func (d *Dynamic) Delete(key string) (err error) {
	if d.kind == KindText {
		d.text, err = d.text.Delete(key)
		return err
	}
	d.integer, err = d.integer.Delete(key)
	return err
}

func (d *Dynamic) Len() int     { return d.table().Len() }
func (d *Dynamic) Cap() int     { return d.table().Cap() }
func (d *Dynamic) Stats() Stats { return d.table().Stats() }

// Destroy releases the underlying table.
func (d *Dynamic) Destroy() { d.table().Destroy() }
