package hashtab

import "fmt"

// Value is the set of types a Table can store.
type Value interface{ string | int }

// Kind is the runtime tag of a Value type.
type Kind uint8

const (
	KindText Kind = iota
	KindInteger
)

// KindOf returns the kind of V.
func KindOf[V Value]() Kind {
	var zero V
	if _, ok := any(zero).(string); ok {
		return KindText
	}
	return KindInteger
}

// ParseKind parses "text" or "integer".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "text":
		return KindText, nil
	case "integer":
		return KindInteger, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Check returns *ErrorKindMismatch if the dynamic type of v
// isn't the Go type of kind k.
func (k Kind) Check(v any) error {
	switch v.(type) {
	case string:
		if k == KindText {
			return nil
		}
	case int:
		if k == KindInteger {
			return nil
		}
	}
	return &ErrorKindMismatch{Expected: k, Value: v}
}
