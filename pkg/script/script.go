// Package script parses and runs JSON-lines table operation scripts.
// Each non-empty line is one object:
//
//	{"op":"insert","key":"x","value":1}
//	{"op":"get","key":"x"}
//	{"op":"delete","key":"x"}
//	{"op":"stats"}
package script

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

type OpType uint8

const (
	_ OpType = iota
	OpInsert
	OpGet
	OpDelete
	OpStats
)

func (t OpType) String() string {
	switch t {
	case OpInsert:
		return "insert"
	case OpGet:
		return "get"
	case OpDelete:
		return "delete"
	case OpStats:
		return "stats"
	}
	return "OpType(" + strconv.Itoa(int(t)) + ")"
}

// Op is a single operation. Value is either a string or an int
// and is only set for OpInsert.
type Op struct {
	Line  int
	Type  OpType
	Key   string
	Value any
}

// Parse reads ops from r until EOF.
// Empty lines are skipped.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for line := 1; s.Scan(); line++ {
		l := strings.TrimSpace(s.Text())
		if l == "" {
			continue
		}
		op, err := parseLine(line, l)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// ParseString is Parse for in-memory scripts.
func ParseString(s string) ([]Op, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(line int, l string) (op Op, err error) {
	op.Line = line
	if !gjson.Valid(l) {
		return op, &ErrorIllegal{Line: line, Message: "invalid JSON"}
	}
	v := gjson.Parse(l)
	if !v.IsObject() {
		return op, &ErrorIllegal{Line: line, Message: "expected object"}
	}

	var fOp, fKey, fValue gjson.Result
	v.ForEach(func(key, value gjson.Result) bool {
		switch key.Str {
		case "op":
			fOp = value
		case "key":
			fKey = value
		case "value":
			fValue = value
		default:
			err = &ErrorIllegal{
				Line:    line,
				Feature: key.Str,
				Message: "unknown field",
			}
			return false
		}
		return true
	})
	if err != nil {
		return op, err
	}

	if !fOp.Exists() {
		return op, &ErrorIllegal{Line: line, Feature: "op", Message: "missing"}
	}
	if fOp.Type != gjson.String {
		return op, &ErrorIllegal{
			Line: line, Feature: "op", Message: "expected string",
		}
	}
	switch fOp.Str {
	case "insert":
		op.Type = OpInsert
	case "get":
		op.Type = OpGet
	case "delete":
		op.Type = OpDelete
	case "stats":
		op.Type = OpStats
	default:
		return op, &ErrorIllegal{
			Line:    line,
			Feature: "op",
			Message: "unknown operation " + strconv.Quote(fOp.Str),
		}
	}

	if op.Type == OpStats {
		if fKey.Exists() {
			return op, &ErrorIllegal{
				Line: line, Feature: "key", Message: "unexpected",
			}
		}
	} else {
		if !fKey.Exists() {
			return op, &ErrorIllegal{
				Line: line, Feature: "key", Message: "missing",
			}
		}
		if fKey.Type != gjson.String {
			return op, &ErrorIllegal{
				Line: line, Feature: "key", Message: "expected string",
			}
		}
		op.Key = fKey.Str
	}

	if op.Type != OpInsert {
		if fValue.Exists() {
			return op, &ErrorIllegal{
				Line: line, Feature: "value", Message: "unexpected",
			}
		}
		return op, nil
	}

	switch fValue.Type {
	case gjson.String:
		op.Value = fValue.Str
	case gjson.Number:
		i, err := strconv.Atoi(fValue.Raw)
		if err != nil {
			return op, &ErrorIllegal{
				Line:    line,
				Feature: "value",
				Message: "expected integer, got " + fValue.Raw,
			}
		}
		op.Value = i
	default:
		if !fValue.Exists() {
			return op, &ErrorIllegal{
				Line: line, Feature: "value", Message: "missing",
			}
		}
		return op, &ErrorIllegal{
			Line:    line,
			Feature: "value",
			Message: "expected string or integer, got " + fValue.Raw,
		}
	}
	return op, nil
}

type ErrorIllegal struct {
	Line    int
	Feature string
	Message string
}

func (e *ErrorIllegal) Error() string {
	var b strings.Builder
	b.WriteString("line ")
	b.WriteString(strconv.Itoa(e.Line))
	b.WriteString(": ")
	if e.Feature != "" {
		b.WriteString("illegal ")
		b.WriteString(e.Feature)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}
