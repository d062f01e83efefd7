// Package decl attaches the file:line of its declaration to test data,
// so failures of table-driven cases point at the case itself.
package decl

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Declaration is data declared at Decl.
type Declaration[T any] struct {
	Decl string
	Data T
}

// New declares data at the caller's file:line.
func New[T any](data T) Declaration[T] {
	_, filename, line, _ := runtime.Caller(1)
	return Declaration[T]{
		Decl: fmt.Sprintf("%s:%d", filepath.Base(filename), line),
		Data: data,
	}
}

// Run calls fn as a subtest named after the declaration.
func Run[T any, R interface {
	Run(name string, fn func(R)) bool
}](r R, d Declaration[T], fn func(R, T)) bool {
	return r.Run(d.Decl, func(r R) { fn(r, d.Data) })
}
