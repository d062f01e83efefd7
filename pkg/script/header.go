package script

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/graph-guard/hashtab/pkg/config"
	"github.com/graph-guard/hashtab/pkg/hashtab"
	yaml "gopkg.in/yaml.v3"
)

// Header is the optional YAML front matter of a script
// enclosed in "---" lines:
//
//	---
//	name: grow
//	capacity: 4
//	kind: integer
//	---
//	{"op":"insert","key":"x","value":1}
type Header struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
	Kind     string `yaml:"kind"`
}

var ErrExpectedDelimiter = errors.New("expected delimiter")

var delimiter = []byte("---")

// SplitHeader separates the front matter from the body.
// header is nil if s has no front matter.
func SplitHeader(s []byte) (header, body []byte, err error) {
	rest := skipBlankLines(s)
	if !bytes.HasPrefix(rest, delimiter) {
		return nil, s, nil
	}

	line, rest := cutLine(rest)
	if !isDelimiter(line) {
		return nil, s, ErrExpectedDelimiter
	}
	start := rest
	for len(rest) > 0 {
		line, after := cutLine(rest)
		if bytes.HasPrefix(line, delimiter) {
			if !isDelimiter(line) {
				return nil, s, ErrExpectedDelimiter
			}
			return start[:len(start)-len(rest)], after, nil
		}
		rest = after
	}
	return nil, s, ErrExpectedDelimiter
}

// ParseHeader decodes the front matter of s, if any,
// and returns the body following it.
func ParseHeader(s []byte) (h Header, body []byte, err error) {
	header, body, err := SplitHeader(s)
	if err != nil || header == nil {
		return h, body, err
	}
	d := yaml.NewDecoder(bytes.NewReader(header))
	d.KnownFields(true)
	if err := d.Decode(&h); err != nil {
		return Header{}, body, fmt.Errorf("decoding header: %w", err)
	}
	return h, body, nil
}

func cutLine(s []byte) (line, rest []byte) {
	if i := bytes.IndexByte(s, '\n'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, nil
}

func isDelimiter(line []byte) bool {
	return bytes.Equal(bytes.TrimRight(line, " \t\r"), delimiter)
}

func skipBlankLines(s []byte) []byte {
	for len(s) > 0 {
		line, rest := cutLine(s)
		if len(bytes.TrimLeft(line, " \t\r")) > 0 {
			return s
		}
		s = rest
	}
	return s
}

// Apply overrides the capacity and kind of c with those set in h.
func (h Header) Apply(c *config.Config) error {
	if h.Capacity < 0 {
		return fmt.Errorf("illegal header capacity: %d", h.Capacity)
	}
	if h.Capacity > 0 {
		c.Capacity = h.Capacity
	}
	if h.Kind != "" {
		k, err := hashtab.ParseKind(h.Kind)
		if err != nil {
			return fmt.Errorf("illegal header kind: %w", err)
		}
		c.Kind = k
	}
	return nil
}
