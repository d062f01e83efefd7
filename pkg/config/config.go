// Package config reads the table configuration from a directory
// containing either config.yaml or config.yml.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/graph-guard/hashtab/pkg/hashtab"
	"github.com/phuslu/log"
	yaml "gopkg.in/yaml.v3"
)

const ConfigFile1 = "config.yaml"
const ConfigFile2 = "config.yml"

const DefaultCapacity = 8
const DefaultKind = hashtab.KindInteger
const DefaultLogLevel = log.InfoLevel

type Config struct {
	Capacity int
	Kind     hashtab.Kind

	// MemoryLimit is the number of bytes a table may allocate,
	// 0 means unbounded.
	MemoryLimit uint64

	LogLevel log.Level
}

// Default returns the configuration used when no file sets a field.
func Default() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		Kind:     DefaultKind,
		LogLevel: DefaultLogLevel,
	}
}

// Allocator returns the allocator for MemoryLimit.
func (c *Config) Allocator() hashtab.Allocator {
	if c.MemoryLimit == 0 {
		return hashtab.Unbounded
	}
	limit := c.MemoryLimit
	if m := uint64(^uint(0) >> 1); limit > m {
		limit = m
	}
	return hashtab.NewBudget(int(limit))
}

type fileConfig struct {
	Capacity    *int   `yaml:"capacity"`
	Kind        string `yaml:"kind"`
	MemoryLimit string `yaml:"memory-limit"`
	LogLevel    string `yaml:"log-level"`
}

func ReadConfig(filesystem fs.FS, dirPath string) (*Config, error) {
	d, err := fs.ReadDir(filesystem, dirPath)
	if err != nil {
		return nil, fmt.Errorf("reading config directory: %w", err)
	}

	var path string
	for _, o := range d {
		if o.IsDir() {
			continue
		}
		if n := o.Name(); n == ConfigFile1 || n == ConfigFile2 {
			if path != "" {
				return nil, &ErrorConflict{Items: []string{
					filepath.Join(dirPath, ConfigFile1),
					filepath.Join(dirPath, ConfigFile2),
				}}
			}
			path = filepath.Join(dirPath, n)
		}
	}
	if path == "" {
		return nil, &ErrorMissing{
			FilePath: filepath.Join(dirPath, ConfigFile1),
		}
	}

	f, err := filesystem.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and leaves the defaults.
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ErrorIllegal{
			FilePath: path,
			Message:  err.Error(),
		}
	}
	return fc.apply(path)
}

func (fc *fileConfig) apply(path string) (*Config, error) {
	c := Default()

	if fc.Capacity != nil {
		if *fc.Capacity < 1 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "capacity",
				Message:  "must be at least 1, got " + strconv.Itoa(*fc.Capacity),
			}
		}
		c.Capacity = *fc.Capacity
	}

	if fc.Kind != "" {
		k, err := hashtab.ParseKind(fc.Kind)
		if err != nil {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "kind",
				Message:  err.Error(),
			}
		}
		c.Kind = k
	}

	if fc.MemoryLimit != "" {
		l, err := humanize.ParseBytes(fc.MemoryLimit)
		if err != nil {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "memory-limit",
				Message:  err.Error(),
			}
		}
		c.MemoryLimit = l
	}

	if fc.LogLevel != "" {
		l, ok := ParseLogLevel(fc.LogLevel)
		if !ok {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "log-level",
				Message:  fmt.Sprintf("unknown level %q", fc.LogLevel),
			}
		}
		c.LogLevel = l
	}

	return c, nil
}

// ParseLogLevel accepts debug, info, warn and error.
func ParseLogLevel(s string) (log.Level, bool) {
	switch s {
	case "debug":
		return log.DebugLevel, true
	case "info":
		return log.InfoLevel, true
	case "warn":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return 0, false
}

type ErrorConflict struct {
	Items []string
}

func (e ErrorConflict) Error() string {
	var b strings.Builder
	b.WriteString("conflict between: ")
	for i := range e.Items {
		b.WriteString(e.Items[i])
		if i+1 < len(e.Items) {
			b.WriteString(", ")
		}
	}
	return b.String()
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	b.WriteString("missing ")
	if e.Feature != "" {
		b.WriteString(e.Feature)
		b.WriteString(" in ")
	}
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.WriteString("illegal ")
	if e.Feature != "" {
		b.WriteString(e.Feature)
		b.WriteString(" in ")
	}
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
