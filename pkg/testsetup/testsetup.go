// Package testsetup provides the table scenarios shared by tests.
// Each scenario directory contains config.yaml, script.jsonl
// and expect.yaml.
package testsetup

import (
	"bytes"
	"embed"
	"io/fs"
	"path"

	"github.com/graph-guard/hashtab/pkg/config"
	"github.com/graph-guard/hashtab/pkg/script"
	yaml "gopkg.in/yaml.v3"
)

/* SPECIAL NOTE:                                     *\
\* Symlinks are not allowed in embedded filesystems! */

const (
	SetupNameGrow         = "grow"
	SetupNameShrink       = "shrink"
	SetupNameCollisions   = "collisions"
	SetupNameOutOfMemory  = "out_of_memory"
	SetupNameKindMismatch = "kind_mismatch"
)

//go:embed grow shrink collisions out_of_memory kind_mismatch
var fsSetups embed.FS

func Grow() Setup         { return read(fsSetups, SetupNameGrow) }
func Shrink() Setup       { return read(fsSetups, SetupNameShrink) }
func Collisions() Setup   { return read(fsSetups, SetupNameCollisions) }
func OutOfMemory() Setup  { return read(fsSetups, SetupNameOutOfMemory) }
func KindMismatch() Setup { return read(fsSetups, SetupNameKindMismatch) }

func ByName(name string) (s Setup, ok bool) {
	switch name {
	case SetupNameGrow,
		SetupNameShrink,
		SetupNameCollisions,
		SetupNameOutOfMemory,
		SetupNameKindMismatch:
		return read(fsSetups, name), true
	}
	return s, false
}

// All returns every scenario.
func All() []Setup {
	return []Setup{
		Grow(),
		Shrink(),
		Collisions(),
		OutOfMemory(),
		KindMismatch(),
	}
}

type Setup struct {
	Name   string
	Config *config.Config
	Header script.Header
	Ops    []script.Op
	Expect Expect
}

type Expect struct {
	Output        []string `yaml:"output"`
	Len           int      `yaml:"len"`
	Cap           int      `yaml:"cap"`
	Grows         int64    `yaml:"grows"`
	Shrinks       int64    `yaml:"shrinks"`
	AllocFailures int64    `yaml:"alloc-failures"`
}

func read(fsys fs.FS, root string) Setup {
	c, err := config.ReadConfig(fsys, root)
	if err != nil {
		panic(err)
	}

	src, err := fs.ReadFile(fsys, path.Join(root, "script.jsonl"))
	if err != nil {
		panic(err)
	}
	h, body, err := script.ParseHeader(src)
	if err != nil {
		panic(err)
	}
	if err := h.Apply(c); err != nil {
		panic(err)
	}
	ops, err := script.Parse(bytes.NewReader(body))
	if err != nil {
		panic(err)
	}

	f, err := fsys.Open(path.Join(root, "expect.yaml"))
	if err != nil {
		panic(err)
	}
	defer f.Close()
	var e Expect
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&e); err != nil {
		panic(err)
	}

	return Setup{
		Name:   root,
		Config: c,
		Header: h,
		Ops:    ops,
		Expect: e,
	}
}
