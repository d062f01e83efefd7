package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/graph-guard/hashtab/pkg/cli"
	"github.com/graph-guard/hashtab/pkg/hashtab"
	"github.com/graph-guard/hashtab/pkg/script"
)

// execute runs the script of c reading it from stdin
// if no script file is given.
func execute(w io.Writer, stdin io.Reader, c cli.CommandExec) (ok bool) {
	conf := ReadConfig(w, c.ConfigDirPath)
	if conf == nil {
		return false
	}

	var src []byte
	var err error
	if c.ScriptPath == "" {
		src, err = io.ReadAll(stdin)
	} else {
		src, err = os.ReadFile(c.ScriptPath)
	}
	if err != nil {
		fmt.Fprintf(w, "reading script: %s\n", err)
		return false
	}

	h, body, err := script.ParseHeader(src)
	if err != nil {
		fmt.Fprintf(w, "parsing script header: %s\n", err)
		return false
	}
	if err := h.Apply(conf); err != nil {
		fmt.Fprintf(w, "applying script header: %s\n", err)
		return false
	}
	ops, err := script.Parse(bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(w, "parsing script: %s\n", err)
		return false
	}

	l := newLogger(conf.LogLevel)
	t, err := hashtab.NewDynamic(conf.Capacity, conf.Kind, conf.Allocator())
	if err != nil {
		fmt.Fprintf(w, "creating table: %s\n", err)
		return false
	}
	defer t.Destroy()

	l.Info().
		Str("script", h.Name).
		Int("capacity", conf.Capacity).
		Str("kind", conf.Kind.String()).
		Int("ops", len(ops)).
		Msg("running")

	r := script.NewRunner(t, l, nil)
	if err := r.Run(ops, w); err != nil {
		l.Error().Err(err).Msg("running script")
		return false
	}

	s := r.Stats()
	l.Info().
		Int64("inserts", s.GetInserts()).
		Int64("replaces", s.GetReplaces()).
		Int64("deletes", s.GetDeletes()).
		Int64("misses", s.GetMisses()).
		Int64("grows", s.GetGrows()).
		Int64("shrinks", s.GetShrinks()).
		Int64("alloc_failures", s.GetAllocFailures()).
		Msg("done")
	return true
}
