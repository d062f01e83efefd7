package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/graph-guard/hashtab/pkg/cli"
	"github.com/graph-guard/hashtab/pkg/hashtab"
)

// fill inserts c.N random UUID keys. Text tables store the key
// as value too, integer tables store the insertion index.
func fill(w io.Writer, c cli.CommandFill) (ok bool) {
	conf := ReadConfig(w, c.ConfigDirPath)
	if conf == nil {
		return false
	}

	l := newLogger(conf.LogLevel)
	alloc := conf.Allocator()
	t, err := hashtab.NewDynamic(conf.Capacity, conf.Kind, alloc)
	if err != nil {
		fmt.Fprintf(w, "creating table: %s\n", err)
		return false
	}
	defer t.Destroy()

	resizes := 0
	for i := 0; i < c.N; i++ {
		k := uuid.NewString()
		var v any = i
		if conf.Kind == hashtab.KindText {
			v = k
		}
		oldCap := t.Cap()
		if err := t.Insert(k, v); err != nil {
			l.Warn().Err(err).Int("inserted", i).Msg("stopped filling")
			break
		}
		if t.Cap() != oldCap {
			resizes++
			l.Debug().Int("from", oldCap).Int("to", t.Cap()).Msg("resized")
		}
	}

	s := t.Stats()
	fmt.Fprintf(w, "keys:          %s\n", humanize.Comma(int64(s.Len)))
	fmt.Fprintf(w, "capacity:      %s\n", humanize.Comma(int64(s.Cap)))
	fmt.Fprintf(w, "load factor:   %.3f\n", float64(s.Len)/float64(s.Cap))
	fmt.Fprintf(w, "used slots:    %s\n", humanize.Comma(int64(s.UsedSlots)))
	fmt.Fprintf(w, "longest chain: %d\n", s.LongestChain)
	fmt.Fprintf(w, "resizes:       %d\n", resizes)
	if b, ok := alloc.(*hashtab.Budget); ok {
		fmt.Fprintf(w, "memory:        %s of %s\n",
			humanize.Bytes(uint64(b.Used())),
			humanize.Bytes(uint64(b.Limit())),
		)
	}
	return true
}
