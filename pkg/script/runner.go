package script

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/graph-guard/hashtab/pkg/hashtab"
	"github.com/graph-guard/hashtab/pkg/statistics"
	"github.com/phuslu/log"
)

// Runner executes ops against a table writing one result line per op.
type Runner struct {
	table *hashtab.Dynamic
	log   log.Logger
	stats *statistics.TableSync
}

func NewRunner(
	table *hashtab.Dynamic,
	l log.Logger,
	stats *statistics.TableSync,
) *Runner {
	if stats == nil {
		stats = statistics.NewTableSync()
	}
	return &Runner{table: table, log: l, stats: stats}
}

func (r *Runner) Stats() *statistics.TableSync { return r.stats }

// Run executes ops in order. Failed operations are reported
// in the output and don't stop the run. The returned error
// is only ever an error writing to w.
func (r *Runner) Run(ops []Op, w io.Writer) error {
	for i := range ops {
		if _, err := io.WriteString(w, r.exec(&ops[i])+"\n"); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	return nil
}

func (r *Runner) exec(op *Op) string {
	r.log.Debug().
		Int("line", op.Line).
		Str("op", op.Type.String()).
		Str("key", op.Key).
		Msg("executing")

	switch op.Type {
	case OpInsert:
		return r.insert(op)
	case OpGet:
		v, ok := r.table.Get(op.Key)
		if !ok {
			r.stats.Miss()
			return "get " + strconv.Quote(op.Key) + ": not found"
		}
		return "get " + strconv.Quote(op.Key) + ": " + FormatValue(v)
	case OpDelete:
		return r.delete(op)
	case OpStats:
		return FormatStats(r.table.Stats())
	}
	return fmt.Sprintf("line %d: unknown operation %s", op.Line, op.Type)
}

func (r *Runner) insert(op *Op) string {
	prefix := "insert " + strconv.Quote(op.Key) + ": "
	if err := r.table.Kind().Check(op.Value); err != nil {
		r.log.Warn().Int("line", op.Line).Err(err).Msg("rejected")
		return prefix + "error: " + err.Error()
	}
	_, replaced := r.table.Get(op.Key)
	oldCap := r.table.Cap()
	if err := r.table.Insert(op.Key, op.Value); err != nil {
		return prefix + r.fail(op, err)
	}
	r.stats.Insert(replaced)
	r.resized(oldCap)
	if replaced {
		return prefix + "replaced"
	}
	return prefix + "ok"
}

func (r *Runner) delete(op *Op) string {
	prefix := "delete " + strconv.Quote(op.Key) + ": "
	oldCap := r.table.Cap()
	if err := r.table.Delete(op.Key); err != nil {
		if errors.Is(err, hashtab.ErrNotFound) {
			r.stats.Miss()
			return prefix + "not found"
		}
		return prefix + r.fail(op, err)
	}
	r.stats.Delete()
	r.resized(oldCap)
	return prefix + "ok"
}

func (r *Runner) fail(op *Op, err error) string {
	var e *hashtab.ErrorAllocation
	if errors.As(err, &e) {
		r.stats.AllocFailure()
		r.log.Warn().
			Int("line", op.Line).
			Int("requested", e.Requested).
			Int("available", e.Available).
			Msg("allocation failed")
	} else {
		r.log.Error().Int("line", op.Line).Err(err).Msg("failed")
	}
	return "error: " + err.Error()
}

func (r *Runner) resized(oldCap int) {
	if c := r.table.Cap(); c != oldCap {
		r.stats.Resize(oldCap, c)
		r.log.Info().Int("from", oldCap).Int("to", c).Msg("resized")
	}
}

// FormatValue quotes text values and prints integers as is.
func FormatValue(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case int:
		return strconv.Itoa(v)
	}
	return fmt.Sprintf("%v", v)
}

func FormatStats(s hashtab.Stats) string {
	return fmt.Sprintf(
		"stats: len=%d cap=%d used_slots=%d longest_chain=%d",
		s.Len, s.Cap, s.UsedSlots, s.LongestChain,
	)
}
