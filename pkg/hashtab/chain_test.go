package hashtab

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/graph-guard/hashtab/pkg/decl"
	"github.com/graph-guard/hashtab/pkg/testeq"
	"github.com/stretchr/testify/require"
	"github.com/yourbasic/bit"
)

// chainKeys returns the keys of the chain in slot i, head first.
func chainKeys[V Value](t *Table[V], i int) (keys []string) {
	for e := t.slots[i]; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

func snapshot[V Value](t *Table[V]) map[string]V {
	m := make(map[string]V, t.load)
	for i := range t.slots {
		for e := t.slots[i]; e != nil; e = e.next {
			m[e.key] = e.value
		}
	}
	return m
}

func TestChainOrder(t *testing.T) {
	tb, err := New[int](16, nil)
	require.NoError(t, err)
	for i, k := range []string{"AaAa", "AaBB", "BBAa", "BBBB"} {
		tb, err = tb.Insert(k, i)
		require.NoError(t, err)
	}
	require.Equal(t, []string{"BBBB", "BBAa", "AaBB", "AaAa"}, chainKeys(tb, 0))

	// Replacing keeps the position.
	tb, err = tb.Insert("AaBB", 42)
	require.NoError(t, err)
	require.Equal(t, []string{"BBBB", "BBAa", "AaBB", "AaAa"}, chainKeys(tb, 0))
	require.Equal(t, 4, tb.Len())
}

type DeleteCase struct {
	Delete []string
	Expect []string
}

func TestDeleteChainPositions(t *testing.T) {
	for _, td := range []decl.Declaration[DeleteCase]{
		decl.New(DeleteCase{
			Delete: []string{"BBBB"},
			Expect: []string{"BBAa", "AaBB", "AaAa"},
		}),
		decl.New(DeleteCase{
			Delete: []string{"BBAa"},
			Expect: []string{"BBBB", "AaBB", "AaAa"},
		}),
		decl.New(DeleteCase{
			Delete: []string{"AaAa"},
			Expect: []string{"BBBB", "BBAa", "AaBB"},
		}),
		decl.New(DeleteCase{
			Delete: []string{"BBBB", "AaAa", "AaBB"},
			Expect: []string{"BBAa"},
		}),
		decl.New(DeleteCase{
			Delete: []string{"AaBB", "BBAa", "BBBB", "AaAa"},
			Expect: nil,
		}),
	} {
		decl.Run(t, td, func(t *testing.T, c DeleteCase) {
			tb, err := New[int](16, nil)
			require.NoError(t, err)
			// Fillers in other slots keep the load factor
			// above the shrink threshold.
			for _, k := range []string{"f0", "f1", "f2", "f3"} {
				tb, err = tb.Insert(k, 0)
				require.NoError(t, err)
			}
			for i, k := range []string{"AaAa", "AaBB", "BBAa", "BBBB"} {
				tb, err = tb.Insert(k, i)
				require.NoError(t, err)
			}
			for _, k := range c.Delete {
				tb, err = tb.Delete(k)
				require.NoError(t, err)
			}
			require.Equal(t, 16, tb.Cap())
			require.Equal(t, c.Expect, chainKeys(tb, 0))
			for _, k := range c.Delete {
				_, ok := tb.Get(k)
				require.False(t, ok, k)
			}
			for i, k := range []string{"f0", "f1", "f2", "f3"} {
				require.Equal(t, []string{k}, chainKeys(tb, 10+i))
			}
		})
	}
}

func TestShrinkTarget(t *testing.T) {
	for _, td := range []struct {
		load, capacity, expect int
	}{
		{0, 16, 1},
		{1, 16, 4},
		{3, 16, 8},
		{4, 16, 16},
		{0, 1, 1},
		{1, 5, 2},
		{2, 8, 8},
	} {
		require.Equal(t, td.expect, shrinkTarget(td.load, td.capacity),
			"shrinkTarget(%d, %d)", td.load, td.capacity)
	}
}

func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	b := NewBudget(1 << 20)
	tb, err := New[string](1, b)
	require.NoError(t, err)
	model := map[string]string{}

	for i := 0; i < 4096; i++ {
		k := "k" + strconv.Itoa(r.Intn(256))
		switch r.Intn(3) {
		case 0, 1:
			v := strconv.Itoa(r.Int())
			tb, err = tb.Insert(k, v)
			require.NoError(t, err)
			model[k] = v
		case 2:
			tb, err = tb.Delete(k)
			if _, ok := model[k]; ok {
				require.NoError(t, err)
				delete(model, k)
			} else {
				require.ErrorIs(t, err, ErrNotFound)
			}
		}

		require.Equal(t, len(model), tb.load)
		if tb.load > 0 {
			require.LessOrEqual(t, 4*tb.load, 3*len(tb.slots))
			require.GreaterOrEqual(t, 4*tb.load, len(tb.slots))
		}

		seen := map[string]bool{}
		used := bit.New()
		for s := range tb.slots {
			for e := tb.slots[s]; e != nil; e = e.next {
				require.False(t, seen[e.key], "duplicate key %q", e.key)
				seen[e.key] = true
				require.Equal(t, s, slotIndex(e.key, len(tb.slots)))
				used.Add(s)
			}
		}
		require.Equal(t, used.Size(), tb.Stats().UsedSlots)
	}

	require.True(t, testeq.Maps(t, "key", model, snapshot(tb)))

	tb.Destroy()
	require.Zero(t, b.Used())
}
