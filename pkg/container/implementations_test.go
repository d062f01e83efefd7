package container_test

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	godshash "github.com/emirpasic/gods/maps/hashmap"
	"github.com/google/btree"
	"github.com/graph-guard/hashtab/pkg/container"
	"github.com/graph-guard/hashtab/pkg/container/gomap"
	"github.com/graph-guard/hashtab/pkg/container/linear"
	"github.com/graph-guard/hashtab/pkg/container/tabmap"
	"github.com/petar/GoLLRB/llrb"
)

var implementations = []struct {
	Name string
	Make func(capacity int) container.Mapper[int]
}{
	{"hashtab", func(capacity int) container.Mapper[int] {
		return tabmap.New[int](capacity)
	}},
	{"gomap", func(capacity int) container.Mapper[int] {
		return gomap.New[int](capacity)
	}},
	{"linear", func(capacity int) container.Mapper[int] {
		return linear.New[int](capacity)
	}},
	{"haxmap", func(capacity int) container.Mapper[int] {
		return newHaxmap(capacity)
	}},
	{"cornelk", func(capacity int) container.Mapper[int] {
		return newCornelk()
	}},
	{"gods", func(capacity int) container.Mapper[int] {
		return &godsMap{m: godshash.New()}
	}},
	{"btree", func(capacity int) container.Mapper[int] {
		return &btreeMap{t: btree.NewG(32, lessPair)}
	}},
	{"llrb", func(capacity int) container.Mapper[int] {
		return &llrbMap{t: llrb.New()}
	}},
}

type haxmapMap struct {
	capacity int
	m        *haxmap.Map[string, int]
}

func newHaxmap(capacity int) *haxmapMap {
	m := &haxmapMap{capacity: capacity}
	m.Reset()
	return m
}

func (m *haxmapMap) Set(key string, value int)  { m.m.Set(key, value) }
func (m *haxmapMap) Get(key string) (int, bool) { return m.m.Get(key) }
func (m *haxmapMap) Delete(key string)          { m.m.Del(key) }
func (m *haxmapMap) Len() int                   { return int(m.m.Len()) }
func (m *haxmapMap) Reset() {
	if m.capacity > 0 {
		m.m = haxmap.New[string, int](uintptr(m.capacity))
		return
	}
	m.m = haxmap.New[string, int]()
}

type cornelkMap struct{ m *hashmap.Map[string, int] }

func newCornelk() *cornelkMap { return &cornelkMap{m: hashmap.New[string, int]()} }

func (m *cornelkMap) Set(key string, value int)  { m.m.Set(key, value) }
func (m *cornelkMap) Get(key string) (int, bool) { return m.m.Get(key) }
func (m *cornelkMap) Delete(key string)          { m.m.Del(key) }
func (m *cornelkMap) Len() int                   { return m.m.Len() }
func (m *cornelkMap) Reset()                     { m.m = hashmap.New[string, int]() }

type godsMap struct{ m *godshash.Map }

func (m *godsMap) Set(key string, value int) { m.m.Put(key, value) }
func (m *godsMap) Delete(key string)         { m.m.Remove(key) }
func (m *godsMap) Len() int                  { return m.m.Size() }
func (m *godsMap) Reset()                    { m.m.Clear() }
func (m *godsMap) Get(key string) (int, bool) {
	v, ok := m.m.Get(key)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

type pair struct {
	Key   string
	Value int
}

func lessPair(a, b pair) bool { return a.Key < b.Key }

type btreeMap struct{ t *btree.BTreeG[pair] }

func (m *btreeMap) Set(key string, value int) { m.t.ReplaceOrInsert(pair{key, value}) }
func (m *btreeMap) Delete(key string)         { m.t.Delete(pair{Key: key}) }
func (m *btreeMap) Len() int                  { return m.t.Len() }
func (m *btreeMap) Reset()                    { m.t.Clear(false) }
func (m *btreeMap) Get(key string) (int, bool) {
	p, ok := m.t.Get(pair{Key: key})
	return p.Value, ok
}

type llrbItem pair

func (i llrbItem) Less(than llrb.Item) bool { return i.Key < than.(llrbItem).Key }

type llrbMap struct{ t *llrb.LLRB }

func (m *llrbMap) Set(key string, value int) { m.t.ReplaceOrInsert(llrbItem{key, value}) }
func (m *llrbMap) Delete(key string)         { m.t.Delete(llrbItem{Key: key}) }
func (m *llrbMap) Len() int                  { return m.t.Len() }
func (m *llrbMap) Reset()                    { m.t = llrb.New() }
func (m *llrbMap) Get(key string) (int, bool) {
	i := m.t.Get(llrbItem{Key: key})
	if i == nil {
		return 0, false
	}
	return i.(llrbItem).Value, true
}
