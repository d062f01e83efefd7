// Package container defines the map interface shared by the reference
// implementations the hash table is tested and benchmarked against.
package container

type Mapper[V any] interface {
	Set(key string, value V)
	Get(key string) (v V, ok bool)
	Delete(key string)
	Reset()
	Len() int
}
