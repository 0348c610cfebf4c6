package bstmap

import "fmt"

// Map is the contract of an ordered map. Keys, Values and Range all
// present entries in ascending key order.
type Map[K, V any] interface {
	Size() int
	IsEmpty() bool
	Get(key K) (V, bool)
	Put(key K, value V) (V, bool)
	Remove(key K) (V, bool)
	ContainsKey(key K) bool
	ContainsValue(value V) bool
	Keys() []K
	Values() []V
	Range(iter func(key K, value V) bool)
	Clear()
	fmt.Stringer
}
