package bst

import (
	"cmp"
	"log"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/v2/utils"
	"github.com/scottcagno/bstmap"
)

var _ bstmap.Map[int, string] = (*OrderedMap[int, string])(nil)

// OrderedMap is a map backed by an unbalanced binary search tree. Keys
// are ordered (and considered equal) solely by the comparator supplied
// at construction. It is not safe for concurrent use.
type OrderedMap[K, V any] struct {
	root    *node[K, V]
	count   int
	compare utils.Comparator[K]
}

// New returns an empty map ordered by compare. It panics if compare is nil.
func New[K, V any](compare utils.Comparator[K]) *OrderedMap[K, V] {
	if compare == nil {
		log.Panicln(ErrNilComparator)
	}
	return &OrderedMap[K, V]{
		compare: compare,
	}
}

// NewOrdered returns an empty map ordered by cmp.Compare.
func NewOrdered[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return New[K, V](cmp.Compare[K])
}

// Size returns the number of entries in the map
func (m *OrderedMap[K, V]) Size() int {
	return m.count
}

// IsEmpty reports whether the map holds no entries
func (m *OrderedMap[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Get returns the value stored for key (if it exists)
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if m.root == nil {
		return *new(V), false
	}
	n := m.search(key)
	if n == nil {
		return *new(V), false
	}
	return n.value, true
}

// Put inserts or replaces the value for the given key. When the key was
// already present the previous value is returned along with true and the
// size of the map does not change.
func (m *OrderedMap[K, V]) Put(key K, value V) (V, bool) {
	if m.root == nil {
		m.root = newNode(key, value)
		m.count++
		return *new(V), false
	}
	x := m.root
	for {
		c := m.compare(key, x.key)
		if c == 0 {
			prev := x.value
			x.value = value
			return prev, true
		}
		if c < 0 {
			if x.left == nil {
				x.setLeft(newNode(key, value))
				m.count++
				return *new(V), false
			}
			x = x.left
		} else {
			if x.right == nil {
				x.setRight(newNode(key, value))
				m.count++
				return *new(V), false
			}
			x = x.right
		}
	}
}

// Remove deletes the entry for the given key and returns its value. If the
// key is not present the map is left untouched and false is returned.
func (m *OrderedMap[K, V]) Remove(key K) (V, bool) {
	if m.root == nil {
		return *new(V), false
	}
	n := m.search(key)
	if n == nil {
		return *new(V), false
	}
	value := n.value
	m.delete(n)
	return value, true
}

// ContainsKey reports whether key is present in the map
func (m *OrderedMap[K, V]) ContainsKey(key K) bool {
	if m.root == nil {
		return false
	}
	return m.search(key) != nil
}

// ContainsValue reports whether any entry holds a value deeply equal to
// value. There is no value index, so this scans every entry.
func (m *OrderedMap[K, V]) ContainsValue(value V) bool {
	return m.ContainsValueFunc(func(v V) bool {
		return reflect.DeepEqual(v, value)
	})
}

// ContainsValueFunc reports whether eq returns true for any stored value.
func (m *OrderedMap[K, V]) ContainsValueFunc(eq func(value V) bool) bool {
	if m.root == nil {
		return false
	}
	for _, n := range m.flatten() {
		if eq(n.value) {
			return true
		}
	}
	return false
}

// Keys returns a copy of every key in ascending order
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	for _, n := range m.flatten() {
		keys = append(keys, n.key)
	}
	return keys
}

// Values returns a copy of every value, in the same order as Keys
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, m.count)
	for _, n := range m.flatten() {
		values = append(values, n.value)
	}
	return values
}

// Range calls iter for every entry in ascending key order until iter
// returns false. The map must not be modified from inside iter.
func (m *OrderedMap[K, V]) Range(iter func(key K, value V) bool) {
	m.inorder(func(n *node[K, V]) bool {
		return iter(n.key, n.value)
	})
}

// Clear removes every entry from the map
func (m *OrderedMap[K, V]) Clear() {
	m.root = nil
	m.count = 0
}

// String renders every entry in ascending key order, for example
// "[  {key=1;value=a}  {key=2;value=b} ]". An empty map renders as "[ ]".
func (m *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, n := range m.flatten() {
		sb.WriteString(n.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// search descends from the root and returns the node whose key compares
// equal to key, or nil
func (m *OrderedMap[K, V]) search(key K) *node[K, V] {
	x := m.root
	for x != nil {
		c := m.compare(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}
