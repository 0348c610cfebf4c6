package bst

import "fmt"

// node is a single key value pair in the tree. The parent pointer
// is a back reference only; children are owned by their parent.
type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
	}
}

// setLeft links n as the left child and fixes its parent pointer
func (n *node[K, V]) setLeft(child *node[K, V]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

// setRight links n as the right child and fixes its parent pointer
func (n *node[K, V]) setRight(child *node[K, V]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[K, V]) String() string {
	return fmt.Sprintf(" {key=%v;value=%v} ", n.key, n.value)
}
