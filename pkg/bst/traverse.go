package bst

import "github.com/emirpasic/gods/v2/stacks/arraystack"

// inorder visits every node in ascending key order until visit returns
// false. It keeps its own stack so a degenerate tree (keys inserted in
// sorted order) cannot exhaust the goroutine stack.
func (m *OrderedMap[K, V]) inorder(visit func(n *node[K, V]) bool) {
	stack := arraystack.New[*node[K, V]]()
	x := m.root
	for x != nil || !stack.Empty() {
		for x != nil {
			stack.Push(x)
			x = x.left
		}
		x, _ = stack.Pop()
		if !visit(x) {
			return
		}
		x = x.right
	}
}

// flatten returns every node in ascending key order
func (m *OrderedMap[K, V]) flatten() []*node[K, V] {
	nodes := make([]*node[K, V], 0, m.count)
	m.inorder(func(n *node[K, V]) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
