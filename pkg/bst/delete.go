package bst

// delete unlinks n from the tree. Whatever takes n's place is hung from
// n's old parent (or becomes the root) by exchange.
func (m *OrderedMap[K, V]) delete(n *node[K, V]) {
	switch {
	case n.isLeaf():
		// nothing to promote
		m.exchange(n, nil)
	case n.right == nil:
		// the left subtree moves up as a whole
		m.exchange(n, n.left)
	case n.right.left == nil:
		// the right child is the successor; it adopts n's left subtree
		r := n.right
		r.setLeft(n.left)
		m.exchange(n, r)
	default:
		// walk down to the in-order successor s, the leftmost node
		// under the right child, remembering its parent sp
		sp, s := n.right, n.right.left
		for s.left != nil {
			sp, s = s, s.left
		}
		// s has no left child; its right subtree takes its slot
		sp.setLeft(s.right)
		s.setLeft(n.left)
		s.setRight(n.right)
		m.exchange(n, s)
	}
	m.count--
	n.left, n.right, n.parent = nil, nil, nil
}

// exchange puts repl where n used to hang. repl may be nil.
func (m *OrderedMap[K, V]) exchange(n, repl *node[K, V]) {
	p := n.parent
	switch {
	case p == nil:
		m.root = repl
	case p.left == n:
		p.left = repl
	default:
		p.right = repl
	}
	if repl != nil {
		repl.parent = p
	}
}
