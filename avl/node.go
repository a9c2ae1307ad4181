package avl

import "fmt"

// node is a single element of the tree. Children are owned exclusively by their
// parent; there are no parent pointers.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int // 1 for a leaf
	size   int // nodes in this subtree, including itself
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value, height: 1, size: 1}
}

// String returns a string representation of the node showing its value and cached metrics.
func (n *node[T]) String() string {
	return fmt.Sprintf("(%#v h=%d n=%d)", n.value, n.height, n.size)
}

// update recomputes the cached height and size from the children.
// Children must already be up to date.
func (n *node[T]) update() {
	n.height = 1 + max(height(n.left), height(n.right))
	n.size = 1 + size(n.left) + size(n.right)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func size[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.size
}

// balanceFactor is height(left) - height(right). Positive means left-heavy.
func balanceFactor[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return height(n.left) - height(n.right)
}
