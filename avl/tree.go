package avl

import (
	"fmt"

	"github.com/amp-labs/sortedlist/assert"
	"github.com/amp-labs/sortedlist/errors"
	"github.com/amp-labs/sortedlist/optional"
	"github.com/amp-labs/sortedlist/sortable"
)

// NotFound is returned by IndexOf when no stored element equals the value.
const NotFound = -1

// Tree is an AVL tree augmented with subtree sizes. The zero value is an empty tree.
type Tree[T sortable.Sortable[T]] struct {
	root *node[T]
}

// New creates a new empty tree.
func New[T sortable.Sortable[T]]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of stored elements, counting duplicates.
// Time complexity: O(1).
func (t *Tree[T]) Len() int {
	return size(t.root)
}

// Height returns the height of the tree; 0 when empty.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Clear removes all elements.
func (t *Tree[T]) Clear() {
	t.root = nil
}

// Insert adds value to the tree. Values equal to an existing element are placed
// before it.
// Time complexity: O(log n).
func (t *Tree[T]) Insert(value T) {
	t.root = insert(t.root, value)
}

func insert[T sortable.Sortable[T]](n *node[T], value T) *node[T] {
	if n == nil {
		return newNode(value)
	}

	if sortable.Compare(value, n.value) <= 0 {
		n.left = insert(n.left, value)
	} else {
		n.right = insert(n.right, value)
	}

	n.update()

	return rebalance(n)
}

// Remove deletes one element equal to value and reports whether one was found.
// When several elements are equal, the one removed is whichever the search path
// reaches first; callers must not rely on which of them it is.
// Time complexity: O(log n).
func (t *Tree[T]) Remove(value T) bool {
	before := t.Len()
	t.root = remove(t.root, value)

	return t.Len() < before
}

func remove[T sortable.Sortable[T]](n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}

	switch cmp := sortable.Compare(value, n.value); {
	case cmp < 0:
		n.left = remove(n.left, value)
	case cmp > 0:
		n.right = remove(n.right, value)
	default:
		if n.left == nil {
			return n.right
		}

		if n.right == nil {
			return n.left
		}

		// Take over the in-order successor's value, then unlink the successor.
		successor := minimum(n.right)
		n.value = successor.value
		n.right = remove(n.right, successor.value)
	}

	n.update()

	return rebalance(n)
}

// minimum returns the leftmost node of a non-empty subtree.
func minimum[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func maximum[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// At returns the element at sorted position index.
// It returns errors.ErrIndexOutOfRange if index is outside [0, Len()).
// Time complexity: O(log n).
func (t *Tree[T]) At(index int) (T, error) {
	if index < 0 || index >= t.Len() {
		var zero T

		return zero, fmt.Errorf("%w: index %d, count %d", errors.ErrIndexOutOfRange, index, t.Len())
	}

	n := t.root

	for {
		leftSize := size(n.left)

		switch {
		case index < leftSize:
			n = n.left
		case index == leftSize:
			return n.value, nil
		default:
			index -= leftSize + 1
			n = n.right
		}
	}
}

// IndexOf returns the smallest position holding an element equal to value,
// or NotFound.
// Time complexity: O(log n).
func (t *Tree[T]) IndexOf(value T) int {
	return indexOf(t.root, value, 0)
}

// indexOf searches the subtree n whose first element sits at rank offset.
func indexOf[T sortable.Sortable[T]](n *node[T], value T, offset int) int {
	if n == nil {
		return NotFound
	}

	switch cmp := sortable.Compare(value, n.value); {
	case cmp < 0:
		return indexOf(n.left, value, offset)
	case cmp > 0:
		return indexOf(n.right, value, offset+size(n.left)+1)
	default:
		// An equal element may also live further left.
		if idx := indexOf(n.left, value, offset); idx != NotFound {
			return idx
		}

		return offset + size(n.left)
	}
}

// Contains reports whether an element equal to value is stored.
// Time complexity: O(log n).
func (t *Tree[T]) Contains(value T) bool {
	n := t.root

	for n != nil {
		switch cmp := sortable.Compare(value, n.value); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Min returns the smallest element, or None when the tree is empty.
func (t *Tree[T]) Min() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some(minimum(t.root).value)
}

// Max returns the largest element, or None when the tree is empty.
func (t *Tree[T]) Max() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some(maximum(t.root).value)
}

// rebalance restores the AVL property at n, whose children are balanced and
// whose cached metrics are current. It returns the new subtree root.
func rebalance[T any](n *node[T]) *node[T] {
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}

		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}

		return rotateLeft(n)
	default:
		return n
	}
}

// rotateRight promotes the left child of n:
//
//	    n          x
//	   / \        / \
//	  x   c  =>  a   n
//	 / \            / \
//	a   b          b   c
func rotateRight[T any](n *node[T]) *node[T] {
	x := n.left
	assert.NotNil(x, "rotateRight on %v without a left child", n)

	n.left = x.right
	x.right = n

	// n is now below x, so it must be refreshed first.
	n.update()
	x.update()

	return x
}

// rotateLeft promotes the right child of n:
//
//	  n              y
//	 / \            / \
//	a   y    =>    n   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft[T any](n *node[T]) *node[T] {
	y := n.right
	assert.NotNil(y, "rotateLeft on %v without a right child", n)

	n.right = y.left
	y.left = n

	n.update()
	y.update()

	return y
}
