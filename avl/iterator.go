package avl

import "iter"

// Iterator walks a tree in order using an explicit stack of pending ancestors.
// It holds live references into the tree, so the tree must not be modified
// while an Iterator is in use.
type Iterator[T any] struct {
	stack   []*node[T]
	reverse bool
}

func newIterator[T any](root *node[T], reverse bool) *Iterator[T] {
	it := &Iterator[T]{
		stack:   make([]*node[T], 0, height(root)),
		reverse: reverse,
	}

	it.descend(root)

	return it
}

// descend pushes n and its chain of nearest-first children.
func (it *Iterator[T]) descend(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)

		if it.reverse {
			n = n.right
		} else {
			n = n.left
		}
	}
}

// Next returns the next element and true, or the zero value and false once
// the walk is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	last := len(it.stack) - 1
	if last < 0 {
		var zero T

		return zero, false
	}

	n := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]

	if it.reverse {
		it.descend(n.left)
	} else {
		it.descend(n.right)
	}

	return n.value, true
}

// Iterator returns a new ascending iterator positioned before the smallest element.
func (t *Tree[T]) Iterator() *Iterator[T] {
	return newIterator(t.root, false)
}

// All returns a lazy ascending sequence of every element, duplicates included.
// Each range over the sequence starts a fresh walk of the tree's current state.
// This enables Go 1.23+ range-over-func syntax: for v := range tree.All() { ... }
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(newIterator(t.root, false), yield)
	}
}

// Backward returns a lazy descending sequence of every element.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(newIterator(t.root, true), yield)
	}
}

func walk[T any](it *Iterator[T], yield func(T) bool) {
	for {
		v, ok := it.Next()
		if !ok || !yield(v) {
			return
		}
	}
}
