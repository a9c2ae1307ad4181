// Package avl implements an order-statistic AVL tree: a self-balancing binary
// search tree whose nodes also cache the size of their subtree.
//
// The tree is a multiset. Equal elements are all kept, and a newly inserted
// element is placed before any elements already equal to it, so duplicates are
// enumerated in reverse insertion order.
//
// The cached sizes make positional queries logarithmic:
//
//	tree := avl.New[sortable.Int]()
//	tree.Insert(10)
//	tree.Insert(5)
//	tree.Insert(10)
//
//	v, _ := tree.At(1)      // 10
//	i := tree.IndexOf(10)   // 1, the smallest index holding 10
//	tree.IndexOf(7)         // avl.NotFound
//
// Mutations rebuild the affected path functionally: every recursive step returns
// the (possibly rotated) root of its subtree, and cached heights and sizes are
// refreshed bottom-up on the way out.
//
// # Thread Safety
//
// A Tree is not safe for concurrent use. Mutating a tree while an iterator over
// it is in progress gives unspecified results.
package avl
