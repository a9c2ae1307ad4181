package avl

import (
	"slices"
	"testing"

	"github.com/amp-labs/sortedlist/sortable"
	"github.com/stretchr/testify/assert"
)

func TestIterator(t *testing.T) {
	t.Parallel()

	t.Run("empty tree yields nothing", func(t *testing.T) {
		t.Parallel()

		it := New[sortable.Int]().Iterator()

		v, ok := it.Next()
		assert.False(t, ok)
		assert.Equal(t, sortable.Int(0), v)
		assert.Empty(t, slices.Collect(New[sortable.Int]().All()))
	})

	t.Run("next walks in order then stops", func(t *testing.T) {
		t.Parallel()

		it := treeOf(10, 5, 20).Iterator()

		var got []sortable.Int

		for v, ok := it.Next(); ok; v, ok = it.Next() {
			got = append(got, v)
		}

		assert.Equal(t, ints(5, 10, 20), got)

		_, ok := it.Next()
		assert.False(t, ok)
	})

	t.Run("stack never exceeds tree height", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		for i := range 500 {
			tree.Insert(sortable.Int(i))
		}

		it := tree.Iterator()
		for {
			assert.LessOrEqual(t, len(it.stack), tree.Height())

			if _, ok := it.Next(); !ok {
				break
			}
		}
	})
}

func TestTree_All(t *testing.T) {
	t.Parallel()

	t.Run("early break", func(t *testing.T) {
		t.Parallel()

		tree := treeOf(4, 2, 6, 1, 3, 5, 7)

		var got []sortable.Int

		for v := range tree.All() {
			if v > 3 {
				break
			}

			got = append(got, v)
		}

		assert.Equal(t, ints(1, 2, 3), got)
	})

	t.Run("restarts and reflects later mutations", func(t *testing.T) {
		t.Parallel()

		tree := treeOf(3, 1)
		seq := tree.All()

		assert.Equal(t, ints(1, 3), slices.Collect(seq))

		tree.Insert(2)
		tree.Remove(3)

		assert.Equal(t, ints(1, 2), slices.Collect(seq))
	})
}

func TestTree_Backward(t *testing.T) {
	t.Parallel()

	tree := treeOf(5, 5, 20, 10)

	assert.Equal(t, ints(20, 10, 5, 5), slices.Collect(tree.Backward()))
	assert.Empty(t, slices.Collect(New[sortable.Int]().Backward()))
}
