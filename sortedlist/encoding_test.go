package sortedlist

import (
	"encoding/json"
	"testing"

	"github.com/amp-labs/sortedlist/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSortedList_JSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes ascending", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(Of[sortable.Int](20, 5, 10, 5))
		require.NoError(t, err)
		assert.JSONEq(t, `[5,5,10,20]`, string(data))
	})

	t.Run("empty list encodes as empty array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(New[sortable.Int]())
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))
	})

	t.Run("decodes unsorted input", func(t *testing.T) {
		t.Parallel()

		list := New[sortable.String]()
		require.NoError(t, json.Unmarshal([]byte(`["pear","apple","fig","apple"]`), list))

		assert.Equal(t, []sortable.String{"apple", "apple", "fig", "pear"}, list.Entries())
	})

	t.Run("decode adds to existing elements", func(t *testing.T) {
		t.Parallel()

		list := Of[sortable.Int](7)
		require.NoError(t, json.Unmarshal([]byte(`[3, 9]`), list))

		assert.Equal(t, ints(3, 7, 9), list.Entries())
	})

	t.Run("inside a struct", func(t *testing.T) {
		t.Parallel()

		var doc struct {
			Scores *SortedList[sortable.Int] `json:"scores"`
		}

		require.NoError(t, json.Unmarshal([]byte(`{"scores":[3,1,2]}`), &doc))
		require.NotNil(t, doc.Scores)
		assert.Equal(t, ints(1, 2, 3), doc.Scores.Entries())
	})

	t.Run("bad input", func(t *testing.T) {
		t.Parallel()

		list := New[sortable.Int]()
		require.Error(t, json.Unmarshal([]byte(`{"not":"an array"}`), list))
		assert.Equal(t, 0, list.Count())
	})
}

func TestSortedList_YAML(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		data, err := yaml.Marshal(Of[sortable.Int](3, 1, 2, 1))
		require.NoError(t, err)
		assert.Equal(t, "- 1\n- 1\n- 2\n- 3\n", string(data))

		decoded := New[sortable.Int]()
		require.NoError(t, yaml.Unmarshal(data, decoded))
		assert.Equal(t, ints(1, 1, 2, 3), decoded.Entries())
	})

	t.Run("natural strings", func(t *testing.T) {
		t.Parallel()

		list := New[sortable.NaturalString]()
		require.NoError(t, yaml.Unmarshal([]byte("[file10, file2, file1]"), list))

		assert.Equal(t, []sortable.NaturalString{"file1", "file2", "file10"}, list.Entries())
	})

	t.Run("bad input", func(t *testing.T) {
		t.Parallel()

		list := New[sortable.Int]()
		require.Error(t, yaml.Unmarshal([]byte("key: value"), list))
	})
}
