package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}

	t.Run("first page", func(t *testing.T) {
		page, meta := paginate(ids, 1, 2)
		assert.Equal(t, []string{"a", "b"}, page)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, 5, meta.TotalRecords)
		assert.True(t, meta.HasNextPage)
		assert.False(t, meta.HasPreviousPage)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, meta := paginate(ids, 3, 2)
		assert.Equal(t, []string{"e"}, page)
		assert.False(t, meta.HasNextPage)
		assert.True(t, meta.HasPreviousPage)
	})

	t.Run("page beyond last", func(t *testing.T) {
		page, meta := paginate(ids, 9, 2)
		assert.Empty(t, page)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, 5, meta.TotalRecords)
		assert.False(t, meta.HasNextPage)
	})

	t.Run("empty input", func(t *testing.T) {
		page, meta := paginate(nil, 1, 10)
		assert.Empty(t, page)
		assert.Equal(t, 0, meta.TotalPages)
		assert.Equal(t, 0, meta.TotalRecords)
	})
}
