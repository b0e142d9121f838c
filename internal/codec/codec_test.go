package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDecode(t *testing.T) {
	t.Run("parses valid payload", func(t *testing.T) {
		value, ok := Decode[record](`{"id":"r1","name":"Ana"}`, "test_key")
		assert.True(t, ok)
		assert.Equal(t, record{ID: "r1", Name: "Ana"}, value)
	})

	t.Run("corrupted payload yields zero value, no panic", func(t *testing.T) {
		value, ok := Decode[record](`{"id": nope`, "test_key")
		assert.False(t, ok)
		assert.Equal(t, record{}, value)
	})
}

func TestSliceOr(t *testing.T) {
	t.Run("absent key yields empty slice", func(t *testing.T) {
		values := SliceOr[record]("", false, "test_key")
		require.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("corrupted payload yields empty slice", func(t *testing.T) {
		values := SliceOr[record](`[{"id":`, true, "test_key")
		require.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("stored null yields empty slice", func(t *testing.T) {
		values := SliceOr[record](`null`, true, "test_key")
		require.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("parses stored collection in order", func(t *testing.T) {
		values := SliceOr[record](`[{"id":"a"},{"id":"b"}]`, true, "test_key")
		require.Len(t, values, 2)
		assert.Equal(t, "a", values[0].ID)
		assert.Equal(t, "b", values[1].ID)
	})
}

func TestEncode(t *testing.T) {
	raw, err := Encode([]record{{ID: "a", Name: "Ana"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","name":"Ana"}]`, raw)
}
