package kernel_test

import (
	"sort"
	"testing"

	"secureorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("creates valid unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestNewTimeOrderedUUID(t *testing.T) {
	t.Run("creates valid UUIDs", func(t *testing.T) {
		id := kernel.NewTimeOrderedUUID()
		require.NoError(t, id.Validate())
	})

	t.Run("identifiers sort in creation order", func(t *testing.T) {
		ids := make([]string, 0, 10)
		for range 10 {
			ids = append(ids, kernel.NewTimeOrderedUUID().String())
		}

		assert.True(t, sort.StringsAreSorted(ids))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses canonical representation", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through bytes", func(t *testing.T) {
		original := kernel.NewTimeOrderedUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})
		require.Error(t, err)
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
