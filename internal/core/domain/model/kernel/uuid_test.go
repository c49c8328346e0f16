package kernel_test

import (
	"testing"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a new UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.NotEqual(t, id1.String(), id2.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name  string
		input string
	}{
		{name: "canonical form", input: validUUID},
		{name: "braces", input: "{550e8400-e29b-41d4-a716-446655440000}"},
		{name: "urn prefix", input: "urn:uuid:550e8400-e29b-41d4-a716-446655440000"},
		{name: "no hyphens", input: "550e8400e29b41d4a716446655440000"},
	}

	for _, tt := range tests {
		t.Run("should accept "+tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)

			require.NoError(t, err)
			assert.Equal(t, validUUID, id.String())
		})
	}

	t.Run("should reject malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-booking-id")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through Bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject short slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject nil UUID bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
