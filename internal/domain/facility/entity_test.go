//go:build unit

package facility_test

import (
	"testing"

	"facility-booking/internal/domain/facility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFacility(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		id := uuid.New()
		actual, err := facility.NewFacility(id, "  Conference Room A  ")
		require.NoError(t, err)

		assert.Equal(t, id, actual.ID())
		assert.Equal(t, "Conference Room A", actual.Name())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := facility.NewFacility(uuid.New(), "   ")

		require.ErrorIs(t, err, facility.ErrEmptyName)
	})
}
