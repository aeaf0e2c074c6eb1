package entity

import (
	"testing"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_Shift(t *testing.T) {
	t.Run("Shifting back by the opposite direction returns the location", func(t *testing.T) {
		for column := 0; column < BoardSize; column++ {
			for row := 0; row < BoardSize; row++ {
				location := NewLocation(column, row)

				for _, direction := range Directions {
					// When: shifting there and back
					shifted := location.Shift(direction)
					if !shifted.OnBoard() {
						continue
					}

					// Then: the starting location comes back
					assert.Equal(t, location, shifted.Shift(direction.Opposite()))
				}
			}
		}
	})

	t.Run("Up decreases the row", func(t *testing.T) {
		// Given: D2
		location := NewLocation(3, 6)

		// When: shifting up
		shifted := location.Shift(Up)

		// Then: the result is D3
		assert.Equal(t, NewLocation(3, 5), shifted)
		assert.Equal(t, "D3", shifted.String())
	})

	t.Run("Null propagates", func(t *testing.T) {
		assert.True(t, NullLocation.Shift(Up).IsNull())
		assert.True(t, NullLocation.ShiftBy(1, 1).IsNull())
		assert.True(t, NewLocation(1, 1).Shift(NoDirection).IsNull())
	})

	t.Run("Relative shift may leave the board", func(t *testing.T) {
		shifted := NewLocation(0, 0).ShiftBy(-1, 2)

		assert.False(t, shifted.IsNull())
		assert.False(t, shifted.OnBoard())
		assert.Equal(t, -1, shifted.Column())
		assert.Equal(t, 2, shifted.Row())
	})
}

func TestParseLocation(t *testing.T) {
	t.Run("Parses chess notation", func(t *testing.T) {
		tests := map[string]Location{
			"A8": NewLocation(0, 0),
			"H1": NewLocation(7, 7),
			"d2": NewLocation(3, 6),
			"":   NullLocation,
		}

		for value, expected := range tests {
			location, err := ParseLocation(value)

			require.NoError(t, err, value)
			assert.Equal(t, expected, location, value)
		}
	})

	t.Run("Rejects malformed values", func(t *testing.T) {
		for _, value := range []string{"I1", "A9", "A0", "A", "A10", "11"} {
			_, err := ParseLocation(value)

			assert.ErrorIs(t, err, apperror.ErrInvalidArgument, value)
		}
	})

	t.Run("Round trips through text", func(t *testing.T) {
		// Given: an on-board location
		location := NewLocation(4, 1)

		// When: marshalling and unmarshalling
		text, err := location.MarshalText()
		require.NoError(t, err)

		var decoded Location
		require.NoError(t, decoded.UnmarshalText(text))

		// Then: both are equal
		assert.Equal(t, "E7", string(text))
		assert.Equal(t, location, decoded)
	})

	t.Run("Off board locations cannot be marshalled", func(t *testing.T) {
		_, err := NewLocation(8, 0).MarshalText()

		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}
