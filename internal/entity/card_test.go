package entity

import (
	"testing"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deckTypes(cards []*Card) string {
	letters := ""
	for _, card := range cards {
		if card.Type() == Link {
			letters += "L"
		} else {
			letters += "V"
		}
	}

	return letters
}

func TestDealArrangement(t *testing.T) {
	t.Run("Deals links before each virus", func(t *testing.T) {
		tests := []struct {
			arrangement []int
			expected    string
		}{
			{nil, "LLLLVVVV"},
			{[]int{4}, "LLLLVVVV"},
			{[]int{4, 0, 0, 0}, "LLLLVVVV"},
			{[]int{0, 0, 0, 4}, "VVVLLLLV"},
			{[]int{3, 1}, "LLLVLVVV"},
			{[]int{3, 0, 0, 0}, "LLLVVVVL"},
			{[]int{1, 1, 1, 1, 1, 1}, "LVLVLVLV"},
			{[]int{9}, "LLLLVVVV"},
		}

		for _, test := range tests {
			// When: dealing the arrangement
			cards, err := DealArrangement(TeamBottom, test.arrangement)

			// Then: the deck is complete and ordered
			require.NoError(t, err)
			assert.Len(t, cards, DeckSize)
			assert.Equal(t, test.expected, deckTypes(cards), "%v", test.arrangement)

			for id, card := range cards {
				assert.Equal(t, id, card.ID())
				assert.Equal(t, TeamBottom, card.Owner())
				assert.False(t, card.Revealed())
				assert.False(t, card.LineBoosted())
			}
		}
	})

	t.Run("Rejects negative counts", func(t *testing.T) {
		_, err := DealArrangement(TeamTop, []int{2, -1})

		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})

	t.Run("Rejects an invalid owner", func(t *testing.T) {
		_, err := DealArrangement(NoTeam, []int{4})

		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}

func TestNewCard(t *testing.T) {
	_, err := NewCard(0, OnlineCardType(7), TeamTop)
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = NewCard(0, Link, Team(5))
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	card, err := NewCard(3, Virus, TeamTop)
	require.NoError(t, err)
	assert.Equal(t, Virus, card.Type())
	assert.Equal(t, TeamTop, card.Owner())
}

func TestNewStackedOnlineCard(t *testing.T) {
	card, err := NewCard(0, Link, TeamTop)
	require.NoError(t, err)

	_, err = NewStackedOnlineCard(nil, Captured)
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = NewStackedOnlineCard(card, StackCause(0))
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	stacked, err := NewStackedOnlineCard(card, Infiltrated)
	require.NoError(t, err)
	assert.Same(t, card, stacked.Card())
	assert.Equal(t, Infiltrated, stacked.Cause())
}
