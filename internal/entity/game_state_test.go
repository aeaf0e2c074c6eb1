package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameState_Initialize(t *testing.T) {
	t.Run("Deals both decks onto the starting squares", func(t *testing.T) {
		// Given: a fresh state
		state := NewGameState()

		// When: initializing it
		err := state.Initialize(TeamBottom, Arrangement{TeamTop: {0, 0, 0, 4}, TeamBottom: {3, 1}})

		// Then: every starting square holds the matching card
		require.NoError(t, err)
		assert.True(t, state.IsInitialized())
		assert.Equal(t, TeamBottom, state.StartingTeam())
		assert.Equal(t, TeamBottom, state.Turn())

		for _, team := range Teams {
			cards := state.Cards(team)
			squares := state.Board().Grid().StartingSquares(team)
			require.Len(t, cards, DeckSize)
			require.Len(t, squares, DeckSize)

			for i, square := range squares {
				assert.Same(t, cards[i], square.Card())
			}
		}

		assert.Equal(t, Virus, lookup(t, state.Board(), "A8").Card().Type())
		assert.Equal(t, Link, lookup(t, state.Board(), "D7").Card().Type())
		assert.Equal(t, Virus, lookup(t, state.Board(), "D2").Card().Type())
	})

	t.Run("Can only be initialized once", func(t *testing.T) {
		state := dealtState(t)

		err := state.Initialize(TeamTop, Arrangement{})

		assert.ErrorIs(t, err, apperror.ErrGameAlreadyStarted)
	})

	t.Run("Rejects invalid arguments without side effects", func(t *testing.T) {
		state := NewGameState()

		err := state.Initialize(Team(4), Arrangement{})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

		err = state.Initialize(TeamTop, Arrangement{NoTeam: {4}})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

		err = state.Initialize(TeamTop, Arrangement{TeamBottom: {-2}})
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

		assert.False(t, state.IsInitialized())
		assert.Empty(t, state.Record("").Squares)
	})
}

func TestGameState_EvaluateWinner(t *testing.T) {
	t.Run("Four links win", func(t *testing.T) {
		state := dealtState(t)
		for range WinningScore {
			state.AddScore(TeamBottom, Link)
		}

		assert.Equal(t, TeamBottom, state.EvaluateWinner())
	})

	t.Run("Four viruses lose", func(t *testing.T) {
		state := dealtState(t)
		for range WinningScore {
			state.AddScore(TeamBottom, Virus)
		}

		assert.Equal(t, TeamTop, state.EvaluateWinner())
	})

	t.Run("Winner is kept once decided", func(t *testing.T) {
		// Given: a decided game
		state := dealtState(t)
		for range WinningScore {
			state.AddScore(TeamTop, Link)
		}
		require.Equal(t, TeamTop, state.EvaluateWinner())

		// When: the other team reaches a winning score later
		for range WinningScore {
			state.AddScore(TeamBottom, Link)
		}

		// Then: the recorded winner does not change
		assert.Equal(t, TeamTop, state.EvaluateWinner())
		assert.Equal(t, TeamTop, state.Winner())
	})

	t.Run("No winner below the threshold", func(t *testing.T) {
		state := dealtState(t)
		state.AddScore(TeamTop, Link)
		state.AddScore(TeamTop, Virus)

		assert.Equal(t, NoTeam, state.EvaluateWinner())
	})

	t.Run("Surrender hands the win to the enemy", func(t *testing.T) {
		state := dealtState(t)

		state.Surrender(TeamTop)

		assert.Equal(t, TeamBottom, state.EvaluateWinner())
		assert.True(t, state.Surrendered())
	})
}

func TestGameState_Record(t *testing.T) {
	t.Run("Snapshots occupied and firewalled squares", func(t *testing.T) {
		// Given: a dealt state with a firewall and a line boost
		state := dealtState(t)
		d5 := lookup(t, state.Board(), "D5")
		d5.SetFirewall(TeamBottom)
		state.Terminal(TeamBottom).Firewall = d5.ID()

		d2 := lookup(t, state.Board(), "D2")
		d2.Card().SetLineBoosted(true)
		state.Terminal(TeamBottom).LineBoost = d2.ID()

		// When: taking the record
		record := state.Record("game-1")

		// Then: the record holds the sixteen cards plus the firewall square
		assert.Equal(t, "game-1", record.ID)
		assert.Len(t, record.Squares, 2*DeckSize+1)
		assert.Equal(t, mustLocation(t, "D5"), record.Terminal[TeamBottom].Firewall)
		assert.Equal(t, mustLocation(t, "D2"), record.Terminal[TeamBottom].LineBoost)
		assert.True(t, record.Terminal[TeamTop].LineBoost.IsNull())
		assert.Empty(t, record.Stacks[TeamTop])
		assert.Equal(t, 0, record.Score[TeamBottom][Link])

		for _, square := range record.Squares {
			if square.Location == mustLocation(t, "D5") {
				assert.Nil(t, square.Card)
				assert.Equal(t, TeamBottom, square.Firewall)
			}

			if square.Location == mustLocation(t, "D2") {
				require.NotNil(t, square.Card)
				assert.True(t, square.Card.LineBoosted)
			}
		}
	})

	t.Run("Encodes to JSON with readable values", func(t *testing.T) {
		state := dealtState(t)
		state.AppendMove(Move{spec: MoveSpec{Kind: OnlineCardMove, Team: TeamBottom, Source: mustLocation(t, "D2"), Direction: Up}})

		data, err := json.Marshal(state.Record("game-2"))
		require.NoError(t, err)

		var decoded Record
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, state.Record("game-2"), decoded)
		assert.Contains(t, string(data), `"direction":"up"`)
		assert.Contains(t, string(data), `"source":"D2"`)
	})
}
