package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, board *Board, value string) *Square {
	t.Helper()

	location, err := ParseLocation(value)
	require.NoError(t, err)

	square, ok := board.Lookup(location)
	require.True(t, ok, value)

	return square
}

func TestNewBoard_Adjacency(t *testing.T) {
	board := NewBoard()

	serverEntry := map[string]SquareID{
		"D8": TopServerID,
		"E8": TopServerID,
		"D1": BottomServerID,
		"E1": BottomServerID,
	}

	t.Run("Grid neighbours are symmetric", func(t *testing.T) {
		for _, square := range board.Grid().Squares() {
			for _, direction := range Directions {
				neighbour := board.Square(square.Adjacent(direction))
				shifted := square.Location().Shift(direction)

				switch {
				case shifted.OnBoard():
					require.NotNil(t, neighbour)
					assert.Equal(t, shifted, neighbour.Location())
					assert.Equal(t, square.ID(), neighbour.Adjacent(direction.Opposite()))
				case neighbour != nil:
					// Then: only the four entry cells lead off the grid, into a server
					expected, ok := serverEntry[square.Location().String()]
					require.True(t, ok, "%s %s", square.Location(), direction)
					assert.Equal(t, expected, neighbour.ID())
				default:
					assert.Equal(t, NoSquare, square.Adjacent(direction))
				}
			}
		}
	})

	t.Run("Entry cells lead to the servers", func(t *testing.T) {
		assert.Equal(t, TopServerID, lookup(t, board, "D8").Adjacent(Up))
		assert.Equal(t, TopServerID, lookup(t, board, "E8").Adjacent(Up))
		assert.Equal(t, BottomServerID, lookup(t, board, "D1").Adjacent(Down))
		assert.Equal(t, BottomServerID, lookup(t, board, "E1").Adjacent(Down))
		assert.Equal(t, NoSquare, lookup(t, board, "C8").Adjacent(Up))
		assert.Equal(t, NoSquare, lookup(t, board, "F1").Adjacent(Down))
	})

	t.Run("Servers have no location and no neighbours", func(t *testing.T) {
		for _, team := range Teams {
			server := board.Server(team)

			assert.True(t, server.Location().IsNull())
			assert.True(t, server.IsEmpty())
			for _, direction := range Directions {
				assert.Equal(t, NoSquare, server.Adjacent(direction))
			}

			owner, ok := board.ServerOwner(server.ID())
			assert.True(t, ok)
			assert.Equal(t, team, owner)
		}
	})
}

func TestBoard_Lookup(t *testing.T) {
	board := NewBoard()

	t.Run("Returns false outside the grid", func(t *testing.T) {
		for _, location := range []Location{NullLocation, NewLocation(-1, 0), NewLocation(0, 8), NewLocation(8, 8)} {
			_, ok := board.Lookup(location)

			assert.False(t, ok, location.String())
		}
	})

	t.Run("Unknown ids resolve to nil", func(t *testing.T) {
		assert.Nil(t, board.Square(NoSquare))
		assert.Nil(t, board.Square(BottomServerID+1))
	})
}

func TestGrid_StartingSquares(t *testing.T) {
	grid := NewBoard().Grid()

	names := func(team Team) []string {
		var result []string
		for _, square := range grid.StartingSquares(team) {
			result = append(result, square.Location().String())
		}

		return result
	}

	assert.Equal(t, []string{"A8", "B8", "C8", "D7", "E7", "F8", "G8", "H8"}, names(TeamTop))
	assert.Equal(t, []string{"A1", "B1", "C1", "D2", "E2", "F1", "G1", "H1"}, names(TeamBottom))
}
