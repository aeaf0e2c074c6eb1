package entity

const gridSquares = BoardSize * BoardSize

// Grid is the 8x8 arrangement of squares with the fixed starting squares.
type Grid struct {
	squares  [gridSquares]Square
	starting map[Team][]SquareID
}

func newGrid() *Grid {
	grid := &Grid{}

	for row := 0; row < BoardSize; row++ {
		for column := 0; column < BoardSize; column++ {
			id := gridID(column, row)
			grid.squares[id] = newSquare(id, NewLocation(column, row))
		}
	}

	for id := range grid.squares {
		square := &grid.squares[id]
		for _, direction := range Directions {
			if neighbour, ok := grid.Lookup(square.location.Shift(direction)); ok {
				square.adjacent[direction.index()] = neighbour.id
			}
		}
	}

	grid.starting = map[Team][]SquareID{
		TeamTop: {
			gridID(0, 0), gridID(1, 0), gridID(2, 0), gridID(3, 1),
			gridID(4, 1), gridID(5, 0), gridID(6, 0), gridID(7, 0),
		},
		TeamBottom: {
			gridID(0, 7), gridID(1, 7), gridID(2, 7), gridID(3, 6),
			gridID(4, 6), gridID(5, 7), gridID(6, 7), gridID(7, 7),
		},
	}

	return grid
}

func gridID(column, row int) SquareID {
	return SquareID(row*BoardSize + column)
}

// Lookup returns the square at the location, or false when it is off the grid.
func (that *Grid) Lookup(location Location) (*Square, bool) {
	if !location.OnBoard() {
		return nil, false
	}

	return &that.squares[gridID(location.Column(), location.Row())], true
}

// Squares returns all grid squares, top row first.
func (that *Grid) Squares() []*Square {
	squares := make([]*Square, 0, gridSquares)
	for id := range that.squares {
		squares = append(squares, &that.squares[id])
	}

	return squares
}

// StartingSquares returns the team's eight starting squares in dealing order.
func (that *Grid) StartingSquares(team Team) []*Square {
	ids := that.starting[team]
	squares := make([]*Square, 0, len(ids))

	for _, id := range ids {
		squares = append(squares, &that.squares[id])
	}

	return squares
}
