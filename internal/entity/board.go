package entity

const (
	TopServerID    SquareID = gridSquares
	BottomServerID SquareID = gridSquares + 1
)

// serverEntries are the back rank cells leading into each server.
var serverEntries = []struct {
	column, row int
	direction   Direction
	team        Team
}{
	{3, 0, Up, TeamTop},
	{4, 0, Up, TeamTop},
	{3, 7, Down, TeamBottom},
	{4, 7, Down, TeamBottom},
}

// Board owns the grid, one server square per team and the stack areas.
type Board struct {
	grid    *Grid
	servers [2]Square
	stacks  map[Team][]StackedOnlineCard
}

func NewBoard() *Board {
	board := &Board{
		grid: newGrid(),
		servers: [2]Square{
			newSquare(TopServerID, NullLocation),
			newSquare(BottomServerID, NullLocation),
		},
		stacks: map[Team][]StackedOnlineCard{
			TeamTop:    {},
			TeamBottom: {},
		},
	}

	for _, entry := range serverEntries {
		square := &board.grid.squares[gridID(entry.column, entry.row)]
		square.adjacent[entry.direction.index()] = board.Server(entry.team).id
	}

	return board
}

func (that *Board) Grid() *Grid {
	return that.grid
}

// Square resolves an id to its square, nil for NoSquare or unknown ids.
func (that *Board) Square(id SquareID) *Square {
	switch {
	case id >= 0 && id < gridSquares:
		return &that.grid.squares[id]
	case id == TopServerID:
		return &that.servers[0]
	case id == BottomServerID:
		return &that.servers[1]
	default:
		return nil
	}
}

func (that *Board) Lookup(location Location) (*Square, bool) {
	return that.grid.Lookup(location)
}

func (that *Board) Server(team Team) *Square {
	switch team {
	case TeamTop:
		return &that.servers[0]
	case TeamBottom:
		return &that.servers[1]
	default:
		return nil
	}
}

// ServerOwner reports which team the square is the server of, if any.
func (that *Board) ServerOwner(id SquareID) (Team, bool) {
	switch id {
	case TopServerID:
		return TeamTop, true
	case BottomServerID:
		return TeamBottom, true
	default:
		return NoTeam, false
	}
}

// StackArea returns a copy of the team's stack area, oldest first.
func (that *Board) StackArea(team Team) []StackedOnlineCard {
	return append([]StackedOnlineCard(nil), that.stacks[team]...)
}

func (that *Board) PushStack(team Team, stacked StackedOnlineCard) {
	that.stacks[team] = append(that.stacks[team], stacked)
}
