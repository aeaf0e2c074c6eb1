package entity

// SquareID indexes a square inside its board. Grid squares use row*8+column,
// the two server squares follow.
type SquareID int

const NoSquare SquareID = -1

// Square is a grid cell or a server placeholder. Its adjacency is fixed once
// the board is built.
type Square struct {
	id       SquareID
	location Location
	adjacent [4]SquareID
	card     *Card
	firewall Team
}

func newSquare(id SquareID, location Location) Square {
	return Square{
		id:       id,
		location: location,
		adjacent: [4]SquareID{NoSquare, NoSquare, NoSquare, NoSquare},
	}
}

func (that *Square) ID() SquareID {
	return that.id
}

// Location is NullLocation for server squares.
func (that *Square) Location() Location {
	return that.location
}

// Adjacent returns the neighbour in the given direction, or NoSquare.
func (that *Square) Adjacent(direction Direction) SquareID {
	if !direction.Valid() {
		return NoSquare
	}

	return that.adjacent[direction.index()]
}

func (that *Square) Card() *Card {
	return that.card
}

func (that *Square) SetCard(card *Card) {
	that.card = card
}

func (that *Square) IsEmpty() bool {
	return that.card == nil
}

// Firewall is the team owning a firewall installed here, or NoTeam.
func (that *Square) Firewall() Team {
	return that.firewall
}

func (that *Square) SetFirewall(team Team) {
	that.firewall = team
}
