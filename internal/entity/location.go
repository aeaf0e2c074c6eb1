package entity

import (
	"fmt"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
)

// BoardSize is the number of rows and columns of the grid.
const BoardSize = 8

const columnLetters = "ABCDEFGH"

// Location is an immutable column/row pair. Row 0 is the top rank.
// The zero value is NullLocation, used by the server squares.
type Location struct {
	column int
	row    int
	valid  bool
}

var NullLocation = Location{}

func NewLocation(column, row int) Location {
	return Location{column: column, row: row, valid: true}
}

func (that Location) Column() int {
	return that.column
}

func (that Location) Row() int {
	return that.row
}

func (that Location) IsNull() bool {
	return !that.valid
}

// OnBoard reports whether the location lies inside the 8x8 grid.
func (that Location) OnBoard() bool {
	return that.valid &&
		that.column >= 0 && that.column < BoardSize &&
		that.row >= 0 && that.row < BoardSize
}

// Shift displaces the location by one step. A null location stays null.
func (that Location) Shift(direction Direction) Location {
	if !direction.Valid() {
		return NullLocation
	}

	dx, dy := direction.delta()

	return that.ShiftBy(dx, dy)
}

// ShiftBy displaces the location by a relative offset. A null location stays null.
func (that Location) ShiftBy(dx, dy int) Location {
	if !that.valid {
		return NullLocation
	}

	return NewLocation(that.column+dx, that.row+dy)
}

// String formats on-board locations in chess notation, row 0 being rank 8.
func (that Location) String() string {
	switch {
	case !that.valid:
		return ""
	case that.OnBoard():
		return fmt.Sprintf("%c%d", columnLetters[that.column], BoardSize-that.row)
	default:
		return fmt.Sprintf("(%d,%d)", that.column, that.row)
	}
}

func (that Location) MarshalText() ([]byte, error) {
	if that.valid && !that.OnBoard() {
		return nil, fmt.Errorf("%w: location %s is outside the board", apperror.ErrInvalidArgument, that)
	}

	return []byte(that.String()), nil
}

func (that *Location) UnmarshalText(text []byte) error {
	location, err := ParseLocation(string(text))
	if err != nil {
		return err
	}

	*that = location

	return nil
}

// ParseLocation reads chess notation such as "D2". An empty string is NullLocation.
func ParseLocation(value string) (Location, error) {
	if value == "" {
		return NullLocation, nil
	}

	if len(value) != 2 {
		return NullLocation, fmt.Errorf("%w: malformed location %q", apperror.ErrInvalidArgument, value)
	}

	column := -1
	for i := 0; i < len(columnLetters); i++ {
		if value[0] == columnLetters[i] || value[0] == columnLetters[i]+('a'-'A') {
			column = i
			break
		}
	}

	rank := int(value[1] - '0')
	if column < 0 || rank < 1 || rank > BoardSize {
		return NullLocation, fmt.Errorf("%w: location %q is outside the board", apperror.ErrInvalidArgument, value)
	}

	return NewLocation(column, BoardSize-rank), nil
}
