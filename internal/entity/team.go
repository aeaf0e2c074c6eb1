package entity

import (
	"fmt"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
)

// Team is one of the two sides of a game. NoTeam is the zero value.
type Team int

const (
	NoTeam Team = iota
	TeamTop
	TeamBottom
)

// Teams lists both teams in the fixed evaluation order.
var Teams = []Team{TeamTop, TeamBottom}

func (that Team) Valid() bool {
	return that == TeamTop || that == TeamBottom
}

// Enemy returns the opposing team, or NoTeam for NoTeam.
func (that Team) Enemy() Team {
	switch that {
	case TeamTop:
		return TeamBottom
	case TeamBottom:
		return TeamTop
	default:
		return NoTeam
	}
}

func (that Team) String() string {
	switch that {
	case TeamTop:
		return "top"
	case TeamBottom:
		return "bottom"
	default:
		return ""
	}
}

func (that Team) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Team) UnmarshalText(text []byte) error {
	team, err := ParseTeam(string(text))
	if err != nil {
		return err
	}

	*that = team

	return nil
}

// ParseTeam accepts "top", "bottom" or an empty string for NoTeam.
func ParseTeam(value string) (Team, error) {
	switch value {
	case "":
		return NoTeam, nil
	case "top":
		return TeamTop, nil
	case "bottom":
		return TeamBottom, nil
	default:
		return NoTeam, fmt.Errorf("%w: unknown team %q", apperror.ErrInvalidArgument, value)
	}
}

// Direction is one of the four orthogonal directions. NoDirection is the zero value.
type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four real directions.
var Directions = []Direction{Up, Down, Left, Right}

func (that Direction) Valid() bool {
	return that >= Up && that <= Right
}

func (that Direction) Opposite() Direction {
	switch that {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoDirection
	}
}

// delta returns the displacement of one step, with rows growing downwards.
func (that Direction) delta() (int, int) {
	switch that {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (that Direction) index() int {
	return int(that) - 1
}

func (that Direction) String() string {
	switch that {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return ""
	}
}

func (that Direction) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Direction) UnmarshalText(text []byte) error {
	direction, err := ParseDirection(string(text))
	if err != nil {
		return err
	}

	*that = direction

	return nil
}

// ParseDirection accepts the long names and the single letters U, D, L and R.
func ParseDirection(value string) (Direction, error) {
	switch value {
	case "":
		return NoDirection, nil
	case "up", "U":
		return Up, nil
	case "down", "D":
		return Down, nil
	case "left", "L":
		return Left, nil
	case "right", "R":
		return Right, nil
	default:
		return NoDirection, fmt.Errorf("%w: unknown direction %q", apperror.ErrInvalidArgument, value)
	}
}
