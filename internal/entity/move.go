package entity

import (
	"fmt"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
)

// TerminalCardType distinguishes the four terminal cards.
type TerminalCardType int

const (
	LineBoost TerminalCardType = iota + 1
	Firewall
	NotFound
	VirusCheck
)

func (that TerminalCardType) String() string {
	switch that {
	case LineBoost:
		return "line_boost"
	case Firewall:
		return "firewall"
	case NotFound:
		return "not_found"
	case VirusCheck:
		return "virus_check"
	default:
		return ""
	}
}

func (that TerminalCardType) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// MoveKind is the discriminator of Move.
type MoveKind int

const (
	UnknownMove MoveKind = iota
	OnlineCardMove
	LineBoostMove
	FirewallMove
	NotFoundMove
	VirusCheckMove
	SurrenderMove
)

var moveKindNames = map[MoveKind]string{
	OnlineCardMove: "online",
	LineBoostMove:  "line_boost",
	FirewallMove:   "firewall",
	NotFoundMove:   "not_found",
	VirusCheckMove: "virus_check",
	SurrenderMove:  "surrender",
}

func (that MoveKind) String() string {
	return moveKindNames[that]
}

// TerminalCard returns the terminal card played by the move, if any.
func (that MoveKind) TerminalCard() (TerminalCardType, bool) {
	switch that {
	case LineBoostMove:
		return LineBoost, true
	case FirewallMove:
		return Firewall, true
	case NotFoundMove:
		return NotFound, true
	case VirusCheckMove:
		return VirusCheck, true
	default:
		return 0, false
	}
}

func (that MoveKind) MarshalText() ([]byte, error) {
	name, ok := moveKindNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: move kind %d", apperror.ErrInvalidArgument, that)
	}

	return []byte(name), nil
}

func (that *MoveKind) UnmarshalText(text []byte) error {
	for kind, name := range moveKindNames {
		if name == string(text) {
			*that = kind
			return nil
		}
	}

	return fmt.Errorf("%w: unknown move kind %q", apperror.ErrInvalidArgument, text)
}

// MoveSpec is a move request as supplied by a caller. Team may be left empty
// when it can be inferred from the card on Source. Build turns it into a Move.
type MoveSpec struct {
	Kind       MoveKind  `json:"kind"`
	Team       Team      `json:"team,omitempty"`
	Source     Location  `json:"source"`
	Other      Location  `json:"other"`
	Direction  Direction `json:"direction,omitempty"`
	Direction2 Direction `json:"direction2,omitempty"`
	RevealCard bool      `json:"reveal_card,omitempty"`
	Uninstall  bool      `json:"uninstall,omitempty"`
	Swap       bool      `json:"swap,omitempty"`
}

// Move is a validated, immutable move. The zero value is not a valid move.
type Move struct {
	spec   MoveSpec
	source SquareID
	other  SquareID
}

// Build resolves implicit fields against the board and validates the request.
// Rule violations are not checked here; they surface when the move is submitted.
func (that MoveSpec) Build(board *Board) (Move, error) {
	spec := that
	move := Move{source: NoSquare, other: NoSquare}

	if spec.Team != NoTeam && !spec.Team.Valid() {
		return Move{}, fmt.Errorf("%w: team %d", apperror.ErrInvalidArgument, spec.Team)
	}

	needsSource := false
	switch spec.Kind {
	case SurrenderMove:
		if !spec.Team.Valid() {
			return Move{}, fmt.Errorf("%w: surrender requires a team", apperror.ErrInvalidArgument)
		}

		move.spec = MoveSpec{Kind: SurrenderMove, Team: spec.Team}

		return move, nil
	case OnlineCardMove:
		if !spec.Direction.Valid() {
			return Move{}, fmt.Errorf("%w: online card move requires a direction", apperror.ErrInvalidArgument)
		}

		if spec.Direction2 != NoDirection && !spec.Direction2.Valid() {
			return Move{}, fmt.Errorf("%w: second direction %d", apperror.ErrInvalidArgument, spec.Direction2)
		}

		spec.Other, spec.Uninstall, spec.Swap = NullLocation, false, false
		needsSource = true
	case LineBoostMove, FirewallMove:
		spec.Other, spec.Direction, spec.Direction2 = NullLocation, NoDirection, NoDirection
		spec.RevealCard, spec.Swap = false, false
		needsSource = !spec.Uninstall
	case NotFoundMove:
		spec.Direction, spec.Direction2 = NoDirection, NoDirection
		spec.RevealCard, spec.Uninstall = false, false
		needsSource = true
	case VirusCheckMove:
		spec = MoveSpec{Kind: VirusCheckMove, Team: spec.Team, Source: spec.Source}
		needsSource = true
	default:
		return Move{}, fmt.Errorf("%w: unknown move kind %d", apperror.ErrInvalidArgument, spec.Kind)
	}

	if needsSource && spec.Source.IsNull() {
		return Move{}, fmt.Errorf("%w: %s move requires a source square", apperror.ErrInvalidArgument, spec.Kind)
	}

	if !spec.Source.IsNull() {
		source, err := lookupSquare(board, spec.Source)
		if err != nil {
			return Move{}, err
		}

		move.source = source.ID()
	}

	if spec.Kind == NotFoundMove {
		if spec.Other.IsNull() {
			return Move{}, fmt.Errorf("%w: not found move requires another square", apperror.ErrInvalidArgument)
		}

		other, err := lookupSquare(board, spec.Other)
		if err != nil {
			return Move{}, err
		}

		if other.ID() == move.source {
			return Move{}, fmt.Errorf("%w: not found move requires two distinct squares", apperror.ErrInvalidArgument)
		}

		move.other = other.ID()
	}

	if spec.Team == NoTeam {
		team, err := inferTeam(board, move.source, spec.Kind)
		if err != nil {
			return Move{}, err
		}

		spec.Team = team
	}

	move.spec = spec

	return move, nil
}

func lookupSquare(board *Board, location Location) (*Square, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: board is required to resolve %s", apperror.ErrInvalidArgument, location)
	}

	square, ok := board.Lookup(location)
	if !ok {
		return nil, fmt.Errorf("%w: location %s is outside the board", apperror.ErrInvalidArgument, location)
	}

	return square, nil
}

// inferTeam takes the owner of the card on the source square. Virus Check
// targets enemy cards, so its team is the enemy of that owner.
func inferTeam(board *Board, source SquareID, kind MoveKind) (Team, error) {
	var card *Card
	if board != nil {
		if square := board.Square(source); square != nil {
			card = square.Card()
		}
	}

	if card == nil {
		return NoTeam, fmt.Errorf("%w: team cannot be inferred for %s move", apperror.ErrInvalidArgument, kind)
	}

	if kind == VirusCheckMove {
		return card.Owner().Enemy(), nil
	}

	return card.Owner(), nil
}

func (that Move) Kind() MoveKind {
	return that.spec.Kind
}

func (that Move) Team() Team {
	return that.spec.Team
}

// Source is the square the move operates on, NoSquare for uninstalls and surrenders.
func (that Move) Source() SquareID {
	return that.source
}

// Other is the second square of a 404 Not Found move.
func (that Move) Other() SquareID {
	return that.other
}

func (that Move) Direction() Direction {
	return that.spec.Direction
}

// Direction2 is the optional second leg granted by a Line Boost.
func (that Move) Direction2() Direction {
	return that.spec.Direction2
}

func (that Move) RevealCard() bool {
	return that.spec.RevealCard
}

func (that Move) Uninstall() bool {
	return that.spec.Uninstall
}

func (that Move) Swap() bool {
	return that.spec.Swap
}

// Spec returns the resolved request, team included.
func (that Move) Spec() MoveSpec {
	return that.spec
}
