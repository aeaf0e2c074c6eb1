package entity

import (
	"fmt"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
)

// WinningScore is the number of cards of one type that decides a game.
const WinningScore = 4

// Arrangement holds, per team, the number of links to deal before each virus.
type Arrangement map[Team][]int

// TerminalState tracks one team's terminal cards. LineBoost and Firewall hold
// the hosting square or NoSquare; NotFound and VirusCheck are set once consumed.
type TerminalState struct {
	LineBoost  SquareID
	Firewall   SquareID
	NotFound   bool
	VirusCheck bool
}

func newTerminalState() *TerminalState {
	return &TerminalState{LineBoost: NoSquare, Firewall: NoSquare}
}

// Installed reports whether the card is installed, or consumed for the one-shot cards.
func (that TerminalState) Installed(kind TerminalCardType) bool {
	switch kind {
	case LineBoost:
		return that.LineBoost != NoSquare
	case Firewall:
		return that.Firewall != NoSquare
	case NotFound:
		return that.NotFound
	case VirusCheck:
		return that.VirusCheck
	default:
		return false
	}
}

// GameState is the authoritative state of one game.
type GameState struct {
	board        *Board
	cards        map[Team][]*Card
	terminal     map[Team]*TerminalState
	score        map[Team]map[OnlineCardType]int
	startingTeam Team
	turn         Team
	moves        []Move
	winner       Team
	surrendered  bool
	initialized  bool
}

func NewGameState() *GameState {
	state := &GameState{
		board:    NewBoard(),
		cards:    make(map[Team][]*Card, len(Teams)),
		terminal: make(map[Team]*TerminalState, len(Teams)),
		score:    make(map[Team]map[OnlineCardType]int, len(Teams)),
	}

	for _, team := range Teams {
		state.terminal[team] = newTerminalState()
		state.score[team] = map[OnlineCardType]int{Link: 0, Virus: 0}
	}

	return state
}

// Initialize deals both decks onto the starting squares. A NoTeam starting
// team lets the first move decide the turn order.
func (that *GameState) Initialize(startingTeam Team, arrangement Arrangement) error {
	if that.initialized {
		return apperror.ErrGameAlreadyStarted
	}

	if startingTeam != NoTeam && !startingTeam.Valid() {
		return fmt.Errorf("%w: starting team %d", apperror.ErrInvalidArgument, startingTeam)
	}

	for team := range arrangement {
		if !team.Valid() {
			return fmt.Errorf("%w: arrangement for team %d", apperror.ErrInvalidArgument, team)
		}
	}

	decks := make(map[Team][]*Card, len(Teams))
	for _, team := range Teams {
		cards, err := DealArrangement(team, arrangement[team])
		if err != nil {
			return fmt.Errorf("failed to deal cards for %s: %w", team, err)
		}

		decks[team] = cards
	}

	for _, team := range Teams {
		that.cards[team] = decks[team]
		for i, square := range that.board.Grid().StartingSquares(team) {
			square.SetCard(decks[team][i])
		}
	}

	that.startingTeam = startingTeam
	that.turn = startingTeam
	that.initialized = true

	return nil
}

func (that *GameState) IsInitialized() bool {
	return that.initialized
}

func (that *GameState) Board() *Board {
	return that.board
}

// Cards returns every online card dealt to the team, wherever it is now.
func (that *GameState) Cards(team Team) []*Card {
	return append([]*Card(nil), that.cards[team]...)
}

// Terminal returns the team's terminal card state. It is nil for NoTeam.
func (that *GameState) Terminal(team Team) *TerminalState {
	return that.terminal[team]
}

func (that *GameState) Score(team Team, kind OnlineCardType) int {
	return that.score[team][kind]
}

func (that *GameState) AddScore(team Team, kind OnlineCardType) {
	that.score[team][kind]++
}

func (that *GameState) StartingTeam() Team {
	return that.startingTeam
}

// Turn is the team expected to move next, NoTeam until the first move when
// no starting team was chosen.
func (that *GameState) Turn() Team {
	return that.turn
}

func (that *GameState) SetTurn(team Team) {
	that.turn = team
}

// Moves returns a copy of the accepted moves, oldest first.
func (that *GameState) Moves() []Move {
	return append([]Move(nil), that.moves...)
}

func (that *GameState) AppendMove(move Move) {
	that.moves = append(that.moves, move)
}

// Winner returns the recorded winner, or NoTeam while the game runs.
func (that *GameState) Winner() Team {
	return that.winner
}

func (that *GameState) Surrendered() bool {
	return that.surrendered
}

// Surrender ends the game in favour of the enemy of the given team.
func (that *GameState) Surrender(team Team) {
	that.winner = team.Enemy()
	that.surrendered = true
}

// EvaluateWinner records a score based winner once. Collecting four links
// wins; collecting four viruses hands the win to the opponent.
func (that *GameState) EvaluateWinner() Team {
	if that.winner != NoTeam {
		return that.winner
	}

	for _, team := range Teams {
		if that.score[team][Link] >= WinningScore {
			that.winner = team
			break
		}

		if that.score[team][Virus] >= WinningScore {
			that.winner = team.Enemy()
			break
		}
	}

	return that.winner
}
