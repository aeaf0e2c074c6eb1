package game

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
	"github.com/rocketscienceinc/rainet-engine/internal/entity"
)

// StartArgs configures a new game. A NoTeam StartingTeam lets the first
// submitted move choose who plays first.
type StartArgs struct {
	StartingTeam entity.Team
	Arrangement  entity.Arrangement
}

// Game validates and applies moves against a single GameState.
type Game struct {
	logger  *slog.Logger
	state   *entity.GameState
	started bool
}

func NewGame(logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Game{
		logger: logger.With("component", "game"),
		state:  entity.NewGameState(),
	}
}

func (that *Game) Start(args StartArgs) error {
	if that.started {
		return apperror.ErrGameAlreadyStarted
	}

	if err := that.state.Initialize(args.StartingTeam, args.Arrangement); err != nil {
		return fmt.Errorf("failed to initialize game state: %w", err)
	}

	that.started = true

	return nil
}

// State exposes the game state for reading. Callers must not mutate it.
func (that *Game) State() *entity.GameState {
	return that.state
}

func (that *Game) IsStarted() bool {
	return that.started
}

func (that *Game) IsFinished() bool {
	return that.state.Winner() != entity.NoTeam
}

// Winner is the recorded winner, NoTeam while the game runs.
func (that *Game) Winner() entity.Team {
	return that.state.Winner()
}

// SubmitMove validates the move and applies it. A rejected move returns an
// error joined with apperror.ErrInvalidMove and leaves the state untouched.
func (that *Game) SubmitMove(move entity.Move) (*Result, error) {
	if !that.started {
		return nil, apperror.ErrGameIsNotStarted
	}

	if that.IsFinished() {
		return nil, apperror.ErrGameFinished
	}

	if move.Kind() == entity.UnknownMove {
		return nil, fmt.Errorf("%w: move was not built", apperror.ErrInvalidArgument)
	}

	result := newResult()

	if move.Kind() == entity.SurrenderMove {
		that.state.Surrender(move.Team())
		that.state.AppendMove(move)
		result.Winner = that.state.Winner()

		that.logger.Debug("team surrendered", "team", move.Team(), "winner", result.Winner)

		return result, nil
	}

	team := that.state.Turn()
	firstMove := team == entity.NoTeam
	if firstMove {
		team = move.Team()
	} else if team != move.Team() {
		return nil, invalidMove(apperror.ErrNotYourTurn)
	}

	var err error
	switch move.Kind() {
	case entity.OnlineCardMove:
		err = that.playOnlineCard(team, move, result)
	case entity.LineBoostMove:
		err = that.playLineBoost(team, move, result)
	case entity.FirewallMove:
		err = that.playFirewall(team, move, result)
	case entity.NotFoundMove:
		err = that.playNotFound(team, move, result)
	case entity.VirusCheckMove:
		err = that.playVirusCheck(team, move, result)
	default:
		err = fmt.Errorf("%w: unknown move kind %d", apperror.ErrInvalidArgument, move.Kind())
	}

	if err != nil {
		return nil, err
	}

	that.state.AppendMove(move)

	// the turn order is fixed only once nothing above can fail
	if firstMove {
		that.state.SetTurn(team)
	}

	if winner := that.state.EvaluateWinner(); winner != entity.NoTeam {
		result.Winner = winner
	} else {
		that.state.SetTurn(team.Enemy())
	}

	that.logger.Debug("move accepted",
		"team", team,
		"kind", move.Kind(),
		"capture", result.Capture != nil,
		"infiltration", result.Server != nil,
		"winner", result.Winner,
	)

	return result, nil
}

func (that *Game) playOnlineCard(team entity.Team, move entity.Move, result *Result) error {
	source := that.state.Board().Square(move.Source())
	if err := requireTeamCard(source, team); err != nil {
		return err
	}

	card := source.Card()

	first, err := that.tryMoveToSquare(team, source, move.Direction())
	if err != nil {
		return err
	}

	var second *submove
	if move.Direction2() != entity.NoDirection {
		if !card.LineBoosted() {
			return invalidMove(apperror.ErrLineBoostRequired)
		}

		if first.ends() {
			return invalidMove(apperror.ErrMoveEnded)
		}

		next, err := that.tryMoveToSquare(team, first.destination, move.Direction2())
		if err != nil {
			return err
		}

		second = &next
	}

	if err = that.moveToSquare(team, first, card, move.RevealCard(), result); err != nil {
		return err
	}

	if second != nil {
		return that.moveToSquare(team, *second, card, move.RevealCard(), result)
	}

	return nil
}

func (that *Game) playLineBoost(team entity.Team, move entity.Move, result *Result) error {
	terminal := that.state.Terminal(team)
	if err := requireInstallToggle(terminal.Installed(entity.LineBoost), move.Uninstall()); err != nil {
		return err
	}

	if move.Uninstall() {
		square := that.state.Board().Square(terminal.LineBoost)
		if square == nil || square.Card() == nil || !square.Card().LineBoosted() {
			return fmt.Errorf("%w: line boost location holds no boosted card", apperror.ErrInvalidGameState)
		}

		that.uninstallLineBoost(team, square.Card())
	} else {
		source := that.state.Board().Square(move.Source())
		if err := requireTeamCard(source, team); err != nil {
			return err
		}

		if source.Card().LineBoosted() {
			return fmt.Errorf("%w: card is already line boosted", apperror.ErrInvalidGameState)
		}

		source.Card().SetLineBoosted(true)
		terminal.LineBoost = source.ID()
	}

	result.addTerminal(entity.LineBoost, team, move.Uninstall())

	return nil
}

func (that *Game) playFirewall(team entity.Team, move entity.Move, result *Result) error {
	terminal := that.state.Terminal(team)
	if err := requireInstallToggle(terminal.Installed(entity.Firewall), move.Uninstall()); err != nil {
		return err
	}

	if move.Uninstall() {
		square := that.state.Board().Square(terminal.Firewall)
		if square == nil {
			return fmt.Errorf("%w: firewall location is unknown", apperror.ErrInvalidGameState)
		}

		square.SetFirewall(entity.NoTeam)
		terminal.Firewall = entity.NoSquare
	} else {
		source := that.state.Board().Square(move.Source())
		if source == nil {
			return invalidMove(apperror.ErrNoSourceSquare)
		}

		if card := source.Card(); card != nil && card.Owner() != team {
			return invalidMove(apperror.ErrEnemyCardOnSquare)
		}

		// the team's own firewall cannot be here since it is not installed,
		// so any owner is an enemy
		if source.Firewall() != entity.NoTeam {
			return invalidMove(apperror.ErrEnemyFirewall)
		}

		source.SetFirewall(team)
		terminal.Firewall = source.ID()
	}

	result.addTerminal(entity.Firewall, team, move.Uninstall())

	return nil
}

func (that *Game) playNotFound(team entity.Team, move entity.Move, result *Result) error {
	terminal := that.state.Terminal(team)
	if terminal.NotFound {
		return invalidMove(apperror.ErrCardConsumed)
	}

	board := that.state.Board()
	source, other := board.Square(move.Source()), board.Square(move.Other())

	if err := requireTeamCard(source, team); err != nil {
		return err
	}

	if err := requireTeamCard(other, team); err != nil {
		return err
	}

	sourceCard, otherCard := source.Card(), other.Card()

	if move.Swap() {
		source.SetCard(otherCard)
		other.SetCard(sourceCard)

		switch {
		case sourceCard.LineBoosted():
			terminal.LineBoost = other.ID()
		case otherCard.LineBoosted():
			terminal.LineBoost = source.ID()
		}
	}

	// the opponent cannot tell whether a swap happened
	sourceCard.SetRevealed(false)
	otherCard.SetRevealed(false)
	terminal.NotFound = true

	result.addTerminal(entity.NotFound, team, false)

	return nil
}

func (that *Game) playVirusCheck(team entity.Team, move entity.Move, result *Result) error {
	terminal := that.state.Terminal(team)
	if terminal.VirusCheck {
		return invalidMove(apperror.ErrCardConsumed)
	}

	source := that.state.Board().Square(move.Source())
	if source == nil || source.Card() == nil || source.Card().Owner() == team {
		return invalidMove(apperror.ErrInvalidTarget)
	}

	source.Card().SetRevealed(true)
	terminal.VirusCheck = true

	result.addTerminal(entity.VirusCheck, team, false)

	return nil
}

func (that *Game) uninstallLineBoost(team entity.Team, card *entity.Card) {
	that.state.Terminal(team).LineBoost = entity.NoSquare
	card.SetLineBoosted(false)
}

// requireInstallToggle rejects installing an installed card and uninstalling a missing one.
func requireInstallToggle(installed, uninstall bool) error {
	switch {
	case installed && !uninstall:
		return invalidMove(apperror.ErrAlreadyInstalled)
	case !installed && uninstall:
		return invalidMove(apperror.ErrNotInstalled)
	default:
		return nil
	}
}

func requireTeamCard(square *entity.Square, team entity.Team) error {
	switch {
	case square == nil:
		return invalidMove(apperror.ErrNoSourceSquare)
	case square.Card() == nil:
		return invalidMove(apperror.ErrEmptySquare)
	case square.Card().Owner() != team:
		return invalidMove(apperror.ErrNotOwnCard)
	default:
		return nil
	}
}

func invalidMove(reason error) error {
	return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, reason)
}
