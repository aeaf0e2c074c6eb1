package game

import (
	"fmt"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
	"github.com/rocketscienceinc/rainet-engine/internal/entity"
)

// submove is one validated leg of an online card move.
type submove struct {
	source      *entity.Square
	destination *entity.Square
	server      entity.Team
	capture     bool
}

// ends reports whether no further leg may follow this one.
func (that submove) ends() bool {
	return that.server != entity.NoTeam || that.capture
}

func (that *Game) tryMoveToSquare(team entity.Team, source *entity.Square, direction entity.Direction) (submove, error) {
	board := that.state.Board()

	destination := board.Square(source.Adjacent(direction))
	if destination == nil {
		return submove{}, invalidMove(apperror.ErrOffBoard)
	}

	if owner := destination.Firewall(); owner != entity.NoTeam && owner != team {
		return submove{}, invalidMove(apperror.ErrFirewalled)
	}

	if server, ok := board.ServerOwner(destination.ID()); ok {
		if server == team {
			return submove{}, invalidMove(apperror.ErrOwnServer)
		}

		return submove{source: source, destination: destination, server: server}, nil
	}

	if card := destination.Card(); card != nil {
		if card.Owner() == team {
			return submove{}, invalidMove(apperror.ErrOwnCardOccupied)
		}

		return submove{source: source, destination: destination, capture: true}, nil
	}

	return submove{source: source, destination: destination}, nil
}

// moveToSquare applies a submove validated by tryMoveToSquare.
func (that *Game) moveToSquare(team entity.Team, move submove, card *entity.Card, reveal bool, result *Result) error {
	board := that.state.Board()

	if move.server != entity.NoTeam {
		stacked, err := entity.NewStackedOnlineCard(card, entity.Infiltrated)
		if err != nil {
			return fmt.Errorf("%w: %w", apperror.ErrInvalidGameState, err)
		}

		if card.LineBoosted() {
			that.uninstallLineBoost(team, card)
			result.addTerminal(entity.LineBoost, team, true)
		}

		if reveal {
			card.SetRevealed(true)
		}

		move.source.SetCard(nil)
		board.PushStack(team, stacked)
		result.addStacked(team, stacked)
		that.state.AddScore(team, card.Type())
		result.Server = &Infiltration{ServerTeam: move.server}

		return nil
	}

	if move.capture {
		enemyCard := move.destination.Card()
		enemy := enemyCard.Owner()
		stacked, err := entity.NewStackedOnlineCard(enemyCard, entity.Captured)
		if err != nil {
			return fmt.Errorf("%w: %w", apperror.ErrInvalidGameState, err)
		}

		enemyCard.SetRevealed(true)
		board.PushStack(team, stacked)
		result.addStacked(team, stacked)

		if enemyCard.LineBoosted() {
			that.uninstallLineBoost(enemy, enemyCard)
			result.addTerminal(entity.LineBoost, enemy, true)
		}

		that.state.AddScore(team, enemyCard.Type())
		result.Capture = &Capture{Subject: team, Object: enemy, Type: enemyCard.Type()}
	}

	move.destination.SetCard(card)
	move.source.SetCard(nil)

	if card.LineBoosted() {
		that.state.Terminal(team).LineBoost = move.destination.ID()
	}

	return nil
}
