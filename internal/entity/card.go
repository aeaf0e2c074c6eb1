package entity

import (
	"fmt"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
)

const (
	CardsPerType = 4
	DeckSize     = 2 * CardsPerType
)

// OnlineCardType distinguishes the two online cards.
type OnlineCardType int

const (
	Link OnlineCardType = iota + 1
	Virus
)

var OnlineCardTypes = []OnlineCardType{Link, Virus}

func (that OnlineCardType) Valid() bool {
	return that == Link || that == Virus
}

func (that OnlineCardType) String() string {
	switch that {
	case Link:
		return "link"
	case Virus:
		return "virus"
	default:
		return ""
	}
}

func (that OnlineCardType) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *OnlineCardType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "link":
		*that = Link
	case "virus":
		*that = Virus
	default:
		return fmt.Errorf("%w: unknown online card type %q", apperror.ErrInvalidArgument, text)
	}

	return nil
}

// Card is one online card. Type and owner never change after construction.
type Card struct {
	id          int
	kind        OnlineCardType
	owner       Team
	revealed    bool
	lineBoosted bool
}

func NewCard(id int, kind OnlineCardType, owner Team) (*Card, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: card type %d", apperror.ErrInvalidArgument, kind)
	}

	if !owner.Valid() {
		return nil, fmt.Errorf("%w: card owner %d", apperror.ErrInvalidArgument, owner)
	}

	return &Card{id: id, kind: kind, owner: owner}, nil
}

// ID is the dealing position of the card within its owner's deck.
func (that *Card) ID() int {
	return that.id
}

func (that *Card) Type() OnlineCardType {
	return that.kind
}

func (that *Card) Owner() Team {
	return that.owner
}

// Revealed reports whether the card identity is known to the opponent.
func (that *Card) Revealed() bool {
	return that.revealed
}

func (that *Card) SetRevealed(revealed bool) {
	that.revealed = revealed
}

// LineBoosted reports whether the card carries its team's Line Boost.
func (that *Card) LineBoosted() bool {
	return that.lineBoosted
}

func (that *Card) SetLineBoosted(lineBoosted bool) {
	that.lineBoosted = lineBoosted
}

// DealArrangement builds a full deck for the owner. Each arrangement entry is
// the number of links to place before the next virus; cards left over once
// the entries run out follow, links first.
func DealArrangement(owner Team, arrangement []int) ([]*Card, error) {
	if !owner.Valid() {
		return nil, fmt.Errorf("%w: card owner %d", apperror.ErrInvalidArgument, owner)
	}

	links, viruses := CardsPerType, CardsPerType
	order := make([]OnlineCardType, 0, DeckSize)

	for _, linkCount := range arrangement {
		if linkCount < 0 {
			return nil, fmt.Errorf("%w: negative link count %d", apperror.ErrInvalidArgument, linkCount)
		}

		for ; linkCount > 0 && links > 0; linkCount-- {
			order = append(order, Link)
			links--
		}

		if viruses == 0 {
			break
		}

		order = append(order, Virus)
		viruses--
	}

	for ; links > 0; links-- {
		order = append(order, Link)
	}

	for ; viruses > 0; viruses-- {
		order = append(order, Virus)
	}

	cards := make([]*Card, 0, DeckSize)
	for id, kind := range order {
		card, err := NewCard(id, kind, owner)
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// StackCause tells how an online card left the board.
type StackCause int

const (
	Infiltrated StackCause = iota + 1
	Captured
)

func (that StackCause) Valid() bool {
	return that == Infiltrated || that == Captured
}

func (that StackCause) String() string {
	switch that {
	case Infiltrated:
		return "infiltrated"
	case Captured:
		return "captured"
	default:
		return ""
	}
}

func (that StackCause) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *StackCause) UnmarshalText(text []byte) error {
	switch string(text) {
	case "infiltrated":
		*that = Infiltrated
	case "captured":
		*that = Captured
	default:
		return fmt.Errorf("%w: unknown stack cause %q", apperror.ErrInvalidArgument, text)
	}

	return nil
}

// StackedOnlineCard is an immutable entry of a stack area.
type StackedOnlineCard struct {
	card  *Card
	cause StackCause
}

func NewStackedOnlineCard(card *Card, cause StackCause) (StackedOnlineCard, error) {
	if card == nil {
		return StackedOnlineCard{}, fmt.Errorf("%w: stacked card is nil", apperror.ErrInvalidArgument)
	}

	if !cause.Valid() {
		return StackedOnlineCard{}, fmt.Errorf("%w: stack cause %d", apperror.ErrInvalidArgument, cause)
	}

	return StackedOnlineCard{card: card, cause: cause}, nil
}

func (that StackedOnlineCard) Card() *Card {
	return that.card
}

func (that StackedOnlineCard) Cause() StackCause {
	return that.cause
}
