package apperror

import "errors"

// Fatal errors. The caller misused the game, no rule was broken.
var (
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrInvalidGameState   = errors.New("invalid game state")
)

// ErrInvalidArgument is returned when a value fails validation at construction time.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidMove is joined with one of the reasons below whenever a submitted move breaks a rule.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNoSourceSquare    = errors.New("source square not provided")
	ErrEmptySquare       = errors.New("there is no card on that square")
	ErrNotOwnCard        = errors.New("the player does not own the card on that square")
	ErrOffBoard          = errors.New("destination is outside the board")
	ErrFirewalled        = errors.New("destination is protected by an enemy firewall")
	ErrOwnServer         = errors.New("cannot move to own server area")
	ErrOwnCardOccupied   = errors.New("destination is occupied by own card")
	ErrMoveEnded         = errors.New("first submove already ended the move")
	ErrLineBoostRequired = errors.New("second direction requires a line boosted card")
	ErrAlreadyInstalled  = errors.New("terminal card is already installed")
	ErrNotInstalled      = errors.New("terminal card is not installed")
	ErrEnemyCardOnSquare = errors.New("square is occupied by an enemy card")
	ErrEnemyFirewall     = errors.New("square already hosts an enemy firewall")
	ErrCardConsumed      = errors.New("terminal card already consumed")
	ErrInvalidTarget     = errors.New("invalid target square")
)
