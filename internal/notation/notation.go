// Package notation reads moves written in a compact chess-like notation.
//
// A line is an optional team prefix followed by one action:
//
//	D2U            online card move from D2 upwards
//	D2UL           line boosted move, up then left
//	E7D+           move that reveals the card if it infiltrates a server
//	lb D2 / lb off install / uninstall Line Boost
//	fw D5 / fw off install / uninstall Firewall
//	404 D2 E2 swap 404 Not Found, swapping the cards (omit "swap" to keep them)
//	vc D7          Virus Check on D7
//	surrender
//
// The prefix is "top:" or "bottom:". Without it the team is inferred from the
// card on the source square, which uninstalls and surrenders cannot do.
package notation

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
	"github.com/rocketscienceinc/rainet-engine/internal/entity"
)

// Parse converts one notation line into a move request.
func Parse(line string) (entity.MoveSpec, error) {
	spec := entity.MoveSpec{}

	body := strings.TrimSpace(line)
	if prefix, rest, ok := strings.Cut(body, ":"); ok {
		team, err := entity.ParseTeam(strings.TrimSpace(prefix))
		if err != nil {
			return entity.MoveSpec{}, err
		}

		spec.Team = team
		body = strings.TrimSpace(rest)
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return entity.MoveSpec{}, fmt.Errorf("%w: empty move", apperror.ErrInvalidArgument)
	}

	var err error
	switch strings.ToLower(fields[0]) {
	case "lb":
		spec.Kind = entity.LineBoostMove
		err = parseInstall(&spec, fields[1:])
	case "fw":
		spec.Kind = entity.FirewallMove
		err = parseInstall(&spec, fields[1:])
	case "404":
		spec.Kind = entity.NotFoundMove
		err = parseNotFound(&spec, fields[1:])
	case "vc":
		spec.Kind = entity.VirusCheckMove
		err = parseSquares(fields[1:], &spec.Source)
	case "surrender":
		spec.Kind = entity.SurrenderMove
		if len(fields) != 1 {
			err = fmt.Errorf("%w: surrender takes no arguments", apperror.ErrInvalidArgument)
		}
	default:
		spec.Kind = entity.OnlineCardMove
		if len(fields) != 1 {
			err = fmt.Errorf("%w: malformed move %q", apperror.ErrInvalidArgument, body)
		} else {
			err = parseOnline(&spec, fields[0])
		}
	}

	if err != nil {
		return entity.MoveSpec{}, err
	}

	return spec, nil
}

// Build parses the line and resolves it against the board.
func Build(line string, board *entity.Board) (entity.Move, error) {
	spec, err := Parse(line)
	if err != nil {
		return entity.Move{}, err
	}

	move, err := spec.Build(board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to build move %q: %w", line, err)
	}

	return move, nil
}

func parseOnline(spec *entity.MoveSpec, token string) error {
	if strings.HasSuffix(token, "+") {
		spec.RevealCard = true
		token = strings.TrimSuffix(token, "+")
	}

	if len(token) < 3 || len(token) > 4 {
		return fmt.Errorf("%w: malformed online card move %q", apperror.ErrInvalidArgument, token)
	}

	source, err := entity.ParseLocation(token[:2])
	if err != nil {
		return err
	}

	spec.Source = source

	if spec.Direction, err = parseDirectionLetter(token[2]); err != nil {
		return err
	}

	if len(token) == 4 {
		if spec.Direction2, err = parseDirectionLetter(token[3]); err != nil {
			return err
		}
	}

	return nil
}

func parseDirectionLetter(letter byte) (entity.Direction, error) {
	return entity.ParseDirection(strings.ToUpper(string(letter)))
}

func parseInstall(spec *entity.MoveSpec, args []string) error {
	if len(args) == 1 && strings.EqualFold(args[0], "off") {
		spec.Uninstall = true
		return nil
	}

	return parseSquares(args, &spec.Source)
}

func parseNotFound(spec *entity.MoveSpec, args []string) error {
	if len(args) == 3 {
		if !strings.EqualFold(args[2], "swap") {
			return fmt.Errorf("%w: expected \"swap\", got %q", apperror.ErrInvalidArgument, args[2])
		}

		spec.Swap = true
		args = args[:2]
	}

	return parseSquares(args, &spec.Source, &spec.Other)
}

func parseSquares(args []string, targets ...*entity.Location) error {
	if len(args) != len(targets) {
		return fmt.Errorf("%w: expected %d squares, got %d", apperror.ErrInvalidArgument, len(targets), len(args))
	}

	for i, arg := range args {
		location, err := entity.ParseLocation(arg)
		if err != nil {
			return err
		}

		*targets[i] = location
	}

	return nil
}

// Format writes a move request back in notation, the inverse of Parse.
func Format(spec entity.MoveSpec) string {
	var body string
	switch spec.Kind {
	case entity.OnlineCardMove:
		body = spec.Source.String() + directionLetter(spec.Direction) + directionLetter(spec.Direction2)
		if spec.RevealCard {
			body += "+"
		}
	case entity.LineBoostMove:
		body = "lb " + installTarget(spec)
	case entity.FirewallMove:
		body = "fw " + installTarget(spec)
	case entity.NotFoundMove:
		body = "404 " + spec.Source.String() + " " + spec.Other.String()
		if spec.Swap {
			body += " swap"
		}
	case entity.VirusCheckMove:
		body = "vc " + spec.Source.String()
	case entity.SurrenderMove:
		body = "surrender"
	}

	if spec.Team != entity.NoTeam {
		return spec.Team.String() + ": " + body
	}

	return body
}

func installTarget(spec entity.MoveSpec) string {
	if spec.Uninstall {
		return "off"
	}

	return spec.Source.String()
}

func directionLetter(direction entity.Direction) string {
	if !direction.Valid() {
		return ""
	}

	return strings.ToUpper(direction.String()[:1])
}
