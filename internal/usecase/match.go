package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
	"github.com/rocketscienceinc/rainet-engine/internal/entity"
	"github.com/rocketscienceinc/rainet-engine/internal/game"
	"github.com/rocketscienceinc/rainet-engine/internal/notation"
	"github.com/rocketscienceinc/rainet-engine/internal/pkg"
)

type recordRepo interface {
	CreateOrUpdate(ctx context.Context, record *entity.Record) error
	GetByID(ctx context.Context, id string) (*entity.Record, error)
}

// Rejection is a script line that did not turn into an accepted move.
type Rejection struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// Outcome summarises a replayed match.
type Outcome struct {
	ID       string         `json:"id"`
	Accepted int            `json:"accepted"`
	Rejected []Rejection    `json:"rejected"`
	Winner   entity.Team    `json:"winner,omitempty"`
	Record   *entity.Record `json:"record"`
}

// MatchRunner plays notation scripts through a Game and persists the
// record after every accepted move.
type MatchRunner struct {
	logger     *slog.Logger
	recordRepo recordRepo
}

func NewMatchRunner(logger *slog.Logger, recordRepo recordRepo) *MatchRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &MatchRunner{
		logger:     logger.With("component", "match_runner"),
		recordRepo: recordRepo,
	}
}

// Play starts a new game under id, generating one when empty, and replays the
// lines in order. Blank lines and lines starting with "#" are skipped. Lines
// that fail to parse or break a rule are collected in Outcome.Rejected; lines
// after the game has ended are rejected with apperror.ErrGameFinished.
func (that *MatchRunner) Play(ctx context.Context, id string, args game.StartArgs, lines []string) (*Outcome, error) {
	log := that.logger.With("method", "Play")

	if id == "" {
		var err error
		if id, err = pkg.GenerateGameID(); err != nil {
			return nil, err
		}
	}

	match := game.NewGame(that.logger)
	if err := match.Start(args); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if err := that.save(ctx, id, match); err != nil {
		return nil, err
	}

	outcome := &Outcome{ID: id, Rejected: []Rejection{}}

	for i, raw := range lines {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match %s interrupted: %w", id, err)
		}

		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		err := that.submit(match, text)
		switch {
		case err == nil:
			outcome.Accepted++
			log.Debug("move accepted", "game_id", id, "line", i+1, "move", text)

			if err = that.save(ctx, id, match); err != nil {
				return nil, err
			}
		case errors.Is(err, apperror.ErrInvalidArgument),
			errors.Is(err, apperror.ErrInvalidMove),
			errors.Is(err, apperror.ErrGameFinished):
			outcome.Rejected = append(outcome.Rejected, Rejection{
				Line:   i + 1,
				Text:   text,
				Reason: err.Error(),
				Err:    err,
			})
			log.Info("move rejected", "game_id", id, "line", i+1, "move", text, "error", err)
		default:
			return nil, fmt.Errorf("failed to play line %d of match %s: %w", i+1, id, err)
		}
	}

	record := match.State().Record(id)
	outcome.Record = &record
	outcome.Winner = match.Winner()

	log.Info("match replayed", "game_id", id, "accepted", outcome.Accepted,
		"rejected", len(outcome.Rejected), "winner", outcome.Winner)

	return outcome, nil
}

// Load returns the stored record of a game.
func (that *MatchRunner) Load(ctx context.Context, id string) (*entity.Record, error) {
	record, err := that.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game record %s: %w", id, err)
	}

	return record, nil
}

func (that *MatchRunner) submit(match *game.Game, text string) error {
	if match.IsFinished() {
		return apperror.ErrGameFinished
	}

	move, err := notation.Build(text, match.State().Board())
	if err != nil {
		return err
	}

	_, err = match.SubmitMove(move)

	return err
}

func (that *MatchRunner) save(ctx context.Context, id string, match *game.Game) error {
	record := match.State().Record(id)
	if err := that.recordRepo.CreateOrUpdate(ctx, &record); err != nil {
		return fmt.Errorf("failed to save game record %s: %w", id, err)
	}

	return nil
}
