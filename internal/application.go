package application

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/rainet-engine/internal/config"
	"github.com/rocketscienceinc/rainet-engine/internal/entity"
	"github.com/rocketscienceinc/rainet-engine/internal/game"
	"github.com/rocketscienceinc/rainet-engine/internal/repository"
	"github.com/rocketscienceinc/rainet-engine/internal/repository/storage"
	"github.com/rocketscienceinc/rainet-engine/internal/usecase"
)

var (
	ErrAddrNotFound  = errors.New("redis address string is empty")
	ErrNothingToDo   = errors.New("either a move script or a game id is required")
	ErrNoScriptInput = errors.New("move script input is missing")
)

// Options selects what the run does. With a Script the moves are replayed
// under GameID; with only a GameID the stored record is printed.
type Options struct {
	Script string
	GameID string
	Input  io.Reader
	Output io.Writer
}

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if opts.Script == "" && opts.GameID == "" {
		return ErrNothingToDo
	}

	recordRepo, closeRepo, err := newRecordRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close record storage", "error", closeErr)
		}
	}()

	runner := usecase.NewMatchRunner(logger, recordRepo)

	if opts.Script == "" {
		record, loadErr := runner.Load(ctx, opts.GameID)
		if loadErr != nil {
			return loadErr
		}

		return writeJSON(opts.Output, record)
	}

	args, err := startArgs(conf.Game)
	if err != nil {
		return err
	}

	lines, err := readScript(opts.Script, opts.Input)
	if err != nil {
		return err
	}

	outcome, err := runner.Play(ctx, opts.GameID, args, lines)
	if err != nil {
		return fmt.Errorf("failed to play match: %w", err)
	}

	return writeJSON(opts.Output, outcome)
}

func newRecordRepository(ctx context.Context, conf *config.Config) (repository.RecordRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryRecordRepository(), func() error { return nil }, nil
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	client, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewRecordRepository(client), client.Close, nil
}

func startArgs(conf config.Game) (game.StartArgs, error) {
	team, err := entity.ParseTeam(conf.StartingTeam)
	if err != nil {
		return game.StartArgs{}, fmt.Errorf("invalid starting team in config: %w", err)
	}

	return game.StartArgs{
		StartingTeam: team,
		Arrangement: entity.Arrangement{
			entity.TeamTop:    conf.Arrangement.Top,
			entity.TeamBottom: conf.Arrangement.Bottom,
		},
	}, nil
}

// readScript reads one move per line from path, or from input when path is "-".
func readScript(path string, input io.Reader) ([]string, error) {
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open move script: %w", err)
		}
		defer file.Close()

		input = file
	}

	if input == nil {
		return nil, ErrNoScriptInput
	}

	var lines []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read move script: %w", err)
	}

	return lines, nil
}

func writeJSON(output io.Writer, value any) error {
	if output == nil {
		output = os.Stdout
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
