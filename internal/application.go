package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mnkgame/internal/apperror"
	"github.com/rocketscienceinc/mnkgame/internal/config"
	"github.com/rocketscienceinc/mnkgame/internal/engine"
	"github.com/rocketscienceinc/mnkgame/internal/entity"
	"github.com/rocketscienceinc/mnkgame/internal/repository"
	"github.com/rocketscienceinc/mnkgame/internal/service"
	"github.com/rocketscienceinc/mnkgame/internal/telemetry"
	"github.com/rocketscienceinc/mnkgame/internal/usecase"
	"github.com/rocketscienceinc/mnkgame/transport/console"
)

// RunApp - wires the game together and plays one match on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	if conf.Telemetry.Enabled {
		shutdown, err := telemetry.Init()
		if err != nil {
			return fmt.Errorf("could not init telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Error("could not shut down telemetry", "error", err)
			}
		}()
	}

	position, err := buildPosition(conf)
	if err != nil {
		return fmt.Errorf("could not build position: %w", err)
	}

	terminal := console.New(os.Stdin, os.Stdout)

	sourceX, err := buildSource(logger, terminal, conf, conf.Players.X)
	if err != nil {
		return fmt.Errorf("player X: %w", err)
	}

	sourceO, err := buildSource(logger, terminal, conf, conf.Players.O)
	if err != nil {
		return fmt.Errorf("player O: %w", err)
	}

	match := usecase.NewMatch(logger, terminal, position, sourceX, sourceO)

	result, err := match.Run(ctx)
	if err != nil {
		return fmt.Errorf("run match: %w", err)
	}

	attrs := []any{"status", string(result.Status), "moves", result.Moves}
	if result.Status == entity.StatusWon {
		attrs = append(attrs, "winner", result.Winner.String())
	}
	log.Info("match finished", attrs...)

	return nil
}

// buildPosition starts from a saved layout when one is configured, otherwise
// from an empty board of the configured size.
func buildPosition(conf *config.Config) (*entity.Position, error) {
	var (
		board *entity.Board
		err   error
	)

	if conf.Board.File != "" {
		board, err = repository.NewBoardRepository().Load(conf.Board.File)
	} else {
		board, err = entity.NewBoard(conf.Board.Rows, conf.Board.Cols)
	}
	if err != nil {
		return nil, err
	}

	return entity.NewPosition(board, conf.Board.WinLength)
}

func buildSource(logger *slog.Logger, terminal *console.Console, conf *config.Config, kind string) (service.DecisionSource, error) {
	switch kind {
	case config.PlayerHuman:
		return service.NewHumanSource(terminal), nil
	case config.PlayerNegamax:
		return service.NewEngineSource(logger, terminal, engine.NewNegamax(conf.AI.NegamaxDepth), "(AI-negamax)")
	case config.PlayerAlphaBeta:
		return service.NewEngineSource(logger, terminal, engine.NewAlphaBeta(conf.AI.AlphaBetaDepth), "(AI-negamax-AB)")
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownPlayerKind, kind)
	}
}
