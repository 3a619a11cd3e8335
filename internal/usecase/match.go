package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/mnkgame/internal/entity"
	"github.com/rocketscienceinc/mnkgame/transport/console"
)

// decisionSource is the capability the match needs from a player.
type decisionSource interface {
	Name() string
	Choose(pos *entity.Position, mark entity.Mark) (entity.Coordinate, error)
}

// participant pairs a mark with the source deciding its moves.
type participant struct {
	number int
	mark   entity.Mark
	source decisionSource
}

// Match alternates turns between two decision sources on one shared position
// until somebody wins or the board fills up. Committed moves are never taken
// back.
type Match struct {
	logger   *slog.Logger
	console  *console.Console
	position *entity.Position
	players  [2]participant
}

func NewMatch(logger *slog.Logger, terminal *console.Console, position *entity.Position, sourceX, sourceO decisionSource) *Match {
	return &Match{
		logger:   logger.With("component", "match", "match_id", uuid.NewString()),
		console:  terminal,
		position: position,
		players: [2]participant{
			{number: 1, mark: entity.MarkX, source: sourceX},
			{number: 2, mark: entity.MarkO, source: sourceO},
		},
	}
}

// Run plays the match to its end and reports the outcome.
func (that *Match) Run(ctx context.Context) (entity.MatchResult, error) {
	that.console.RenderBoard(that.position.Board())

	for that.position.Moves() < that.position.Capacity() {
		if err := ctx.Err(); err != nil {
			return that.inProgress(), fmt.Errorf("match aborted: %w", err)
		}

		player := that.currentPlayer()
		that.console.Printf("Moves: %d ; Player %d, %s, ", that.position.Moves(), player.number, player.source.Name())

		c, err := player.source.Choose(that.position, player.mark)
		if err != nil {
			return that.inProgress(), fmt.Errorf("player %d move: %w", player.number, err)
		}

		// sources must not propose occupied squares; re-ask without
		// advancing the turn when one does
		if !that.position.Place(c, player.mark) {
			that.console.Printf("Cannot play there, try again.\n")
			that.logger.Warn("occupied square proposed", "player", player.number, "coordinate", c.String())
			continue
		}

		that.console.RenderBoard(that.position.Board())
		that.logger.Info("move played",
			"player", player.number,
			"mark", player.mark.String(),
			"coordinate", c.String(),
			"moves", that.position.Moves(),
		)

		if that.position.IsWinningMove(c, player.mark) {
			that.console.Printf("Player %d, %s, has won!\n", player.number, player.source.Name())
			return entity.MatchResult{Status: entity.StatusWon, Winner: player.mark, Moves: that.position.Moves()}, nil
		}
	}

	that.console.Printf("Draw. Nobody wins.\n")

	return entity.MatchResult{Status: entity.StatusDraw, Moves: that.position.Moves()}, nil
}

func (that *Match) currentPlayer() participant {
	if that.position.TurnMark() == entity.MarkX {
		return that.players[0]
	}

	return that.players[1]
}

func (that *Match) inProgress() entity.MatchResult {
	return entity.MatchResult{Status: entity.StatusInProgress, Moves: that.position.Moves()}
}
