package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/mnkgame/internal/apperror"
	"github.com/rocketscienceinc/mnkgame/internal/entity"
	"github.com/rocketscienceinc/mnkgame/transport/console"
)

// DecisionSource picks the next move for one player. Implementations must
// return a currently empty coordinate and leave pos unchanged across the
// call.
type DecisionSource interface {
	Name() string
	Choose(pos *entity.Position, mark entity.Mark) (entity.Coordinate, error)
}

type humanSource struct {
	console *console.Console
}

// NewHumanSource - a decision source that asks the person at the terminal.
func NewHumanSource(terminal *console.Console) DecisionSource {
	return &humanSource{console: terminal}
}

func (that *humanSource) Name() string {
	return "(Human)"
}

func (that *humanSource) Choose(pos *entity.Position, _ entity.Mark) (entity.Coordinate, error) {
	c, err := that.console.PromptCoordinate(pos.Board().Rows(), pos.Board().Cols())
	if err != nil {
		if errors.Is(err, apperror.ErrInputClosed) {
			return entity.Coordinate{}, fmt.Errorf("%w: ah ah, you gave up", err)
		}
		return entity.Coordinate{}, fmt.Errorf("prompt move: %w", err)
	}

	return c, nil
}
