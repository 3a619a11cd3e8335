package engine

import (
	"time"

	"github.com/rocketscienceinc/mnkgame/internal/entity"
)

// Scores are expressed from the perspective of the side to move at a node.
// A node whose producing move won the game for its mover scores
// -ScoreBound+remainingDepth: the fewer plies it took the opponent to force
// the win, the worse the score. Anything beyond the decisive threshold means
// one side can no longer escape.
const (
	ScoreBound        = 1000
	decisiveThreshold = 950
)

// Engine picks a move for mark on pos. Implementations must leave pos
// exactly as they found it, must return a currently empty coordinate, and
// are only asked positions holding at least one empty square. Ties are
// broken by the first coordinate in row-major order reaching the maximum.
type Engine interface {
	Search(pos *entity.Position, mark entity.Mark) Result
}

// Result is one finished search: the move picked, its score, and the work
// it took.
type Result struct {
	Move  entity.Coordinate
	Score int
	Stats Stats
}

// Stats counts the work one search did.
type Stats struct {
	Nodes   int64
	Cutoffs int64
	Elapsed time.Duration
}

// Winning reports whether score promises a forced win for the searching side.
func Winning(score int) bool {
	return score > decisiveThreshold
}

// Losing reports whether score shows the opponent can force a win.
func Losing(score int) bool {
	return score < -decisiveThreshold
}

// terminalScore values a node whose producing move won for its mover: a loss
// for the side now to move, milder the deeper below the horizon it lies.
func terminalScore(remainingDepth int) int {
	return -ScoreBound + remainingDepth
}
