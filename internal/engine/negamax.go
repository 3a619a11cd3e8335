package engine

import (
	"math"
	"time"

	"github.com/rocketscienceinc/mnkgame/internal/entity"
)

// Negamax is the plain full-width negamax strategy: every empty square is
// explored to the configured depth by mutating the shared position and
// undoing the move on the way back up.
type Negamax struct {
	depth int
}

func NewNegamax(depth int) *Negamax {
	return &Negamax{depth: depth}
}

func (that *Negamax) Search(pos *entity.Position, mark entity.Mark) Result {
	start := time.Now()

	var stats Stats

	bestMove := entity.Coordinate{}
	bestScore := math.MinInt
	pos.ForEachEmpty(func(c entity.Coordinate) bool {
		pos.Place(c, mark)
		score := -that.negamax(pos, that.depth, mark, c, &stats)
		pos.Clear(c)

		if score > bestScore {
			bestScore = score
			bestMove = c
		}

		return true
	})
	if bestScore == math.MinInt { // full board
		bestScore = 0
	}

	stats.Elapsed = time.Since(start)

	return Result{Move: bestMove, Score: bestScore, Stats: stats}
}

// negamax scores pos for the side to move, given that who just played
// current. The winning-move check is purely local to current, so it runs
// before anything else, terminal or not.
func (that *Negamax) negamax(pos *entity.Position, depth int, who entity.Mark, current entity.Coordinate, stats *Stats) int {
	stats.Nodes++

	if pos.IsWinningMove(current, who) {
		return terminalScore(depth)
	}
	if depth == 0 {
		return 0
	}

	bestScore := math.MinInt
	next := who.Other()
	pos.ForEachEmpty(func(c entity.Coordinate) bool {
		pos.Place(c, next)
		score := -that.negamax(pos, depth-1, next, c, stats)
		pos.Clear(c)

		if score > bestScore {
			bestScore = score
		}

		return true
	})
	if bestScore == math.MinInt { // board full, nobody won
		return 0
	}

	return bestScore
}
