package engine

import (
	"math"
	"time"

	"github.com/rocketscienceinc/mnkgame/internal/entity"
)

// AlphaBeta is negamax with alpha-beta pruning. It returns the same root
// score as Negamax for every position; only the chosen move can differ,
// because a cutoff may keep a later tying candidate from being evaluated.
type AlphaBeta struct {
	depth int
}

func NewAlphaBeta(depth int) *AlphaBeta {
	return &AlphaBeta{depth: depth}
}

func (that *AlphaBeta) Search(pos *entity.Position, mark entity.Mark) Result {
	start := time.Now()

	var stats Stats

	bestMove := entity.Coordinate{}
	bestScore := math.MinInt
	alpha, beta := -ScoreBound, ScoreBound
	pos.ForEachEmpty(func(c entity.Coordinate) bool {
		pos.Place(c, mark)
		score := -that.negamax(pos, that.depth, mark, c, -beta, -alpha, &stats)
		pos.Clear(c)

		if score > bestScore {
			bestScore = score
			bestMove = c
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				stats.Cutoffs++
				return false
			}
		}

		return true
	})
	if bestScore == math.MinInt { // full board
		bestScore = 0
	}

	stats.Elapsed = time.Since(start)

	return Result{Move: bestMove, Score: bestScore, Stats: stats}
}

// negamax mirrors Negamax.negamax with an [alpha, beta] window threaded
// through; the child window is negated and swapped to keep the symmetric
// score convention.
func (that *AlphaBeta) negamax(pos *entity.Position, depth int, who entity.Mark, current entity.Coordinate, alpha, beta int, stats *Stats) int {
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
		score := -that.negamax(pos, depth-1, next, c, -beta, -alpha, stats)
		pos.Clear(c)

		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				stats.Cutoffs++
				return false
			}
		}

		return true
	})
	if bestScore == math.MinInt { // board full, nobody won
		return 0
	}

	return bestScore
}
