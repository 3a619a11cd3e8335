package entity

import (
	"errors"
	"fmt"
)

var ErrInvalidWinLength = errors.New("win length does not fit on the board")

// lineFamilies are the four directions a winning run can lie on.
var lineFamilies = [4]Delta{
	{Row: 0, Col: 1},  // horizontal
	{Row: 1, Col: 0},  // vertical
	{Row: 1, Col: 1},  // diagonal
	{Row: 1, Col: -1}, // anti-diagonal
}

// Position is a board plus the run length required to win and the number of
// moves played so far. The move counter always equals the count of occupied
// squares; Place and Clear keep it in sync, during real play and during
// speculative search alike.
type Position struct {
	board     *Board
	winLength int
	moves     int
}

// NewPosition wraps an existing board, which may already hold moves from a
// saved layout; the move counter is derived from the occupied squares.
func NewPosition(board *Board, winLength int) (*Position, error) {
	if winLength < 1 || winLength > max(board.Rows(), board.Cols()) {
		return nil, fmt.Errorf("%w: %d on a %dx%d board", ErrInvalidWinLength, winLength, board.Rows(), board.Cols())
	}

	moves := 0
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if !board.IsEmpty(Coordinate{Row: row, Col: col}) {
				moves++
			}
		}
	}

	return &Position{board: board, winLength: winLength, moves: moves}, nil
}

func (that *Position) Board() *Board { return that.board }

func (that *Position) WinLength() int { return that.winLength }

func (that *Position) Moves() int { return that.moves }

// Capacity is the total number of squares on the board.
func (that *Position) Capacity() int {
	return that.board.Rows() * that.board.Cols()
}

// TurnMark is the mark that moves next: X on even move counts, O on odd.
func (that *Position) TurnMark() Mark {
	if that.moves%2 == 0 {
		return MarkX
	}

	return MarkO
}

func (that *Position) IsEmpty(c Coordinate) bool {
	return that.board.IsEmpty(c)
}

// Place occupies c with mark. It reports false and changes nothing when the
// square is already taken. This is the single mutation entry point for real
// and speculative moves alike.
func (that *Position) Place(c Coordinate, mark Mark) bool {
	if !that.board.Place(c, mark) {
		return false
	}

	that.moves++

	return true
}

// Clear empties c, undoing a Place. Every speculative Place must be matched
// by exactly one Clear before control returns to the caller that issued it.
func (that *Position) Clear(c Coordinate) {
	if that.board.IsEmpty(c) {
		return
	}

	that.board.Clear(c)
	that.moves--
}

// EmptyCells returns every unoccupied coordinate in row-major order. The
// slice is rebuilt on every call.
func (that *Position) EmptyCells() []Coordinate {
	cells := make([]Coordinate, 0, that.Capacity()-that.moves)
	that.ForEachEmpty(func(c Coordinate) bool {
		cells = append(cells, c)
		return true
	})

	return cells
}

// ForEachEmpty visits the unoccupied coordinates in row-major order until fn
// returns false. Emptiness is checked as each square is visited, so fn may
// occupy and restore squares as long as it restores them before the visit
// moves on.
func (that *Position) ForEachEmpty(fn func(Coordinate) bool) {
	for row := 0; row < that.board.Rows(); row++ {
		for col := 0; col < that.board.Cols(); col++ {
			c := Coordinate{Row: row, Col: col}
			if !that.board.IsEmpty(c) {
				continue
			}
			if !fn(c) {
				return
			}
		}
	}
}

// IsWinningMove reports whether the mark just placed at c completes a run of
// at least the win length in any of the four line families. Only the lines
// through c are inspected, never the whole board.
func (that *Position) IsWinningMove(c Coordinate, mark Mark) bool {
	for _, d := range lineFamilies {
		if that.runLength(c, mark.Cell(), d) >= that.winLength {
			return true
		}
	}

	return false
}

// runLength counts the consecutive squares holding v through c along d,
// walking both directions and counting c itself.
func (that *Position) runLength(c Coordinate, v Cell, d Delta) int {
	run := 1
	for t := c.Sub(d); that.board.Contains(t) && that.board.At(t) == v; t = t.Sub(d) {
		run++
	}
	for t := c.Add(d); that.board.Contains(t) && that.board.At(t) == v; t = t.Add(d) {
		run++
	}

	return run
}

func (that *Position) Clone() *Position {
	return &Position{board: that.board.Clone(), winLength: that.winLength, moves: that.moves}
}
