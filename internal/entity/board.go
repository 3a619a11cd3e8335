package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the occupant of a single board square.
type Cell byte

const (
	CellEmpty Cell = ' '
	CellX     Cell = 'X'
	CellO     Cell = 'O'
)

var ErrInvalidBoardSize = errors.New("board needs at least one row and one column")

// Coordinate addresses a square as (row, col), both zero-based.
type Coordinate struct {
	Row int
	Col int
}

func (that Coordinate) String() string {
	return fmt.Sprintf("{%d,%d}", that.Row, that.Col)
}

// Delta is the step between two coordinates, used to walk lines.
type Delta struct {
	Row int
	Col int
}

// Add moves the coordinate one step along d.
func (that Coordinate) Add(d Delta) Coordinate {
	return Coordinate{Row: that.Row + d.Row, Col: that.Col + d.Col}
}

// Sub moves the coordinate one step against d.
func (that Coordinate) Sub(d Delta) Coordinate {
	return Coordinate{Row: that.Row - d.Row, Col: that.Col - d.Col}
}

// Board is a rectangular grid of cells whose size is fixed at construction.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBoardSize, rows, cols)
	}

	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = CellEmpty
	}

	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (that *Board) Rows() int { return that.rows }

func (that *Board) Cols() int { return that.cols }

// Contains reports whether c addresses a square on the board.
func (that *Board) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < that.rows && c.Col >= 0 && c.Col < that.cols
}

// At returns the occupant of the square at c. Addressing a square outside
// the board is a programming error and panics.
func (that *Board) At(c Coordinate) Cell {
	return that.cells[that.index(c)]
}

func (that *Board) IsEmpty(c Coordinate) bool {
	return that.At(c) == CellEmpty
}

// Place puts mark on the square at c. It reports false and leaves the board
// untouched when the square is already occupied.
func (that *Board) Place(c Coordinate, mark Mark) bool {
	i := that.index(c)
	if that.cells[i] != CellEmpty {
		return false
	}

	that.cells[i] = mark.Cell()

	return true
}

// Clear empties the square at c, undoing a Place.
func (that *Board) Clear(c Coordinate) {
	that.cells[that.index(c)] = CellEmpty
}

func (that *Board) Clone() *Board {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)

	return &Board{rows: that.rows, cols: that.cols, cells: cells}
}

// String renders the board as a bordered text grid, row-major.
func (that *Board) String() string {
	var b strings.Builder

	that.writeRule(&b)
	for row := 0; row < that.rows; row++ {
		b.WriteString("\n|")
		for col := 0; col < that.cols; col++ {
			b.WriteByte(byte(that.At(Coordinate{Row: row, Col: col})))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
		that.writeRule(&b)
	}
	b.WriteByte('\n')

	return b.String()
}

func (that *Board) writeRule(b *strings.Builder) {
	b.WriteByte('+')
	for col := 0; col < that.cols; col++ {
		b.WriteString("-+")
	}
}

func (that *Board) index(c Coordinate) int {
	if !that.Contains(c) {
		panic(fmt.Sprintf("entity: coordinate %v outside %dx%d board", c, that.rows, that.cols))
	}

	return c.Row*that.cols + c.Col
}
