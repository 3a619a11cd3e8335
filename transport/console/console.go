package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/mnkgame/internal/apperror"
	"github.com/rocketscienceinc/mnkgame/internal/entity"
)

// Console is the text port the game talks to a terminal through: prompts and
// the board go out, coordinates come in.
type Console struct {
	scanner *bufio.Scanner
	writer  io.Writer
}

func New(r io.Reader, w io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(r), writer: w}
}

// Printf writes a formatted message to the terminal.
func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.writer, format, args...)
}

// RenderBoard draws the bordered board grid.
func (that *Console) RenderBoard(board *entity.Board) {
	fmt.Fprint(that.writer, board.String())
}

// PromptCoordinate asks for a "row col" pair until it gets one inside the
// given bounds, re-prompting on malformed or out-of-range input. Once the
// input is exhausted it fails with apperror.ErrInputClosed.
func (that *Console) PromptCoordinate(rows, cols int) (entity.Coordinate, error) {
	that.Printf("Where? (row col) ")
	for {
		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return entity.Coordinate{}, fmt.Errorf("read move: %w", err)
			}
			return entity.Coordinate{}, apperror.ErrInputClosed
		}

		fields := strings.Fields(that.scanner.Text())
		if len(fields) != 2 {
			that.Printf("Invalid numbers, try again: ")
			continue
		}

		row, rowErr := strconv.Atoi(fields[0])
		col, colErr := strconv.Atoi(fields[1])
		switch {
		case rowErr != nil || colErr != nil:
			that.Printf("Invalid numbers, try again: ")
		case row < 0 || row >= rows:
			that.Printf("row out of range [0,%d[, try again: ", rows)
		case col < 0 || col >= cols:
			that.Printf("column out of range [0,%d[, try again: ", cols)
		default:
			return entity.Coordinate{Row: row, Col: col}, nil
		}
	}
}
