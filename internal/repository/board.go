package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rocketscienceinc/mnkgame/internal/entity"
)

// boardSentinel ends a saved layout; anything after it is ignored.
const boardSentinel = "<<EOF"

var (
	ErrNoBoardRows    = errors.New("board file holds no rows")
	ErrRaggedBoardRow = errors.New("board rows have different widths")
)

// BoardRepository loads a saved board layout from the local filesystem.
type BoardRepository interface {
	Load(path string) (*entity.Board, error)
}

type boardRepository struct{}

func NewBoardRepository() BoardRepository {
	return &boardRepository{}
}

// Load reads a plain-text board: rows are |-delimited lines of X, O, or
// blank cells (border lines like +-+-+ are skipped), terminated by a <<EOF
// sentinel line. Any cell character other than X or O counts as empty.
func (that *boardRepository) Load(path string) (*entity.Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board file: %w", err)
	}
	defer file.Close()

	board, err := that.parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse board file %s: %w", path, err)
	}

	return board, nil
}

func (that *boardRepository) parse(r io.Reader) (*entity.Board, error) {
	var rows []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == boardSentinel {
			break
		}
		if strings.HasPrefix(line, "|") {
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoBoardRows
	}

	cols := (len(rows[0]) - 1) / 2
	board, err := entity.NewBoard(len(rows), cols)
	if err != nil {
		return nil, err
	}

	for rowIdx, row := range rows {
		if len(row) != 2*cols+1 {
			return nil, fmt.Errorf("%w: row %d", ErrRaggedBoardRow, rowIdx)
		}
		for col := 0; col < cols; col++ {
			c := entity.Coordinate{Row: rowIdx, Col: col}
			switch row[col*2+1] {
			case 'X':
				board.Place(c, entity.MarkX)
			case 'O':
				board.Place(c, entity.MarkO)
			}
		}
	}

	return board, nil
}
