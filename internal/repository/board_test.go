package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mnkgame/internal/entity"
)

func writeBoardFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestBoardRepository_Load(t *testing.T) {
	t.Run("Loads a saved layout with its marks", func(t *testing.T) {
		// Given: a 3x3 layout with four marks on disk
		content := "+-+-+-+\n" +
			"|X| | |\n" +
			"+-+-+-+\n" +
			"| |O| |\n" +
			"+-+-+-+\n" +
			"|X|O| |\n" +
			"+-+-+-+\n" +
			"<<EOF\n" +
			"anything after the sentinel is ignored\n"
		path := writeBoardFile(t, content)

		// When: loading it
		board, err := NewBoardRepository().Load(path)

		// Then: size and marks match the file
		require.NoError(t, err)
		assert.Equal(t, 3, board.Rows())
		assert.Equal(t, 3, board.Cols())
		assert.Equal(t, entity.CellX, board.At(entity.Coordinate{Row: 0, Col: 0}))
		assert.Equal(t, entity.CellO, board.At(entity.Coordinate{Row: 1, Col: 1}))
		assert.Equal(t, entity.CellX, board.At(entity.Coordinate{Row: 2, Col: 0}))
		assert.Equal(t, entity.CellO, board.At(entity.Coordinate{Row: 2, Col: 1}))
		assert.True(t, board.IsEmpty(entity.Coordinate{Row: 0, Col: 1}))

		// Then: a position over it counts the four marks as played moves
		pos, err := entity.NewPosition(board, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, pos.Moves())
	})

	t.Run("Loads a layout without border lines or a sentinel", func(t *testing.T) {
		// Given: only the cell rows
		path := writeBoardFile(t, "|X|O|\n| |X|\n")

		// When: loading it
		board, err := NewBoardRepository().Load(path)

		// Then: the 2x2 layout comes back
		require.NoError(t, err)
		assert.Equal(t, 2, board.Rows())
		assert.Equal(t, 2, board.Cols())
		assert.Equal(t, entity.CellX, board.At(entity.Coordinate{Row: 1, Col: 1}))
	})

	t.Run("Error on rows of different widths", func(t *testing.T) {
		// Given: a second row wider than the first
		path := writeBoardFile(t, "|X| |\n| |O|X|\n<<EOF\n")

		// When: loading it
		_, err := NewBoardRepository().Load(path)

		// Then: an ErrRaggedBoardRow error should be returned
		require.ErrorIs(t, err, ErrRaggedBoardRow)
	})

	t.Run("Error on a row with trailing characters", func(t *testing.T) {
		// Given: a first row with a stray character after the last cell
		path := writeBoardFile(t, "|X| |x\n| |O|\n<<EOF\n")

		// When: loading it
		_, err := NewBoardRepository().Load(path)

		// Then: an ErrRaggedBoardRow error should be returned
		require.ErrorIs(t, err, ErrRaggedBoardRow)
	})

	t.Run("Error when the file holds no rows", func(t *testing.T) {
		// Given: a file with no |-prefixed lines
		path := writeBoardFile(t, "just some text\n<<EOF\n")

		// When: loading it
		_, err := NewBoardRepository().Load(path)

		// Then: an ErrNoBoardRows error should be returned
		require.ErrorIs(t, err, ErrNoBoardRows)
	})

	t.Run("Error when the file does not exist", func(t *testing.T) {
		// When: loading a missing path
		_, err := NewBoardRepository().Load(filepath.Join(t.TempDir(), "nope.txt"))

		// Then: the open failure is reported
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
