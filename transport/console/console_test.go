package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mnkgame/internal/apperror"
	"github.com/rocketscienceinc/mnkgame/internal/entity"
)

func TestConsole_PromptCoordinate(t *testing.T) {
	t.Run("Accepts a well-formed pair", func(t *testing.T) {
		// Given: a terminal fed one valid line
		var out bytes.Buffer
		terminal := New(strings.NewReader("1 2\n"), &out)

		// When: prompting on a 3x3 board
		c, err := terminal.PromptCoordinate(3, 3)

		// Then: the coordinate comes back and the prompt was printed
		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 1, Col: 2}, c)
		assert.Contains(t, out.String(), "Where? (row col) ")
	})

	t.Run("Re-prompts until the input is usable", func(t *testing.T) {
		// Given: garbage, an overlong line, out-of-range numbers, then a valid pair
		input := "nonsense\n1 2 3\n9 0\n0 -1\n2 2\n"
		var out bytes.Buffer
		terminal := New(strings.NewReader(input), &out)

		// When: prompting on a 3x3 board
		c, err := terminal.PromptCoordinate(3, 3)

		// Then: the valid pair wins and every rejection was explained
		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 2, Col: 2}, c)
		assert.Contains(t, out.String(), "Invalid numbers, try again: ")
		assert.Contains(t, out.String(), "row out of range [0,3[, try again: ")
		assert.Contains(t, out.String(), "column out of range [0,3[, try again: ")
	})

	t.Run("Error when the input closes without a move", func(t *testing.T) {
		// Given: a terminal whose input is already exhausted
		var out bytes.Buffer
		terminal := New(strings.NewReader(""), &out)

		// When: prompting
		_, err := terminal.PromptCoordinate(3, 3)

		// Then: an ErrInputClosed error should be returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Error when the input closes mid-retry", func(t *testing.T) {
		// Given: one bad line and then nothing
		var out bytes.Buffer
		terminal := New(strings.NewReader("oops\n"), &out)

		// When: prompting
		_, err := terminal.PromptCoordinate(3, 3)

		// Then: an ErrInputClosed error should be returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_RenderBoard(t *testing.T) {
	// Given: a 2x2 board with one mark
	board, err := entity.NewBoard(2, 2)
	require.NoError(t, err)
	require.True(t, board.Place(entity.Coordinate{Row: 0, Col: 0}, entity.MarkX))

	var out bytes.Buffer
	terminal := New(strings.NewReader(""), &out)

	// When: rendering it
	terminal.RenderBoard(board)

	// Then: the bordered grid is written verbatim
	expected := "+-+-+\n" +
		"|X| |\n" +
		"+-+-+\n" +
		"| | |\n" +
		"+-+-+\n"
	require.Equal(t, expected, out.String())
}

func TestConsole_Printf(t *testing.T) {
	var out bytes.Buffer
	terminal := New(strings.NewReader(""), &out)

	terminal.Printf("Moves: %d ; Player %d, %s, ", 4, 1, "(Human)")

	assert.Equal(t, "Moves: 4 ; Player 1, (Human), ", out.String())
}
