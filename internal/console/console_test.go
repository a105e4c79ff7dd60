package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var buf bytes.Buffer

	output := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(logger, strings.NewReader(input), output), &buf
}

func TestConsole_Execute(t *testing.T) {
	t.Run("Moves, jumps and sorts", func(t *testing.T) {
		// Given: a new console game
		c, _ := newTestConsole("")

		// When: playing three moves and jumping back
		for _, line := range []string{"m 0", "m 4", "move 8", "j 1", "desc"} {
			quit, err := c.Execute(line)
			require.NoError(t, err, line)
			require.False(t, quit)
		}

		// Then: the session reflects the commands
		assert.Len(t, c.session.History, 4)
		assert.Equal(t, 1, c.session.StepNumber)
		assert.False(t, c.session.XIsNext)
		assert.Equal(t, entity.SortDescending, c.session.SortOrder)
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		c, _ := newTestConsole("")

		_, err := c.Execute("m 9")
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		_, err = c.Execute("j 3")
		require.ErrorIs(t, err, apperror.ErrInvalidStep)

		_, err = c.Execute("m")
		require.ErrorIs(t, err, errMissingNumber)

		_, err = c.Execute("fly away")
		require.ErrorIs(t, err, errUnknownCommand)
	})

	t.Run("New starts over and q quits", func(t *testing.T) {
		c, _ := newTestConsole("")

		_, err := c.Execute("m 4")
		require.NoError(t, err)

		_, err = c.Execute("new")
		require.NoError(t, err)
		assert.Len(t, c.session.History, 1)

		quit, err := c.Execute("q")
		require.NoError(t, err)
		assert.True(t, quit)
	})
}

func TestConsole_Run(t *testing.T) {
	t.Run("Draws the winning board", func(t *testing.T) {
		// Given: X takes the diagonal
		c, buf := newTestConsole("m 0\nm 1\nm 4\nm 5\nm 8\nq\n")

		// When: running the session
		require.NoError(t, c.Run(context.Background()))

		// Then: the last frame shows the winner and the highlighted line
		out := buf.String()
		assert.Contains(t, out, "Winner X")
		assert.Contains(t, out, "[X]| O | 2 ")
		assert.Contains(t, out, " 6 | 7 |[X]")
		assert.Contains(t, out, ">  5. Go to move #5. In the column: 3 and row: 3")
	})

	t.Run("Draws a tie", func(t *testing.T) {
		c, buf := newTestConsole("m 0\nm 4\nm 8\nm 1\nm 7\nm 6\nm 2\nm 5\nm 3\n")

		require.NoError(t, c.Run(context.Background()))

		assert.Contains(t, buf.String(), "The match is drawn")
	})

	t.Run("Reports errors and keeps going", func(t *testing.T) {
		c, buf := newTestConsole("x\nm 4\n")

		require.NoError(t, c.Run(context.Background()))

		out := buf.String()
		assert.Contains(t, out, "unknown command")
		assert.Contains(t, out, helpText)
		assert.Contains(t, out, "Next Player O")
	})

	t.Run("Sorted list starts with the latest move", func(t *testing.T) {
		c, buf := newTestConsole("m 4\nm 0\ndesc\n")

		require.NoError(t, c.Run(context.Background()))

		out := buf.String()
		last := out[strings.LastIndex(out, "Next Player X"):]
		assert.Less(t, strings.Index(last, "Go to move #2"), strings.Index(last, "Go to game start"))
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		c, _ := newTestConsole("m 4\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, c.Run(ctx))
		assert.Len(t, c.session.History, 1)
	})
}
