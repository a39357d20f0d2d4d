package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
)

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func newTestServer(t *testing.T, reversed bool) (*Server, *usecase.GameManager) {
	t.Helper()

	_, st := suite.New(t)

	return New(st.Logger, st.Manager, st.Renderer, reversed), st.Manager
}

func run(t *testing.T, server *Server, input string) string {
	t.Helper()

	var out bytes.Buffer
	err := server.Start(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	return out.String()
}

// runLast feeds setup through Start and returns only the output of the final command.
func runLast(t *testing.T, server *Server, setup, last string) string {
	t.Helper()

	run(t, server, setup)

	var out bytes.Buffer
	require.NoError(t, server.processLine(context.Background(), last, &out))

	return out.String()
}

func TestServer_Start(t *testing.T) {
	t.Run("Shows an empty board on start", func(t *testing.T) {
		server, _ := newTestServer(t, true)

		out := run(t, server, "")

		assert.Contains(t, out, " . | . | . \n")
		assert.Contains(t, out, "Next player: X")
		assert.Contains(t, out, "Current Move #0")
	})

	t.Run("Play until X wins", func(t *testing.T) {
		// Given: a console server
		server, _ := newTestServer(t, false)

		// When: X takes the top row
		screen := runLast(t, server, "play 0\nplay 4\np 1\np 5\n", "play 2")

		// Then: the winner is announced and the line is highlighted
		assert.Contains(t, screen, "[X]|[X]|[X]\n")
		assert.Contains(t, screen, "Winner: X")
		assert.Contains(t, screen, "  Start Over\n  Go to move #1\n")
		assert.True(t, strings.HasSuffix(screen, "  Current Move #5\n"))
	})

	t.Run("Travel back and play a new branch", func(t *testing.T) {
		server, _ := newTestServer(t, false)

		screen := runLast(t, server, "play 0\nplay 4\nplay 1\nplay 5\nplay 2\ntravel 2\n", "play 7")

		assert.Contains(t, screen, "Next player: O")
		assert.Contains(t, screen, "Current Move #3")
		assert.NotContains(t, screen, "#4")
		assert.NotContains(t, screen, "Winner")
	})

	t.Run("Out of range travel reports an error and keeps going", func(t *testing.T) {
		server, _ := newTestServer(t, true)

		out := run(t, server, "play 0\ntravel 99\n")
		assert.Contains(t, out, "error: travel 99: failed to travel: move is out of range")

		var screen bytes.Buffer
		require.NoError(t, server.processLine(context.Background(), "play 4", &screen))
		assert.Contains(t, screen.String(), "Current Move #2")
	})

	t.Run("Occupied cell is ignored silently", func(t *testing.T) {
		server, _ := newTestServer(t, true)

		screen := runLast(t, server, "play 0\n", "play 0")

		assert.NotContains(t, screen, "error")
		assert.Contains(t, screen, "Next player: O")
	})

	t.Run("Bad input", func(t *testing.T) {
		server, _ := newTestServer(t, true)

		out := run(t, server, "dance\nplay\nplay x\nplay 12\n\n")

		assert.Contains(t, out, `error: unknown command: "dance", type help`)
		assert.Contains(t, out, "error: invalid command arguments: play expects one number")
		assert.Contains(t, out, `error: invalid command arguments: "x" is not a number`)
		assert.Contains(t, out, "error: play 12: failed to make turn: invalid cell index: cell 12")
	})

	t.Run("Reverse flips the move list", func(t *testing.T) {
		server, _ := newTestServer(t, true)

		out := run(t, server, "play 0\nreverse\n")

		assert.True(t, strings.HasSuffix(out, "  Start Over\n  Current Move #1\n"))
	})

	t.Run("Quit stops reading and ends the game", func(t *testing.T) {
		server, manager := newTestServer(t, true)

		out := run(t, server, "help\nquit\nplay 0\n")

		assert.Contains(t, out, "travel <move>")
		assert.NotContains(t, out, " X |")

		_, err := manager.GetGame(server.gameID)
		require.Error(t, err)
	})

	t.Run("New starts a fresh game", func(t *testing.T) {
		server, manager := newTestServer(t, true)

		var out bytes.Buffer
		require.NoError(t, server.Start(context.Background(), strings.NewReader("play 0\n"), &out))
		firstID := server.gameID

		out.Reset()
		require.NoError(t, server.processLine(context.Background(), "new", &out))

		assert.NotEqual(t, firstID, server.gameID)
		assert.Contains(t, out.String(), "Current Move #0")

		_, err := manager.GetGame(firstID)
		require.Error(t, err)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		server, _ := newTestServer(t, true)
		reader, writer := io.Pipe()
		defer writer.Close()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() {
			done <- server.Start(ctx, reader, io.Discard)
		}()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("Write failure is returned", func(t *testing.T) {
		server, _ := newTestServer(t, true)

		err := server.Start(context.Background(), strings.NewReader("play 0\n"), failingWriter{})

		require.ErrorIs(t, err, errBrokenPipe)
	})
}
