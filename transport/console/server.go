package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/render"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

var errQuit = errors.New("quit requested")

type uGame interface {
	NewGame() *usecase.GameView
	GetGame(id string) (*usecase.GameView, error)
	MakeTurn(id string, cell int) (*usecase.GameView, bool, error)
	TravelTo(id string, move int) (*usecase.GameView, error)
	EndGame(id string) error
}

// Command is one parsed input line.
type Command struct {
	Action string
	Args   []string
}

type handlerFunc func(ctx context.Context, cmd *Command, out io.Writer) error

// Server reads commands line by line and answers with the rendered game.
type Server struct {
	logger   *slog.Logger
	uGame    uGame
	renderer *render.Renderer

	gameID   string
	reversed bool

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, renderer *render.Renderer, reversed bool) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		uGame:    uGame,
		renderer: renderer,
		reversed: reversed,

		handlers: make(map[string]handlerFunc),
	}

	server.handle(server.handlePlay, "play", "p")
	server.handle(server.handleTravel, "travel", "t")
	server.handle(server.handleReverse, "reverse", "r")
	server.handle(server.handleShow, "show", "s")
	server.handle(server.handleNewGame, "new", "n")
	server.handle(server.handleHelp, "help", "h", "?")
	server.handle(server.handleQuit, "quit", "q", "exit")

	return server
}

func (that *Server) handle(handler handlerFunc, actions ...string) {
	for _, action := range actions {
		that.handlers[action] = handler
	}
}

// Start - starts a new game and processes commands until quit, EOF or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := that.handleNewGame(ctx, nil, out); err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("input closed")
				return nil
			}

			err := that.processLine(ctx, line, out)
			if errors.Is(err, errQuit) {
				log.Info("player quit", "gameID", that.gameID)
				return nil
			}

			if err != nil {
				return err
			}
		}
	}
}

// processLine - runs one command. Only write failures and quit are returned,
// command errors are reported to the player.
func (that *Server) processLine(ctx context.Context, line string, out io.Writer) error {
	log := that.logger.With("method", "processLine")

	cmd, ok := parseCommand(line)
	if !ok {
		return nil
	}

	handler, ok := that.handlers[cmd.Action]
	if !ok {
		log.Debug("unknown command", "action", cmd.Action)
		return that.sendError(out, fmt.Errorf("%w: %q, type help", apperror.ErrUnknownCommand, cmd.Action))
	}

	err := handler(ctx, cmd, out)
	if err == nil || errors.Is(err, errQuit) {
		return err
	}

	var writeErr *writeError
	if errors.As(err, &writeErr) {
		return err
	}

	log.Debug("command failed", "action", cmd.Action, "error", err)

	return that.sendError(out, err)
}

func parseCommand(line string) (*Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	return &Command{
		Action: strings.ToLower(fields[0]),
		Args:   fields[1:],
	}, true
}

type writeError struct {
	err error
}

func (that *writeError) Error() string {
	return "failed to write output: " + that.err.Error()
}

func (that *writeError) Unwrap() error {
	return that.err
}

func (that *Server) write(out io.Writer, text string) error {
	if _, err := io.WriteString(out, text); err != nil {
		return &writeError{err: err}
	}

	return nil
}

func (that *Server) sendError(out io.Writer, err error) error {
	return that.write(out, "error: "+err.Error()+"\n")
}

func (that *Server) sendGame(out io.Writer, view *usecase.GameView) error {
	if err := that.renderer.Game(out, view, that.reversed); err != nil {
		return &writeError{err: err}
	}

	return nil
}
