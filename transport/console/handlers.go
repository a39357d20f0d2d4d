package console

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

const helpText = `commands:
  play <cell>    place the next mark, cells 0-8 left to right, top to bottom
  travel <move>  go back to a move, later moves are discarded
  reverse        flip the order of the move list
  show           print the board again
  new            start a new game
  quit           leave
`

func (that *Server) handlePlay(_ context.Context, cmd *Command, out io.Writer) error {
	cell, err := intArg(cmd)
	if err != nil {
		return err
	}

	view, _, err := that.uGame.MakeTurn(that.gameID, cell)
	if err != nil {
		return fmt.Errorf("play %d: %w", cell, err)
	}

	return that.sendGame(out, view)
}

func (that *Server) handleTravel(_ context.Context, cmd *Command, out io.Writer) error {
	move, err := intArg(cmd)
	if err != nil {
		return err
	}

	view, err := that.uGame.TravelTo(that.gameID, move)
	if err != nil {
		return fmt.Errorf("travel %d: %w", move, err)
	}

	return that.sendGame(out, view)
}

func (that *Server) handleReverse(ctx context.Context, _ *Command, out io.Writer) error {
	that.reversed = !that.reversed

	return that.handleShow(ctx, nil, out)
}

func (that *Server) handleShow(_ context.Context, _ *Command, out io.Writer) error {
	view, err := that.uGame.GetGame(that.gameID)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	return that.sendGame(out, view)
}

func (that *Server) handleNewGame(_ context.Context, _ *Command, out io.Writer) error {
	log := that.logger.With("method", "handleNewGame")

	if that.gameID != "" {
		if err := that.uGame.EndGame(that.gameID); err != nil {
			log.Error("failed to end game", "gameID", that.gameID, "error", err)
		}
	}

	view := that.uGame.NewGame()
	that.gameID = view.ID

	return that.sendGame(out, view)
}

func (that *Server) handleHelp(_ context.Context, _ *Command, out io.Writer) error {
	return that.write(out, helpText)
}

func (that *Server) handleQuit(_ context.Context, _ *Command, _ io.Writer) error {
	if err := that.uGame.EndGame(that.gameID); err != nil {
		that.logger.Error("failed to end game", "gameID", that.gameID, "error", err)
	}

	return errQuit
}

func intArg(cmd *Command) (int, error) {
	if len(cmd.Args) != 1 {
		return 0, fmt.Errorf("%w: %s expects one number", apperror.ErrInvalidArgs, cmd.Action)
	}

	value, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidArgs, cmd.Args[0])
	}

	return value, nil
}
