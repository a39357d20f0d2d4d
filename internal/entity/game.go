package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

var ErrInvalidCell = errors.New("invalid cell index")

// Outcome is the state a board is in: still playable, won or drawn.
type Outcome int

const (
	OutcomeNextTurn Outcome = iota
	OutcomeWinner
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWinner:
		return "winner"
	case OutcomeDraw:
		return "draw"
	default:
		return "next_turn"
	}
}

// Status describes the current board. Mark is the winner for OutcomeWinner,
// the player to move for OutcomeNextTurn and EmptyCell for OutcomeDraw.
type Status struct {
	Outcome Outcome
	Mark    Cell
}

func (that Status) IsFinished() bool {
	return that.Outcome != OutcomeNextTurn
}

// Move is one entry of the move history.
type Move struct {
	Number  int
	Board   Board
	Current bool
}

// Game keeps every board produced so far and a pointer to the one on display.
// history[0] is always the empty board and currentMove indexes into history.
// Game is not safe for concurrent use.
type Game struct {
	ID string

	history     []Board
	currentMove int
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		history: []Board{{}},
	}
}

// Play - puts the next mark on cell. Occupied cells and boards that already
// have a winner are ignored: the state is left as is and played is false.
// Anything after the current move is discarded before the new board is appended.
func (that *Game) Play(cell int) (bool, error) {
	if cell < 0 || cell >= BoardSize {
		return false, fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	current := that.CurrentBoard()
	if DetectWin(current).HasWinner() || !current[cell].IsEmpty() {
		return false, nil
	}

	next := current.With(cell, that.NextMark())

	that.history = append(that.history[:that.currentMove+1], next)
	that.currentMove = len(that.history) - 1

	return true, nil
}

// Travel - jumps back to move and drops every later move for good.
func (that *Game) Travel(move int) error {
	if move < 0 || move >= len(that.history) {
		return fmt.Errorf("%w: move %d, history has %d", apperror.ErrMoveOutOfRange, move, len(that.history))
	}

	that.history = that.history[:move+1]
	that.currentMove = move

	return nil
}

func (that *Game) CurrentBoard() Board {
	return that.history[that.currentMove]
}

func (that *Game) CurrentMove() int {
	return that.currentMove
}

func (that *Game) HistoryLen() int {
	return len(that.history)
}

// NextMark - derives whose turn it is from the parity of the current move.
func (that *Game) NextMark() Cell {
	if that.currentMove%2 == 0 {
		return PlayerX
	}

	return PlayerO
}

func (that *Game) Status() Status {
	board := that.CurrentBoard()

	if win := DetectWin(board); win.HasWinner() {
		return Status{Outcome: OutcomeWinner, Mark: win.Winner}
	}

	if IsDraw(board) {
		return Status{Outcome: OutcomeDraw}
	}

	return Status{Outcome: OutcomeNextTurn, Mark: that.NextMark()}
}

// Moves - returns a copy of the history, oldest first.
func (that *Game) Moves() []Move {
	moves := make([]Move, 0, len(that.history))
	for i, board := range that.history {
		moves = append(moves, Move{
			Number:  i,
			Board:   board,
			Current: i == that.currentMove,
		})
	}

	return moves
}
