// Package render turns game state into plain text for a terminal.
package render

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const (
	emptyGlyph   = "."
	rowSeparator = "---+---+---"
)

type Renderer struct {
	markX       string
	markO       string
	drawMessage string
}

func New(conf config.Game) *Renderer {
	return &Renderer{
		markX:       conf.MarkX,
		markO:       conf.MarkO,
		drawMessage: conf.DrawMessage,
	}
}

func (that *Renderer) Glyph(cell entity.Cell) string {
	switch cell {
	case entity.PlayerX:
		return that.markX
	case entity.PlayerO:
		return that.markO
	default:
		return emptyGlyph
	}
}

// Board - draws the grid, wrapping the cells of the winning line in brackets.
func (that *Renderer) Board(board entity.Board, win entity.WinResult) string {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 0, 3)
		for col := range 3 {
			idx := row*3 + col
			glyph := that.Glyph(board[idx])

			if win.Contains(idx) {
				cells = append(cells, "["+glyph+"]")
			} else {
				cells = append(cells, " "+glyph+" ")
			}
		}

		sb.WriteString(strings.Join(cells, "|") + "\n")
	}

	return sb.String()
}

func (that *Renderer) Status(status entity.Status) string {
	switch status.Outcome {
	case entity.OutcomeWinner:
		return "Winner: " + that.Glyph(status.Mark)
	case entity.OutcomeDraw:
		return that.drawMessage
	default:
		return "Next player: " + that.Glyph(status.Mark)
	}
}

// MoveLabel - returns the text of a move-list entry.
func MoveLabel(move entity.Move) string {
	switch {
	case move.Current:
		return "Current Move #" + strconv.Itoa(move.Number)
	case move.Number == 0:
		return "Start Over"
	default:
		return "Go to move #" + strconv.Itoa(move.Number)
	}
}

// Moves - lists the history, newest first when reversed is set.
func (that *Renderer) Moves(moves []entity.Move, reversed bool) []string {
	labels := make([]string, 0, len(moves))
	for _, move := range moves {
		labels = append(labels, MoveLabel(move))
	}

	if reversed {
		slices.Reverse(labels)
	}

	return labels
}

// Game - writes the full screen: board, status and move list.
func (that *Renderer) Game(w io.Writer, view *usecase.GameView, reversed bool) error {
	var sb strings.Builder

	sb.WriteString(that.Board(view.Board, view.Win))
	sb.WriteString("\n" + that.Status(view.Status) + "\n\n")

	for _, label := range that.Moves(view.Moves, reversed) {
		sb.WriteString("  " + label + "\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write game: %w", err)
	}

	return nil
}
