package entity

// Cell is the content of a single square: empty or one of the two marks.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

const BoardSize = 9

// Lines lists every triple that wins when filled with one mark.
// Order matters: rows top-to-bottom, columns left-to-right, then both diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Board is a 3x3 grid in row-major order. It is an array, so every
// assignment copies it and a stored board can't be changed through another.
type Board [BoardSize]Cell

// With - returns a copy of the board with cell set to mark.
func (that Board) With(cell int, mark Cell) Board {
	that[cell] = mark
	return that
}

// WinResult reports the first completed line found on a board, if any.
type WinResult struct {
	Winner Cell
	Line   [3]int
}

func (that WinResult) HasWinner() bool {
	return that.Winner != EmptyCell
}

// Contains - reports whether cell is part of the winning line.
func (that WinResult) Contains(cell int) bool {
	if !that.HasWinner() {
		return false
	}

	for _, idx := range that.Line {
		if idx == cell {
			return true
		}
	}

	return false
}

// DetectWin - returns the first line in Lines holding three identical marks.
func DetectWin(board Board) WinResult {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return WinResult{Winner: a, Line: line}
		}
	}

	return WinResult{}
}

// IsDraw - reports whether every cell is filled. It does not look for a
// completed line, so callers check DetectWin first.
func IsDraw(board Board) bool {
	for _, cell := range board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
