package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = "-"

	// BoardSize is the length of a row or a column.
	BoardSize = 3
)

type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// WinCombos lists every line of the board as row-major cell indexes.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the cells in row-major order.
type Board [BoardSize * BoardSize]string

// Cell returns the mark at row, col.
func (that Board) Cell(row, col int) string {
	return that[row*BoardSize+col]
}

// Game is the state of a single round: the board and whose turn it is.
type Game struct {
	ID     string
	Board  Board
	Turn   string
	Winner string
	Status string
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Initialize()

	return game
}

// Initialize - clears every cell and gives the first turn to X.
func (that *Game) Initialize() {
	for i := range that.Board {
		that.Board[i] = EmptyCell
	}

	that.Turn = PlayerX
	that.Winner = ""
	that.Status = StatusOngoing
}

// Place - puts the current player's mark on row, col. The turn is not toggled.
func (that *Game) Place(row, col int) error {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCoordinate, row, col)
	}

	cell := row*BoardSize + col
	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, col)
	}

	that.Board[cell] = that.Turn

	return nil
}

// IsWinner reports whether mark occupies a full row, column or diagonal.
func (that *Game) IsWinner(mark string) bool {
	return IsWinner(that.Board, mark)
}

// IsDraw reports whether the board has no empty cell left.
func (that *Game) IsDraw() bool {
	return IsFull(that.Board)
}

func (that *Game) ToggleTurn() {
	if that.Turn == PlayerX {
		that.Turn = PlayerO
		return
	}
	that.Turn = PlayerX
}

// Resolve - applies the end of turn rule for the player who just moved:
// a win is checked first, then a draw, and only then the turn passes.
func (that *Game) Resolve() Outcome {
	switch {
	case that.IsWinner(that.Turn):
		that.Winner = that.Turn
		that.Status = StatusFinished
		return OutcomeWin
	case that.IsDraw():
		that.Status = StatusFinished
		return OutcomeDraw
	default:
		that.ToggleTurn()
		return OutcomeOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func IsWinner(board Board, mark string) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
