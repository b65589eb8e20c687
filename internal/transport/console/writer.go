package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	boardHeader    = "    1   2   3"
	boardSeparator = "  -------------"
)

// Writer prints line oriented text to an output stream.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (that *Writer) Println(message string) error {
	if _, err := io.WriteString(that.out, message+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// RenderBoard - prints the board with 1-based row and column labels.
func (that *Writer) RenderBoard(board entity.Board) error {
	return that.Println(FormatBoard(board))
}

// FormatBoard returns the board text without the trailing newline.
func FormatBoard(board entity.Board) string {
	var b strings.Builder

	b.WriteString(boardHeader + "\n")
	b.WriteString(boardSeparator)

	for row := range entity.BoardSize {
		b.WriteString("\n" + strconv.Itoa(row+1) + " ")
		for col := range entity.BoardSize {
			b.WriteString("| " + board.Cell(row, col) + " ")
		}
		b.WriteString("|\n")
		b.WriteString(boardSeparator)
	}

	return b.String()
}
