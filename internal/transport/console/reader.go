package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Reader yields whitespace separated tokens from an input stream.
type Reader struct {
	source  io.Reader
	scanner *bufio.Scanner
}

func NewReader(source io.Reader) *Reader {
	scanner := bufio.NewScanner(source)
	scanner.Split(bufio.ScanWords)

	return &Reader{
		source:  source,
		scanner: scanner,
	}
}

// NextInt - reads the next token as an integer.
// A token that is not a number is consumed and ErrNotANumber is returned.
func (that *Reader) NextInt() (int, error) {
	token, err := that.NextWord()
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotANumber, token)
	}

	return value, nil
}

// NextWord - reads the next token verbatim.
func (that *Reader) NextWord() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrInputExhausted, err)
		}
		return "", apperror.ErrInputExhausted
	}

	return that.scanner.Text(), nil
}

// Close - closes the underlying stream when it can be closed.
func (that *Reader) Close() error {
	closer, ok := that.source.(io.Closer)
	if !ok {
		return nil
	}

	if err := closer.Close(); err != nil {
		return fmt.Errorf("failed to close input: %w", err)
	}

	return nil
}
