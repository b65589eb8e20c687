package apperror

import "errors"

var (
	ErrNotANumber        = errors.New("input is not a number")
	ErrInvalidCoordinate = errors.New("coordinate is out of range")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInputExhausted    = errors.New("input stream is exhausted")
)
