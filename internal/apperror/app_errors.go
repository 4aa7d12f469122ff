package apperror

import "errors"

var (
	ErrMatchEnded   = errors.New("match is already ended")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMark  = errors.New("invalid mark")
	ErrNotFound     = errors.New("not found")

	ErrNegativeScore = errors.New("score counters must not be negative")
)
