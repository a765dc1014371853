package apperror

import "errors"

var (
	ErrCellOccupied            = errors.New("cell is already occupied")
	ErrInvalidCell             = errors.New("invalid cell")
	ErrSubFieldIndexOutOfRange = errors.New("subfield index out of range")
	ErrActionNotAllowedInPhase = errors.New("action is not allowed in current phase")
	ErrGameAlreadyEnded        = errors.New("game is already ended")

	ErrNotFound      = errors.New("not found")
	ErrThemeNotFound = errors.New("theme not found")
	ErrInvalidScale  = errors.New("invalid scale")
	ErrUnknownAction = errors.New("unknown action")
)
