package stdio

import (
	"errors"

	"github.com/rocketscienceinc/pentago/internal/apperror"
)

const (
	codeCellOccupied     = "cell_occupied"
	codeSubFieldRange    = "subfield_out_of_range"
	codeActionNotAllowed = "action_not_allowed"
	codeGameEnded        = "game_ended"
	codeInvalidCell      = "invalid_cell"
	codeInvalidScale     = "invalid_scale"
	codeThemeNotFound    = "theme_not_found"
	codeBadRequest       = "bad_request"
	codeUnknownAction    = "unknown_action"
	codeInternal         = "internal"
)

var errBadRequest = errors.New("bad request")

var errorCodes = []struct {
	err  error
	code string
}{
	{apperror.ErrCellOccupied, codeCellOccupied},
	{apperror.ErrSubFieldIndexOutOfRange, codeSubFieldRange},
	{apperror.ErrActionNotAllowedInPhase, codeActionNotAllowed},
	{apperror.ErrGameAlreadyEnded, codeGameEnded},
	{apperror.ErrInvalidCell, codeInvalidCell},
	{apperror.ErrInvalidScale, codeInvalidScale},
	{apperror.ErrThemeNotFound, codeThemeNotFound},
	{errBadRequest, codeBadRequest},
	{apperror.ErrUnknownAction, codeUnknownAction},
}

// errorCode maps an error to the code the UI switches on.
func errorCode(err error) string {
	for _, known := range errorCodes {
		if errors.Is(err, known.err) {
			return known.code
		}
	}

	return codeInternal
}

// isRejection reports whether err means the command was refused and nothing changed.
func isRejection(err error) bool {
	return errorCode(err) != codeInternal
}
