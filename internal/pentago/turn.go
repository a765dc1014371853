package pentago

import (
	"fmt"

	"github.com/rocketscienceinc/pentago/internal/apperror"
	"github.com/rocketscienceinc/pentago/internal/entity"
)

// TurnController decides which action is legal next.
//
// After a rotation only a placement may follow. After a placement the next action is
// a rotation, unless some quadrant is still completely empty: then the player may also
// skip the rotation and the opponent places right away.
type TurnController struct {
	phase entity.Phase
}

func NewTurnController() *TurnController {
	return &TurnController{phase: entity.PhasePlaceOnly}
}

func (that *TurnController) Phase() entity.Phase {
	return that.phase
}

func (that *TurnController) CheckPlace() error {
	if !that.phase.CanPlace() {
		return fmt.Errorf("%w: cannot place in phase %s", apperror.ErrActionNotAllowedInPhase, that.phase)
	}

	return nil
}

func (that *TurnController) CheckRotate() error {
	if !that.phase.CanRotate() {
		return fmt.Errorf("%w: cannot rotate in phase %s", apperror.ErrActionNotAllowedInPhase, that.phase)
	}

	return nil
}

// AfterPlacement - advances the phase once a mark has been placed on board.
func (that *TurnController) AfterPlacement(board *Board) entity.Phase {
	if board.IsAnySubFieldEmpty() {
		that.phase = entity.PhaseEither
	} else {
		that.phase = entity.PhaseRotateOnly
	}

	return that.phase
}

// AfterRotation - advances the phase once a quadrant has been rotated.
func (that *TurnController) AfterRotation() entity.Phase {
	that.phase = entity.PhasePlaceOnly

	return that.phase
}

func (that *TurnController) Reset() {
	that.phase = entity.PhasePlaceOnly
}
