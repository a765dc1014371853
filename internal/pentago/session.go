package pentago

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/pentago/internal/apperror"
	"github.com/rocketscienceinc/pentago/internal/entity"
)

// Session is one running game: the board, whose turn it is, the phase and the outcome.
// It is not safe for concurrent use; the host drives it from a single event loop.
type Session struct {
	board *Board
	turn  *TurnController

	gameID       string
	active       entity.Sign
	outcome      entity.Outcome
	startingSign entity.Sign
	newID        func() string
}

type Option func(*Session)

// WithStartingSign sets the sign that moves first after every restart.
func WithStartingSign(sign entity.Sign) Option {
	return func(s *Session) {
		if !sign.IsEmpty() {
			s.startingSign = sign
		}
	}
}

// WithIDGenerator replaces the game id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewSession returns a session with a fresh game already started.
func NewSession(opts ...Option) *Session {
	session := &Session{
		board:        NewBoard(),
		turn:         NewTurnController(),
		startingSign: entity.SignCross,
		newID:        uuid.NewString,
	}

	for _, opt := range opts {
		opt(session)
	}

	session.Restart()

	return session
}

// Place - puts the active sign into a quadrant cell and passes the turn to the opponent.
func (that *Session) Place(index, row, col int) (TurnResult, error) {
	if err := that.checkActive(); err != nil {
		return TurnResult{}, err
	}

	if err := that.turn.CheckPlace(); err != nil {
		return TurnResult{}, err
	}

	if err := that.board.ApplyPlacement(index, row, col, that.active); err != nil {
		return TurnResult{}, fmt.Errorf("invalid placement: %w", err)
	}

	that.active = that.active.Opponent()

	from := that.turn.Phase()
	to := that.turn.AfterPlacement(that.board)

	return that.resolve(from, to), nil
}

// Rotate - turns a quadrant by 90 degrees. The active sign does not change.
func (that *Session) Rotate(index int, clockwise bool) (TurnResult, error) {
	if err := that.checkActive(); err != nil {
		return TurnResult{}, err
	}

	if err := that.turn.CheckRotate(); err != nil {
		return TurnResult{}, err
	}

	if err := that.board.ApplyRotation(index, clockwise); err != nil {
		return TurnResult{}, fmt.Errorf("invalid rotation: %w", err)
	}

	from := that.turn.Phase()
	to := that.turn.AfterRotation()

	return that.resolve(from, to), nil
}

// Restart - clears the board and starts a new game with a new id.
func (that *Session) Restart() TurnResult {
	that.board.reset()
	that.turn.Reset()
	that.active = that.startingSign
	that.outcome = entity.OutcomeInProgress
	that.gameID = that.newID()

	return TurnResult{
		Phase:   that.turn.Phase(),
		Outcome: that.outcome,
		Events: []Event{{
			Kind:    EventRestarted,
			GameID:  that.gameID,
			To:      that.turn.Phase(),
			Outcome: that.outcome,
		}},
	}
}

// State returns a snapshot of the session.
func (that *Session) State() Snapshot {
	return Snapshot{
		GameID:  that.gameID,
		Phase:   that.turn.Phase(),
		Active:  that.active,
		Outcome: that.outcome,
		View:    that.board.MergedView(),
	}
}

func (that *Session) GameID() string {
	return that.gameID
}

func (that *Session) IsActive() bool {
	return !that.outcome.IsTerminal()
}

func (that *Session) checkActive() error {
	if !that.IsActive() {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyEnded, that.outcome)
	}

	return nil
}

// resolve runs the detector after a board-changing action and collects the events.
func (that *Session) resolve(from, to entity.Phase) TurnResult {
	result := TurnResult{Phase: to}

	if from != to {
		result.Events = append(result.Events, Event{
			Kind:    EventPhaseChanged,
			GameID:  that.gameID,
			From:    from,
			To:      to,
			Outcome: that.outcome,
		})
	}

	if outcome := Detect(that.board.MergedView()).Outcome(); outcome.IsTerminal() {
		that.outcome = outcome
		result.Events = append(result.Events, Event{
			Kind:    EventGameEnded,
			GameID:  that.gameID,
			From:    from,
			To:      to,
			Outcome: outcome,
		})
	}

	result.Outcome = that.outcome

	return result
}
