package entity

import "fmt"

// Phase tells which kind of action is legal next.
type Phase uint8

const (
	PhasePlaceOnly Phase = iota
	PhaseRotateOnly
	PhaseEither
)

func (that Phase) CanPlace() bool {
	switch that {
	case PhasePlaceOnly, PhaseEither:
		return true
	case PhaseRotateOnly:
		return false
	default:
		panic(fmt.Sprintf("entity: invalid phase %d", uint8(that)))
	}
}

func (that Phase) CanRotate() bool {
	switch that {
	case PhaseRotateOnly, PhaseEither:
		return true
	case PhasePlaceOnly:
		return false
	default:
		panic(fmt.Sprintf("entity: invalid phase %d", uint8(that)))
	}
}

func (that Phase) String() string {
	switch that {
	case PhasePlaceOnly:
		return "place"
	case PhaseRotateOnly:
		return "rotate"
	case PhaseEither:
		return "either"
	default:
		panic(fmt.Sprintf("entity: invalid phase %d", uint8(that)))
	}
}

func (that Phase) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// Outcome is the result of a game as seen from outside the engine.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeCrossWins
	OutcomeZeroWins
	OutcomeDraw
)

// IsTerminal reports whether the game is over.
func (that Outcome) IsTerminal() bool {
	return that != OutcomeInProgress
}

func (that Outcome) String() string {
	switch that {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeCrossWins:
		return "cross_wins"
	case OutcomeZeroWins:
		return "zero_wins"
	case OutcomeDraw:
		return "draw"
	default:
		panic(fmt.Sprintf("entity: invalid outcome %d", uint8(that)))
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}
