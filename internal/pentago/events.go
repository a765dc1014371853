package pentago

import "github.com/rocketscienceinc/pentago/internal/entity"

type EventKind string

const (
	EventPhaseChanged EventKind = "phase_changed"
	EventGameEnded    EventKind = "game_ended"
	EventRestarted    EventKind = "restarted"
)

// Event is something a command caused that collaborators may react to.
type Event struct {
	Kind    EventKind      `json:"kind"`
	GameID  string         `json:"game_id"`
	From    entity.Phase   `json:"from"`
	To      entity.Phase   `json:"to"`
	Outcome entity.Outcome `json:"outcome"`
}

// TurnResult is what a successful command leaves behind.
type TurnResult struct {
	Phase   entity.Phase   `json:"phase"`
	Outcome entity.Outcome `json:"outcome"`
	Events  []Event        `json:"events,omitempty"`
}

// GameEnded returns the game-ended event of the result, if any.
func (that TurnResult) GameEnded() (Event, bool) {
	for _, event := range that.Events {
		if event.Kind == EventGameEnded {
			return event, true
		}
	}

	return Event{}, false
}

// Snapshot is a read-only copy of the session for the renderer.
type Snapshot struct {
	GameID  string         `json:"game_id"`
	Phase   entity.Phase   `json:"phase"`
	Active  entity.Sign    `json:"active"`
	Outcome entity.Outcome `json:"outcome"`
	View    entity.Grid    `json:"view"`
}
