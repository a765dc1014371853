package stdio

import (
	"encoding/json"

	"github.com/rocketscienceinc/pentago/internal/entity"
	"github.com/rocketscienceinc/pentago/internal/pentago"
)

const actionError = "error"

// Message is one line of the host protocol in either direction.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload holds the arguments of every request; a missing field is a bad request.
type Payload struct {
	SubField   *int    `json:"subfield,omitempty"`
	Row        *int    `json:"row,omitempty"`
	Col        *int    `json:"col,omitempty"`
	Clockwise  *bool   `json:"clockwise,omitempty"`
	Scale      *int    `json:"scale,omitempty"`
	Theme      *string `json:"theme,omitempty"`
	SoundState *int    `json:"sound_state,omitempty"`
}

type ResponsePayload struct {
	Result   *pentago.TurnResult `json:"result,omitempty"`
	State    *pentago.Snapshot   `json:"state,omitempty"`
	Score    *entity.Score       `json:"score,omitempty"`
	Settings *entity.Settings    `json:"settings,omitempty"`
	Theme    *entity.Theme       `json:"theme,omitempty"`
	Themes   []*entity.Theme     `json:"themes,omitempty"`
	Error    string              `json:"error,omitempty"`
	Code     string              `json:"code,omitempty"`
}
