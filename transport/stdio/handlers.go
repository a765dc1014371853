package stdio

import (
	"context"

	"github.com/rocketscienceinc/pentago/internal/pentago"
)

func (that *Server) handlePlace(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	switch {
	case payload.SubField == nil:
		return nil, missing("subfield")
	case payload.Row == nil:
		return nil, missing("row")
	case payload.Col == nil:
		return nil, missing("col")
	}

	result, err := that.game.Place(ctx, *payload.SubField, *payload.Row, *payload.Col)

	return that.turnResponse(result, err)
}

func (that *Server) handleRotate(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	switch {
	case payload.SubField == nil:
		return nil, missing("subfield")
	case payload.Clockwise == nil:
		return nil, missing("clockwise")
	}

	result, err := that.game.Rotate(ctx, *payload.SubField, *payload.Clockwise)

	return that.turnResponse(result, err)
}

func (that *Server) handleRestart(ctx context.Context, _ *Payload) (*ResponsePayload, error) {
	result := that.game.Restart(ctx)
	state := that.game.State()

	return &ResponsePayload{Result: &result, State: &state}, nil
}

func (that *Server) handleState(_ context.Context, _ *Payload) (*ResponsePayload, error) {
	state := that.game.State()

	return &ResponsePayload{State: &state}, nil
}

func (that *Server) handleScore(ctx context.Context, _ *Payload) (*ResponsePayload, error) {
	score, err := that.game.Score(ctx)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Score: score}, nil
}

func (that *Server) handleScoreReset(ctx context.Context, _ *Payload) (*ResponsePayload, error) {
	if err := that.game.ResetScore(ctx); err != nil {
		return nil, err
	}

	return that.handleScore(ctx, nil)
}

// handleSettings - returns the settings together with the resolved theme palette.
func (that *Server) handleSettings(ctx context.Context, _ *Payload) (*ResponsePayload, error) {
	settings, err := that.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	theme, err := that.settings.Theme(ctx)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Settings: settings, Theme: theme}, nil
}

func (that *Server) handleScale(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	if payload.Scale == nil {
		return nil, missing("scale")
	}

	settings, err := that.settings.SetScale(ctx, *payload.Scale)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Settings: settings}, nil
}

func (that *Server) handleTheme(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	if payload.Theme == nil {
		return nil, missing("theme")
	}

	if _, err := that.settings.SetTheme(ctx, *payload.Theme); err != nil {
		return nil, err
	}

	return that.handleSettings(ctx, payload)
}

func (that *Server) handleSound(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	if payload.SoundState == nil {
		return nil, missing("sound_state")
	}

	settings, err := that.settings.SetSound(ctx, *payload.SoundState)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Settings: settings}, nil
}

func (that *Server) handleSettingsReset(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	if _, err := that.settings.Reset(ctx); err != nil {
		return nil, err
	}

	return that.handleSettings(ctx, payload)
}

func (that *Server) handleThemes(ctx context.Context, _ *Payload) (*ResponsePayload, error) {
	themes, err := that.settings.Themes(ctx)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Themes: themes}, nil
}

// turnResponse - a rejected command is an error; a move that applied but failed to be
// counted still reports its result, with the failure attached.
func (that *Server) turnResponse(result pentago.TurnResult, err error) (*ResponsePayload, error) {
	if err != nil && isRejection(err) {
		return nil, err
	}

	state := that.game.State()
	response := &ResponsePayload{Result: &result, State: &state}

	if err != nil {
		that.logger.Error("move applied with errors", "error", err)
		response.Error = err.Error()
		response.Code = codeInternal
	}

	return response, nil
}
