package stdio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pentago/internal/apperror"
	"github.com/rocketscienceinc/pentago/internal/entity"
	"github.com/rocketscienceinc/pentago/internal/pentago"
	"github.com/rocketscienceinc/pentago/internal/usecase"
	"github.com/rocketscienceinc/pentago/testing/suite"
)

type mockScoreRepo struct {
	mock.Mock
}

func (that *mockScoreRepo) Get(ctx context.Context) (*entity.Score, error) {
	args := that.Called(ctx)
	score, _ := args.Get(0).(*entity.Score)
	return score, args.Error(1)
}

func (that *mockScoreRepo) Record(ctx context.Context, gameID string, outcome entity.Outcome) (bool, error) {
	args := that.Called(ctx, gameID, outcome)
	return args.Bool(0), args.Error(1)
}

func (that *mockScoreRepo) Reset(ctx context.Context) error {
	return that.Called(ctx).Error(0)
}

type mockSettings struct {
	mock.Mock
}

func (that *mockSettings) Get(ctx context.Context) (*entity.Settings, error) {
	args := that.Called(ctx)
	settings, _ := args.Get(0).(*entity.Settings)
	return settings, args.Error(1)
}

func (that *mockSettings) SetScale(ctx context.Context, scale int) (*entity.Settings, error) {
	args := that.Called(ctx, scale)
	settings, _ := args.Get(0).(*entity.Settings)
	return settings, args.Error(1)
}

func (that *mockSettings) SetTheme(ctx context.Context, name string) (*entity.Settings, error) {
	args := that.Called(ctx, name)
	settings, _ := args.Get(0).(*entity.Settings)
	return settings, args.Error(1)
}

func (that *mockSettings) SetSound(ctx context.Context, state int) (*entity.Settings, error) {
	args := that.Called(ctx, state)
	settings, _ := args.Get(0).(*entity.Settings)
	return settings, args.Error(1)
}

func (that *mockSettings) Reset(ctx context.Context) (*entity.Settings, error) {
	args := that.Called(ctx)
	settings, _ := args.Get(0).(*entity.Settings)
	return settings, args.Error(1)
}

func (that *mockSettings) Theme(ctx context.Context) (*entity.Theme, error) {
	args := that.Called(ctx)
	theme, _ := args.Get(0).(*entity.Theme)
	return theme, args.Error(1)
}

func (that *mockSettings) Themes(ctx context.Context) ([]*entity.Theme, error) {
	args := that.Called(ctx)
	themes, _ := args.Get(0).([]*entity.Theme)
	return themes, args.Error(1)
}

func newTestServer(scores *mockScoreRepo, settings *mockSettings) *Server {
	logger := suite.NewLogger()
	session := pentago.NewSession(pentago.WithIDGenerator(func() string { return "g1" }))

	return New(logger, usecase.NewGameUseCase(logger, session, scores), settings)
}

type response struct {
	Action  string
	Payload map[string]any
}

// serve feeds the lines to the server and decodes every response line.
func serve(t *testing.T, server *Server, lines ...string) []response {
	t.Helper()

	var out bytes.Buffer
	err := server.Serve(context.Background(), strings.NewReader(strings.Join(lines, "\n")), &out)
	require.NoError(t, err)

	var responses []response

	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var message Message
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &message))

		resp := response{Action: message.Action}
		require.NoError(t, json.Unmarshal(message.Payload, &resp.Payload))

		responses = append(responses, resp)
	}

	return responses
}

func place(subField, row, col int) string {
	return string(mustMarshal(Message{
		Action:  "game:place",
		Payload: mustMarshal(Payload{SubField: &subField, Row: &row, Col: &col}),
	}))
}

func TestServer_Game(t *testing.T) {
	t.Run("Place_ReturnsResultAndState", func(t *testing.T) {
		// Given: a fresh server
		server := newTestServer(&mockScoreRepo{}, &mockSettings{})

		// When: cross places into the first quadrant
		responses := serve(t, server, place(0, 0, 0))

		// Then: the result and the new view are sent back
		require.Len(t, responses, 1)
		assert.Equal(t, "game:place", responses[0].Action)

		result := responses[0].Payload["result"].(map[string]any)
		assert.Equal(t, "either", result["phase"])
		assert.Equal(t, "in_progress", result["outcome"])

		state := responses[0].Payload["state"].(map[string]any)
		assert.Equal(t, "O", state["active"])
		assert.Equal(t, "X", state["view"].([]any)[0].([]any)[0])
	})

	t.Run("Place_ErrorCodes", func(t *testing.T) {
		server := newTestServer(&mockScoreRepo{}, &mockSettings{})

		responses := serve(t, server,
			place(0, 0, 0),
			`{"action":"game:rotate","payload":{"subfield":1,"clockwise":true}}`,
			place(0, 0, 0),
			place(7, 0, 0),
			place(0, 3, 0),
		)

		require.Len(t, responses, 5)
		assert.Equal(t, "game:rotate", responses[1].Action)
		for i, code := range []string{codeCellOccupied, codeSubFieldRange, codeInvalidCell} {
			assert.Equal(t, actionError, responses[i+2].Action)
			assert.Equal(t, code, responses[i+2].Payload["code"])
		}
	})

	t.Run("Rotate_BeforePlaceRejected", func(t *testing.T) {
		server := newTestServer(&mockScoreRepo{}, &mockSettings{})

		responses := serve(t, server, `{"action":"game:rotate","payload":{"subfield":1,"clockwise":false}}`)

		require.Len(t, responses, 1)
		assert.Equal(t, codeActionNotAllowed, responses[0].Payload["code"])
	})

	t.Run("Win_ScoreFailureStillReportsResult", func(t *testing.T) {
		// Given: a score store that is down
		scores := &mockScoreRepo{}
		scores.On("Record", mock.Anything, "g1", entity.OutcomeCrossWins).
			Return(false, errors.New("redis down")).
			Once()
		server := newTestServer(scores, &mockSettings{})

		// When: cross completes the top row, then tries to move again
		responses := serve(t, server,
			place(0, 0, 0), place(0, 1, 0),
			place(0, 0, 1), place(0, 1, 1),
			place(0, 0, 2), place(0, 1, 2),
			place(1, 0, 0), place(1, 1, 0),
			place(1, 0, 1),
			place(3, 2, 2),
		)

		// Then: the winning move is reported with the failure attached
		require.Len(t, responses, 10)
		win := responses[8]
		assert.Equal(t, "game:place", win.Action)
		assert.Equal(t, codeInternal, win.Payload["code"])
		assert.Equal(t, "cross_wins", win.Payload["result"].(map[string]any)["outcome"])

		// And: the game refuses further moves
		assert.Equal(t, codeGameEnded, responses[9].Payload["code"])
		scores.AssertExpectations(t)
	})

	t.Run("Restart_NewGame", func(t *testing.T) {
		server := newTestServer(&mockScoreRepo{}, &mockSettings{})

		responses := serve(t, server, place(2, 1, 1), `{"action":"game:restart"}`, `{"action":"game:state"}`)

		require.Len(t, responses, 3)
		events := responses[1].Payload["result"].(map[string]any)["events"].([]any)
		assert.Equal(t, "restarted", events[0].(map[string]any)["kind"])

		state := responses[2].Payload["state"].(map[string]any)
		assert.Equal(t, "place", state["phase"])
		assert.Equal(t, "X", state["active"])
	})

	t.Run("Score", func(t *testing.T) {
		scores := &mockScoreRepo{}
		scores.On("Reset", mock.Anything).Return(nil).Once()
		scores.On("Get", mock.Anything).Return(&entity.Score{}, nil).Once()
		scores.On("Get", mock.Anything).Return(&entity.Score{Cross: 2, Zero: 1}, nil).Once()
		server := newTestServer(scores, &mockSettings{})

		responses := serve(t, server, `{"action":"score:reset"}`, `{"action":"score:get"}`)

		require.Len(t, responses, 2)
		assert.Equal(t, map[string]any{"cross": 0.0, "zero": 0.0, "draw": 0.0}, responses[0].Payload["score"])
		assert.Equal(t, map[string]any{"cross": 2.0, "zero": 1.0, "draw": 0.0}, responses[1].Payload["score"])
		scores.AssertExpectations(t)
	})
}

func TestServer_Settings(t *testing.T) {
	t.Run("Get_WithTheme", func(t *testing.T) {
		settings := &mockSettings{}
		settings.On("Get", mock.Anything).Return(&entity.Settings{Scale: 1, Theme: "basic", SoundState: 1}, nil).Once()
		settings.On("Theme", mock.Anything).Return(&entity.Theme{Name: "basic"}, nil).Once()
		server := newTestServer(&mockScoreRepo{}, settings)

		responses := serve(t, server, `{"action":"settings:get"}`)

		require.Len(t, responses, 1)
		assert.Equal(t, "basic", responses[0].Payload["settings"].(map[string]any)["theme"])
		assert.Equal(t, "basic", responses[0].Payload["theme"].(map[string]any)["name"])
	})

	t.Run("Scale_Invalid", func(t *testing.T) {
		settings := &mockSettings{}
		settings.On("SetScale", mock.Anything, 5).Return(nil, apperror.ErrInvalidScale).Once()
		server := newTestServer(&mockScoreRepo{}, settings)

		responses := serve(t, server, `{"action":"settings:scale","payload":{"scale":5}}`)

		require.Len(t, responses, 1)
		assert.Equal(t, codeInvalidScale, responses[0].Payload["code"])
	})

	t.Run("Theme_Unknown", func(t *testing.T) {
		settings := &mockSettings{}
		settings.On("SetTheme", mock.Anything, "neon").Return(nil, apperror.ErrThemeNotFound).Once()
		server := newTestServer(&mockScoreRepo{}, settings)

		responses := serve(t, server, `{"action":"settings:theme","payload":{"theme":"neon"}}`)

		require.Len(t, responses, 1)
		assert.Equal(t, codeThemeNotFound, responses[0].Payload["code"])
	})

	t.Run("Sound", func(t *testing.T) {
		settings := &mockSettings{}
		settings.On("SetSound", mock.Anything, 0).Return(&entity.Settings{Scale: 1, Theme: "basic"}, nil).Once()
		server := newTestServer(&mockScoreRepo{}, settings)

		responses := serve(t, server, `{"action":"settings:sound","payload":{"sound_state":0}}`)

		require.Len(t, responses, 1)
		assert.Equal(t, "settings:sound", responses[0].Action)
		assert.Equal(t, 0.0, responses[0].Payload["settings"].(map[string]any)["sound_state"])
		settings.AssertExpectations(t)
	})

	t.Run("ThemeList", func(t *testing.T) {
		settings := &mockSettings{}
		settings.On("Themes", mock.Anything).Return([]*entity.Theme{{Name: "basic"}, {Name: "pale pink"}}, nil).Once()
		server := newTestServer(&mockScoreRepo{}, settings)

		responses := serve(t, server, `{"action":"theme:list"}`)

		require.Len(t, responses, 1)
		assert.Len(t, responses[0].Payload["themes"], 2)
	})
}

func TestServer_BadInput(t *testing.T) {
	server := newTestServer(&mockScoreRepo{}, &mockSettings{})

	responses := serve(t, server,
		`not json`,
		``,
		`{"action":"game:fly"}`,
		`{"action":"game:place","payload":{"subfield":0}}`,
		`{"action":"settings:scale","payload":{"scale":"big"}}`,
	)

	require.Len(t, responses, 4)
	for i, code := range []string{codeBadRequest, codeUnknownAction, codeBadRequest, codeBadRequest} {
		assert.Equal(t, actionError, responses[i].Action)
		assert.Equal(t, code, responses[i].Payload["code"])
		assert.NotEmpty(t, responses[i].Payload["error"])
	}
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	// Given: an input that never closes
	server := newTestServer(&mockScoreRepo{}, &mockSettings{})
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- server.Serve(ctx, reader, io.Discard)
	}()

	// When: the context is cancelled
	cancel()

	// Then: Serve returns
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not stop after cancel")
	}
}
