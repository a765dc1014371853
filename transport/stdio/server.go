package stdio

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/pentago/internal/apperror"
	"github.com/rocketscienceinc/pentago/internal/entity"
	"github.com/rocketscienceinc/pentago/internal/pentago"
)

const maxLineSize = 64 * 1024

type gameUseCase interface {
	Place(ctx context.Context, index, row, col int) (pentago.TurnResult, error)
	Rotate(ctx context.Context, index int, clockwise bool) (pentago.TurnResult, error)
	Restart(ctx context.Context) pentago.TurnResult
	State() pentago.Snapshot
	Score(ctx context.Context) (*entity.Score, error)
	ResetScore(ctx context.Context) error
}

type settingsUseCase interface {
	Get(ctx context.Context) (*entity.Settings, error)
	SetScale(ctx context.Context, scale int) (*entity.Settings, error)
	SetTheme(ctx context.Context, name string) (*entity.Settings, error)
	SetSound(ctx context.Context, state int) (*entity.Settings, error)
	Reset(ctx context.Context) (*entity.Settings, error)
	Theme(ctx context.Context) (*entity.Theme, error)
	Themes(ctx context.Context) ([]*entity.Theme, error)
}

type handler func(ctx context.Context, payload *Payload) (*ResponsePayload, error)

// Server answers line-delimited JSON commands from the UI process.
type Server struct {
	logger *slog.Logger

	game     gameUseCase
	settings settingsUseCase

	handlers map[string]handler
}

func New(logger *slog.Logger, game gameUseCase, settings settingsUseCase) *Server {
	server := &Server{
		logger:   logger.With("component", "stdio"),
		game:     game,
		settings: settings,

		handlers: make(map[string]handler),
	}

	server.handlers["game:place"] = server.handlePlace
	server.handlers["game:rotate"] = server.handleRotate
	server.handlers["game:restart"] = server.handleRestart
	server.handlers["game:state"] = server.handleState
	server.handlers["score:get"] = server.handleScore
	server.handlers["score:reset"] = server.handleScoreReset
	server.handlers["settings:get"] = server.handleSettings
	server.handlers["settings:scale"] = server.handleScale
	server.handlers["settings:theme"] = server.handleTheme
	server.handlers["settings:sound"] = server.handleSound
	server.handlers["settings:reset"] = server.handleSettingsReset
	server.handlers["theme:list"] = server.handleThemes

	return server
}

// Serve - reads commands from reader until EOF or ctx is done, writing one response per command.
func (that *Server) Serve(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Serve")

	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	out := bufio.NewWriter(writer)

	for {
		select {
		case <-ctx.Done():
			log.Info("context done, stopping")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}

				log.Info("input closed, stopping")

				return nil
			}

			if len(line) == 0 {
				continue
			}

			if err := that.sendMessage(out, that.handleLine(ctx, line)); err != nil {
				return err
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, line []byte) Message {
	log := that.logger.With("method", "handleLine")

	var message Message
	if err := json.Unmarshal(line, &message); err != nil {
		log.Warn("failed to unmarshal message", "error", err)
		return errorMessage(fmt.Errorf("%w: %w", errBadRequest, err))
	}

	handle, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action", "action", message.Action)
		return errorMessage(fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action))
	}

	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Warn("failed to unmarshal payload", "action", message.Action, "error", err)
			return errorMessage(fmt.Errorf("%w: %w", errBadRequest, err))
		}
	}

	response, err := handle(ctx, &payload)
	if err != nil {
		if !isRejection(err) {
			log.Error("failed to process message", "action", message.Action, "error", err)
		}

		return errorMessage(err)
	}

	return Message{Action: message.Action, Payload: mustMarshal(response)}
}

func (that *Server) sendMessage(out *bufio.Writer, message Message) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	body = append(body, '\n')

	if _, err = out.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	if err = out.Flush(); err != nil {
		return fmt.Errorf("failed to flush response: %w", err)
	}

	return nil
}

func errorMessage(err error) Message {
	return Message{
		Action: actionError,
		Payload: mustMarshal(ResponsePayload{
			Error: err.Error(),
			Code:  errorCode(err),
		}),
	}
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return b
}

func missing(field string) error {
	return fmt.Errorf("%w: %s is required", errBadRequest, field)
}
