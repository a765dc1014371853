package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/pentago/internal/entity"
	"github.com/rocketscienceinc/pentago/internal/pentago"
)

type scoreRepo interface {
	Get(ctx context.Context) (*entity.Score, error)
	Record(ctx context.Context, gameID string, outcome entity.Outcome) (bool, error)
	Reset(ctx context.Context) error
}

// GameUseCase drives the session for the host and keeps the score tallies in sync
// with the games that end.
type GameUseCase struct {
	logger *slog.Logger

	session *pentago.Session
	scores  scoreRepo
}

func NewGameUseCase(logger *slog.Logger, session *pentago.Session, scores scoreRepo) *GameUseCase {
	return &GameUseCase{
		logger:  logger.With("component", "game"),
		session: session,
		scores:  scores,
	}
}

// Place - places the active sign. When the move ends the game, the result is also
// counted in the score; a score failure is returned together with the applied result.
func (that *GameUseCase) Place(ctx context.Context, index, row, col int) (pentago.TurnResult, error) {
	result, err := that.session.Place(index, row, col)
	if err != nil {
		return result, fmt.Errorf("failed to place: %w", err)
	}

	if err = that.handleEvents(ctx, result); err != nil {
		return result, err
	}

	return result, nil
}

func (that *GameUseCase) Rotate(ctx context.Context, index int, clockwise bool) (pentago.TurnResult, error) {
	result, err := that.session.Rotate(index, clockwise)
	if err != nil {
		return result, fmt.Errorf("failed to rotate: %w", err)
	}

	if err = that.handleEvents(ctx, result); err != nil {
		return result, err
	}

	return result, nil
}

func (that *GameUseCase) Restart(_ context.Context) pentago.TurnResult {
	result := that.session.Restart()

	that.logger.Debug("game restarted", "gameID", that.session.GameID())

	return result
}

func (that *GameUseCase) State() pentago.Snapshot {
	return that.session.State()
}

func (that *GameUseCase) Score(ctx context.Context) (*entity.Score, error) {
	score, err := that.scores.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

func (that *GameUseCase) ResetScore(ctx context.Context) error {
	if err := that.scores.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset score: %w", err)
	}

	that.logger.Info("score reset")

	return nil
}

func (that *GameUseCase) handleEvents(ctx context.Context, result pentago.TurnResult) error {
	log := that.logger.With("method", "handleEvents")

	ended, ok := result.GameEnded()
	if !ok {
		return nil
	}

	log.Info("game ended", "gameID", ended.GameID, "outcome", ended.Outcome)

	counted, err := that.scores.Record(ctx, ended.GameID, ended.Outcome)
	if err != nil {
		log.Error("failed to record score", "gameID", ended.GameID, "error", err)
		return fmt.Errorf("failed to record score: %w", err)
	}

	if !counted {
		log.Warn("game already counted", "gameID", ended.GameID)
	}

	return nil
}
