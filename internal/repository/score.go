package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/pentago/internal/entity"
)

const (
	scoreKey        = "score"
	scoreGamePrefix = "score:game:"
	scoreMarkerTTL  = 7 * 24 * time.Hour
	scoreFieldCross = "cross"
	scoreFieldZero  = "zero"
	scoreFieldDraw  = "draw"
)

var ErrNotTerminalOutcome = errors.New("outcome is not terminal")

// recordScript counts a finished game only once per game id.
var recordScript = redis.NewScript(`
if redis.call('SET', KEYS[1], '1', 'NX', 'PX', ARGV[2]) then
	redis.call('HINCRBY', KEYS[2], ARGV[1], 1)
	return 1
end
return 0
`)

type ScoreRepository interface {
	Get(ctx context.Context) (*entity.Score, error)
	Record(ctx context.Context, gameID string, outcome entity.Outcome) (bool, error)
	Reset(ctx context.Context) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Get(ctx context.Context) (*entity.Score, error) {
	fields, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	score := &entity.Score{}
	for field, target := range map[string]*int64{
		scoreFieldCross: &score.Cross,
		scoreFieldZero:  &score.Zero,
		scoreFieldDraw:  &score.Draw,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse score field %s: %w", field, err)
		}
	}

	return score, nil
}

func (that *dbScore) Record(ctx context.Context, gameID string, outcome entity.Outcome) (bool, error) {
	field, err := scoreField(outcome)
	if err != nil {
		return false, err
	}

	counted, err := recordScript.Run(ctx, that.client,
		[]string{scoreGamePrefix + gameID, scoreKey},
		field, scoreMarkerTTL.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to record score: %w", err)
	}

	return counted == 1, nil
}

func (that *dbScore) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, scoreKey).Err(); err != nil {
		return fmt.Errorf("failed to reset score: %w", err)
	}

	return nil
}

func scoreField(outcome entity.Outcome) (string, error) {
	switch outcome {
	case entity.OutcomeCrossWins:
		return scoreFieldCross, nil
	case entity.OutcomeZeroWins:
		return scoreFieldZero, nil
	case entity.OutcomeDraw:
		return scoreFieldDraw, nil
	case entity.OutcomeInProgress:
		return "", fmt.Errorf("%w: %s", ErrNotTerminalOutcome, outcome)
	default:
		return "", fmt.Errorf("%w: %d", ErrNotTerminalOutcome, outcome)
	}
}
