package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/pentago/internal/entity"
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

type mockSettingsRepo struct {
	mock.Mock
}

func (that *mockSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	args := that.Called(ctx)
	settings, _ := args.Get(0).(*entity.Settings)
	return settings, args.Error(1)
}

func (that *mockSettingsRepo) Save(ctx context.Context, settings *entity.Settings) error {
	return that.Called(ctx, settings).Error(0)
}

type mockThemeRepo struct {
	mock.Mock
}

func (that *mockThemeRepo) List(ctx context.Context) ([]*entity.Theme, error) {
	args := that.Called(ctx)
	themes, _ := args.Get(0).([]*entity.Theme)
	return themes, args.Error(1)
}

func (that *mockThemeRepo) GetByName(ctx context.Context, name string) (*entity.Theme, error) {
	args := that.Called(ctx, name)
	theme, _ := args.Get(0).(*entity.Theme)
	return theme, args.Error(1)
}
