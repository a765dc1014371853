package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/pentago/internal/apperror"
	"github.com/rocketscienceinc/pentago/internal/entity"
)

type settingsRepo interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}

type themeRepo interface {
	List(ctx context.Context) ([]*entity.Theme, error)
	GetByName(ctx context.Context, name string) (*entity.Theme, error)
}

type SettingsUseCase struct {
	logger *slog.Logger

	settingsRepo settingsRepo
	themeRepo    themeRepo
	defaults     entity.Settings
}

func NewSettingsUseCase(logger *slog.Logger, settingsRepo settingsRepo, themeRepo themeRepo, defaults entity.Settings) *SettingsUseCase {
	return &SettingsUseCase{
		logger:       logger.With("component", "settings"),
		settingsRepo: settingsRepo,
		themeRepo:    themeRepo,
		defaults:     defaults,
	}
}

// Get - returns the saved settings or the defaults when nothing was saved yet.
func (that *SettingsUseCase) Get(ctx context.Context) (*entity.Settings, error) {
	settings, err := that.settingsRepo.Get(ctx)
	if errors.Is(err, apperror.ErrNotFound) {
		defaults := that.defaults
		return &defaults, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (that *SettingsUseCase) SetScale(ctx context.Context, scale int) (*entity.Settings, error) {
	settings, err := that.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings.Scale == scale {
		return settings, nil
	}

	settings.Scale = scale
	if !settings.IsValidScale() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidScale, scale)
	}

	return that.save(ctx, settings)
}

func (that *SettingsUseCase) SetTheme(ctx context.Context, name string) (*entity.Settings, error) {
	settings, err := that.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings.Theme == name {
		return settings, nil
	}

	if _, err = that.themeRepo.GetByName(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to set theme: %w", err)
	}

	settings.Theme = name

	return that.save(ctx, settings)
}

func (that *SettingsUseCase) SetSound(ctx context.Context, state int) (*entity.Settings, error) {
	settings, err := that.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings.SoundState == state {
		return settings, nil
	}

	settings.SoundState = state

	return that.save(ctx, settings)
}

// Reset - restores the configured defaults.
func (that *SettingsUseCase) Reset(ctx context.Context) (*entity.Settings, error) {
	defaults := that.defaults

	return that.save(ctx, &defaults)
}

// Theme - returns the palette of the current theme.
func (that *SettingsUseCase) Theme(ctx context.Context) (*entity.Theme, error) {
	settings, err := that.Get(ctx)
	if err != nil {
		return nil, err
	}

	theme, err := that.themeRepo.GetByName(ctx, settings.Theme)
	if err != nil {
		return nil, fmt.Errorf("failed to get current theme: %w", err)
	}

	return theme, nil
}

func (that *SettingsUseCase) Themes(ctx context.Context) ([]*entity.Theme, error) {
	themes, err := that.themeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	return themes, nil
}

func (that *SettingsUseCase) save(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	if err := that.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	that.logger.Info("settings updated",
		"scale", settings.Scale,
		"theme", settings.Theme,
		"soundState", settings.SoundState,
	)

	return settings, nil
}
