package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/pentago/internal/config"
	"github.com/rocketscienceinc/pentago/internal/entity"
	"github.com/rocketscienceinc/pentago/internal/pentago"
	"github.com/rocketscienceinc/pentago/internal/repository"
	"github.com/rocketscienceinc/pentago/internal/repository/storage"
	"github.com/rocketscienceinc/pentago/internal/usecase"
	"github.com/rocketscienceinc/pentago/transport/stdio"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrPathNotFound = errors.New("sqlite storage path is empty")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startingSign, err := entity.ParseSign(conf.StartingSign)
	if err != nil || startingSign.IsEmpty() {
		return fmt.Errorf("invalid starting sign %q: %w", conf.StartingSign, entity.ErrUnknownSign)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	if conf.SQLiteStoragePath == "" {
		return ErrPathNotFound
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	scoreRepo := repository.NewScoreRepository(redisStorage.Connection)
	settingsRepo := repository.NewSettingsRepository(redisStorage.Connection)
	themeRepo := repository.NewThemeRepository(sqliteStorage.Connection)

	defaults := entity.Settings{
		Scale:      conf.Defaults.Scale,
		Theme:      conf.Defaults.Theme,
		SoundState: conf.Defaults.SoundState,
	}

	session := pentago.NewSession(pentago.WithStartingSign(startingSign))
	gameUseCase := usecase.NewGameUseCase(logger, session, scoreRepo)
	settingsUseCase := usecase.NewSettingsUseCase(logger, settingsRepo, themeRepo, defaults)

	log.Info("Starting stdio host", "gameID", session.GameID(), "startingSign", startingSign)

	server := stdio.New(logger, gameUseCase, settingsUseCase)
	if err = server.Serve(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("stdio host error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}
