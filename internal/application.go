package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/config"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/internal/repository/storage"
	"github.com/rocketscienceinc/hangman/internal/usecase"
	"github.com/rocketscienceinc/hangman/internal/words"
	"github.com/rocketscienceinc/hangman/transport/console"
)

// RunApp - plays a single game. args are the positional arguments without the program name.
func RunApp(logger *slog.Logger, conf *config.Config, args []string, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if len(args) < 1 {
		return apperror.ErrMissingArgument
	}

	wordList, err := words.Load(args[0])
	if err != nil {
		return fmt.Errorf("could not load words: %w", err)
	}

	log.Debug("words loaded", "path", args[0], "count", len(wordList))

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameManager := usecase.NewGameManager(logger, gameRepo, words.NewRandomSelector())
	session := console.NewSession(logger, gameManager, console.NewPresenter(in, out))

	if err = session.Run(ctx, wordList); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	return nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("storing game snapshots in redis", "addr", conf.Redis.GetRedisAddr())

	closeRepo := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection), closeRepo, nil
}
