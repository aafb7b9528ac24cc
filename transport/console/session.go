package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
)

type gameManager interface {
	StartGame(ctx context.Context, words []string) (*entity.Game, error)
	BeginTurn(ctx context.Context, game *entity.Game) (bool, error)
	Guess(ctx context.Context, game *entity.Game, raw string) (hangman.Outcome, error)
	FinishGame(ctx context.Context, game *entity.Game)
}

type Session struct {
	logger    *slog.Logger
	manager   gameManager
	presenter *Presenter
}

func NewSession(logger *slog.Logger, manager gameManager, presenter *Presenter) *Session {
	return &Session{
		logger:    logger.With("component", "console"),
		manager:   manager,
		presenter: presenter,
	}
}

// Run plays one game to the end. The word is revealed only when the game
// reaches a decided outcome; any returned error means it was not.
func (that *Session) Run(ctx context.Context, words []string) error {
	game, err := that.manager.StartGame(ctx, words)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if err = that.loop(ctx, game); err != nil {
		return err
	}

	that.manager.FinishGame(ctx, game)
	that.presenter.RevealWord(game.Word)

	return nil
}

func (that *Session) loop(ctx context.Context, game *entity.Game) error {
	for {
		that.presenter.Render(game)

		playing, err := that.manager.BeginTurn(ctx, game)
		if err != nil {
			return fmt.Errorf("failed to begin turn: %w", err)
		}

		if !playing {
			that.presenter.ShowOutOfChances()
			return nil
		}

		that.presenter.ShowChances(game.ChancesLeft())
		that.presenter.Prompt()

		raw, err := that.presenter.ReadGuess()
		if err != nil {
			return fmt.Errorf("failed to read guess: %w", err)
		}

		outcome, err := that.manager.Guess(ctx, game, raw)
		if errors.Is(err, apperror.ErrInvalidGuessInput) {
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to apply guess: %w", err)
		}

		if outcome.IsLetter() {
			that.logger.Debug("letter guessed", "game_id", game.ID, "letter", string(outcome.Letter))
			continue
		}

		switch outcome.Kind {
		case hangman.WholeWordCorrect:
			that.presenter.ShowWin()
		case hangman.WholeWordIncorrect:
			that.presenter.ShowLoss()
		}

		return nil
	}
}
