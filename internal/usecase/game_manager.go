package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type wordSelector interface {
	Choose(words []string) (string, error)
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	selector wordSelector
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, selector wordSelector) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		selector: selector,
	}
}

// StartGame picks the secret word and stores the first snapshot.
func (that *GameManager) StartGame(ctx context.Context, words []string) (*entity.Game, error) {
	word, err := that.selector.Choose(words)
	if err != nil {
		return nil, fmt.Errorf("failed to choose word: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), word)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "game_id", game.ID, "word_length", len([]rune(word)), "candidates", len(words))

	return game, nil
}

// BeginTurn reports whether the game accepts another guess.
func (that *GameManager) BeginTurn(ctx context.Context, game *entity.Game) (bool, error) {
	if hangman.BeginTurn(game) {
		return true, nil
	}

	if err := that.updateGame(ctx, game); err != nil {
		return false, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Debug("no turns left", "game_id", game.ID, "status", game.Status, "mistakes", game.Mistakes)

	return false, nil
}

// Guess normalizes the raw input and applies it to the game.
func (that *GameManager) Guess(ctx context.Context, game *entity.Game, raw string) (hangman.Outcome, error) {
	guess := strings.ToLower(strings.TrimSpace(raw))

	outcome, err := hangman.MakeGuess(game, guess)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidGuessInput) {
			that.logger.Debug("guess ignored", "game_id", game.ID, "error", err)
		}

		return hangman.Outcome{}, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return hangman.Outcome{}, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Debug("guess applied",
		"game_id", game.ID,
		"outcome", outcome.Kind.String(),
		"mistakes", game.Mistakes,
		"status", game.Status,
	)

	return outcome, nil
}

// FinishGame drops the snapshot of a finished game.
func (that *GameManager) FinishGame(ctx context.Context, game *entity.Game) {
	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		that.logger.Error("failed to delete game", "game_id", game.ID, "error", err)
		return
	}

	that.logger.Info("game finished", "game_id", game.ID, "status", game.Status, "mistakes", game.Mistakes)
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to save game %s: %w", game.ID, err)
	}

	return nil
}
