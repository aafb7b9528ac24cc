package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

// memoryGame stores copies of the snapshots it is given.
type memoryGame struct {
	mu    sync.RWMutex
	games map[string]entity.Game
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = cloneGame(game)

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return &entity.Game{}, apperror.ErrGameNotFound
	}

	existingGame := cloneGame(&game)

	return &existingGame, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

func cloneGame(game *entity.Game) entity.Game {
	clone := *game
	clone.GuessedLetters = append([]string{}, game.GuessedLetters...)

	return clone
}
