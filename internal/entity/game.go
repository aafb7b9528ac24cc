package entity

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusLost    = "lost"

	MaxMistakes = 5

	HiddenLetter = "_"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the whole state of a single hangman round.
type Game struct {
	ID             string   `json:"id"`
	Word           string   `json:"word"`
	GuessedLetters []string `json:"guessed_letters"`
	Mistakes       int      `json:"mistakes"`
	Status         string   `json:"status"`
}

func NewGame(id, word string) *Game {
	return &Game{
		ID:             id,
		Word:           word,
		GuessedLetters: []string{},
		Mistakes:       0,
		Status:         StatusPlaying,
	}
}

func (that *Game) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsLost() bool {
	return that.Status == StatusLost
}

func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsLost()
}

func (that *Game) ConfirmPlayingState() error {
	switch {
	case that.IsPlaying():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) HasGuessed(letter string) bool {
	return slices.Contains(that.GuessedLetters, letter)
}

// AddGuessedLetter records the letter once; repeats are ignored.
func (that *Game) AddGuessedLetter(letter string) {
	if that.HasGuessed(letter) {
		return
	}

	that.GuessedLetters = append(that.GuessedLetters, letter)
}

func (that *Game) AddMistake() {
	that.Mistakes++
}

func (that *Game) OutOfChances() bool {
	return that.Mistakes >= MaxMistakes
}

func (that *Game) ChancesLeft() int {
	if that.OutOfChances() {
		return 0
	}

	return MaxMistakes - that.Mistakes
}

// MaskedWord renders the word with unrevealed letters replaced by underscores, space-separated.
func (that *Game) MaskedWord() string {
	cells := make([]string, 0, len(that.Word))
	for _, r := range that.Word {
		letter := string(r)
		if that.HasGuessed(letter) {
			cells = append(cells, letter)
		} else {
			cells = append(cells, HiddenLetter)
		}
	}

	return strings.Join(cells, " ")
}

func (that *Game) GuessedList() string {
	return strings.Join(that.GuessedLetters, " ")
}
