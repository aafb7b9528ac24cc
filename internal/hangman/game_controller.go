package hangman

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

var ErrUnknownOutcome = errors.New("unknown guess outcome")

// BeginTurn runs the turn-start mistake check and reports whether the game
// can accept another guess.
func BeginTurn(gameInstance *entity.Game) bool {
	if !gameInstance.IsPlaying() {
		return false
	}

	if gameInstance.OutOfChances() {
		gameInstance.Status = entity.StatusLost
		return false
	}

	return true
}

// MakeGuess classifies the guess and applies it. A malformed guess leaves the game untouched.
func MakeGuess(gameInstance *entity.Game, guess string) (Outcome, error) {
	if err := gameInstance.ConfirmPlayingState(); err != nil {
		return Outcome{}, err
	}

	outcome, err := Classify(guess, gameInstance.Word)
	if err != nil {
		return Outcome{}, fmt.Errorf("invalid guess: %w", err)
	}

	if err = ApplyOutcome(gameInstance, outcome); err != nil {
		return Outcome{}, err
	}

	return outcome, nil
}

// ApplyOutcome - moves the game to its next state for a classified guess.
func ApplyOutcome(gameInstance *entity.Game, outcome Outcome) error {
	if err := gameInstance.ConfirmPlayingState(); err != nil {
		return err
	}

	switch outcome.Kind {
	case WholeWordCorrect:
		gameInstance.Status = entity.StatusWon
	case WholeWordIncorrect:
		gameInstance.Status = entity.StatusLost
	case LetterCorrect:
		letter := string(outcome.Letter)
		// a repeated correct letter wastes the turn
		if gameInstance.HasGuessed(letter) {
			gameInstance.AddMistake()
		} else {
			gameInstance.AddGuessedLetter(letter)
		}
	case LetterIncorrect:
		gameInstance.AddMistake()
		gameInstance.AddGuessedLetter(string(outcome.Letter))
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOutcome, outcome.Kind)
	}

	return nil
}
