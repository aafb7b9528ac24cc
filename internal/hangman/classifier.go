package hangman

import (
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

type OutcomeKind int

const (
	WholeWordCorrect OutcomeKind = iota + 1
	WholeWordIncorrect
	LetterCorrect
	LetterIncorrect
)

func (that OutcomeKind) String() string {
	switch that {
	case WholeWordCorrect:
		return "word_correct"
	case WholeWordIncorrect:
		return "word_incorrect"
	case LetterCorrect:
		return "letter_correct"
	case LetterIncorrect:
		return "letter_incorrect"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one guess. Letter is set for letter
// outcomes, Word for whole-word outcomes.
type Outcome struct {
	Kind   OutcomeKind
	Letter rune
	Word   string
}

func (that Outcome) IsLetter() bool {
	return that.Kind == LetterCorrect || that.Kind == LetterIncorrect
}

// Classify expects guess to be trimmed and lowercased already.
func Classify(guess, secret string) (Outcome, error) {
	chars := []rune(guess)

	switch {
	case len(chars) > 1:
		if guess == secret {
			return Outcome{Kind: WholeWordCorrect, Word: guess}, nil
		}
		return Outcome{Kind: WholeWordIncorrect, Word: guess}, nil
	case len(chars) == 1:
		if strings.ContainsRune(secret, chars[0]) {
			return Outcome{Kind: LetterCorrect, Letter: chars[0]}, nil
		}
		return Outcome{Kind: LetterIncorrect, Letter: chars[0]}, nil
	default:
		return Outcome{}, apperror.ErrInvalidGuessInput
	}
}
