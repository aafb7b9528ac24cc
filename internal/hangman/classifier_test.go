package hangman

import (
	"testing"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		secret   string
		expected Outcome
	}{
		{
			name:     "Whole word equal to the secret",
			guess:    "banana",
			secret:   "banana",
			expected: Outcome{Kind: WholeWordCorrect, Word: "banana"},
		},
		{
			name:     "Whole word different from the secret",
			guess:    "bandana",
			secret:   "banana",
			expected: Outcome{Kind: WholeWordIncorrect, Word: "bandana"},
		},
		{
			name:     "Two letters that occur in the secret are still a word guess",
			guess:    "an",
			secret:   "banana",
			expected: Outcome{Kind: WholeWordIncorrect, Word: "an"},
		},
		{
			name:     "Letter present in the secret",
			guess:    "a",
			secret:   "banana",
			expected: Outcome{Kind: LetterCorrect, Letter: 'a'},
		},
		{
			name:     "Letter absent from the secret",
			guess:    "z",
			secret:   "banana",
			expected: Outcome{Kind: LetterIncorrect, Letter: 'z'},
		},
		{
			name:     "Multibyte letter counts as one character",
			guess:    "é",
			secret:   "café",
			expected: Outcome{Kind: LetterCorrect, Letter: 'é'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: the guess is classified
			outcome, err := Classify(tt.guess, tt.secret)

			// Then: the expected outcome is returned
			require.NoError(t, err)
			assert.Equal(t, tt.expected, outcome)
		})
	}

	t.Run("Empty guess is invalid input", func(t *testing.T) {
		// When: an empty guess is classified
		outcome, err := Classify("", "banana")

		// Then: ErrInvalidGuessInput is returned and no outcome
		require.ErrorIs(t, err, apperror.ErrInvalidGuessInput)
		assert.Equal(t, Outcome{}, outcome)
	})
}

func TestOutcome_IsLetter(t *testing.T) {
	assert.True(t, Outcome{Kind: LetterCorrect}.IsLetter())
	assert.True(t, Outcome{Kind: LetterIncorrect}.IsLetter())
	assert.False(t, Outcome{Kind: WholeWordCorrect}.IsLetter())
	assert.False(t, Outcome{Kind: WholeWordIncorrect}.IsLetter())
}
