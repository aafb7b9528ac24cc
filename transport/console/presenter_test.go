package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenPipe = errors.New("broken pipe")

func TestPresenter_Render(t *testing.T) {
	// Given: a game with a right and a wrong letter
	var out bytes.Buffer
	presenter := NewPresenter(strings.NewReader(""), &out)
	game := entity.NewGame("123", "banana")
	game.AddGuessedLetter("a")
	game.AddGuessedLetter("z")

	// When: the game is rendered
	presenter.Render(game)

	// Then: the masked word and the guessed letters are printed
	assert.Equal(t, "\n_ a _ a _ a\na z\n\n", out.String())
}

func TestPresenter_Messages(t *testing.T) {
	var out bytes.Buffer
	presenter := NewPresenter(strings.NewReader(""), &out)

	presenter.ShowChances(3)
	presenter.Prompt()
	presenter.ShowWin()
	presenter.ShowLoss()
	presenter.ShowOutOfChances()
	presenter.RevealWord("cat")

	expected := "You have 3 chances\n" +
		"Guess a letter or the whole word\n" +
		"You got it!\n" +
		"You lost :(\n" +
		"You lost\nYou have used all your chances.\n" +
		"The word was cat\n"
	assert.Equal(t, expected, out.String())
}

func TestPresenter_ReadGuess(t *testing.T) {
	t.Run("Reads one line at a time", func(t *testing.T) {
		presenter := NewPresenter(strings.NewReader("a\nbanana\n"), &bytes.Buffer{})

		first, err := presenter.ReadGuess()
		require.NoError(t, err)
		second, err := presenter.ReadGuess()
		require.NoError(t, err)

		assert.Equal(t, "a\n", first)
		assert.Equal(t, "banana\n", second)
	})

	t.Run("Last line without newline is still a guess", func(t *testing.T) {
		presenter := NewPresenter(strings.NewReader("z"), &bytes.Buffer{})

		guess, err := presenter.ReadGuess()

		require.NoError(t, err)
		assert.Equal(t, "z", guess)
	})

	t.Run("End of input is ErrInputClosed", func(t *testing.T) {
		presenter := NewPresenter(strings.NewReader(""), &bytes.Buffer{})

		_, err := presenter.ReadGuess()

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Read failure is propagated", func(t *testing.T) {
		presenter := NewPresenter(iotest.ErrReader(errBrokenPipe), &bytes.Buffer{})

		_, err := presenter.ReadGuess()

		require.ErrorIs(t, err, errBrokenPipe)
	})
}
