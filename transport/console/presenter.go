package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

// Presenter draws the game on a line-based terminal and reads guesses.
type Presenter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewPresenter(in io.Reader, out io.Writer) *Presenter {
	return &Presenter{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Render prints the masked word and the guessed letters.
func (that *Presenter) Render(game *entity.Game) {
	that.printf("\n%s\n%s\n\n", game.MaskedWord(), game.GuessedList())
}

func (that *Presenter) ShowChances(chances int) {
	that.printf("You have %d chances\n", chances)
}

func (that *Presenter) Prompt() {
	that.printf("Guess a letter or the whole word\n")
}

func (that *Presenter) ShowWin() {
	that.printf("You got it!\n")
}

func (that *Presenter) ShowLoss() {
	that.printf("You lost :(\n")
}

func (that *Presenter) ShowOutOfChances() {
	that.printf("You lost\nYou have used all your chances.\n")
}

func (that *Presenter) RevealWord(word string) {
	that.printf("The word was %s\n", word)
}

// ReadGuess blocks until a full line is available. The line is returned raw.
func (that *Presenter) ReadGuess() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err == nil {
		return line, nil
	}

	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}

		return "", apperror.ErrInputClosed
	}

	return "", fmt.Errorf("failed to read guess: %w", err)
}

func (that *Presenter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.writer, format, args...)
}
