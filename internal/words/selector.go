package words

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

// Picker returns an index in [0, n).
type Picker interface {
	Intn(n int) int
}

type Selector struct {
	picker Picker
}

func NewSelector(picker Picker) *Selector {
	return &Selector{picker: picker}
}

// NewRandomSelector uses the process-wide random source.
func NewRandomSelector() *Selector {
	return NewSelector(globalPicker{})
}

// Choose picks one word uniformly over the whole list.
func (that *Selector) Choose(words []string) (string, error) {
	if len(words) == 0 {
		return "", apperror.ErrEmptyWordList
	}

	index := that.picker.Intn(len(words))
	if index < 0 || index >= len(words) {
		return "", fmt.Errorf("%w: index %d of %d", apperror.ErrRandomSelectionOutOfBounds, index, len(words))
	}

	return words[index], nil
}

// globalPicker draws from math/rand's auto-seeded top-level source.
type globalPicker struct{}

func (globalPicker) Intn(n int) int {
	return rand.Intn(n) //nolint: gosec // it's ok
}
