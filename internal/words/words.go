package words

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

// Load reads one word per line, trimmed and lowercased. Empty lines are skipped.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrResourceUnreadable, err)
	}
	defer file.Close()

	var words []string

	scanner := bufio.NewScanner(file)
	// word length is unbounded
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)

	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}

		words = append(words, word)
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrResourceUnreadable, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrEmptyWordList, path)
	}

	return words, nil
}
