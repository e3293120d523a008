package repository

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// DefaultDictionaryPath is where the wordlist is expected, relative to the
// working directory.
const DefaultDictionaryPath = "./common-passwords.txt"

// maxLineSize bounds a single dictionary line.
const maxLineSize = 1 << 20

var (
	ErrDictionaryUnreadable = errors.New("dictionary unreadable")
	ErrDictionaryEmpty      = errors.New("dictionary is empty")
)

// Dictionary is the ordered list of candidate passwords.
type Dictionary []string

// LoadDictionary reads the file at path, one candidate per line. Line endings
// may be \n or \r\n; blank lines are skipped.
func LoadDictionary(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDictionaryUnreadable, path, err)
	}
	defer f.Close()

	var dict Dictionary
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		dict = append(dict, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDictionaryUnreadable, path, err)
	}

	if len(dict) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDictionaryEmpty, path)
	}

	slog.Debug("dictionary loaded", "path", path, "entries", len(dict))
	return dict, nil
}
