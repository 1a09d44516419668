// Package wordlist provides the word-list repository used by the word games.
// Lists are loaded once at construction and handed to engines explicitly,
// so there is no process-wide lazy cache and tests stay hermetic.
package wordlist

import (
	"embed"
	"fmt"
	"math/rand"
	"strings"
)

//go:embed data/*.txt
var dataFS embed.FS

// Difficulty keys recognized by the hangman lists.
const (
	KeyEasy   = "easy"
	KeyNormal = "normal"
	KeyHard   = "hard"
	KeyExpert = "expert"
)

// hangmanFiles maps difficulty keys to their embedded list files.
var hangmanFiles = map[string]string{
	KeyEasy:   "data/hangman-1.txt",
	KeyNormal: "data/hangman-2.txt",
	KeyHard:   "data/hangman-3.txt",
	KeyExpert: "data/hangman-4.txt",
}

// GuessWordLen is the fixed word length for the Wordle-style game.
const GuessWordLen = 5

// Repository holds all word lists, upper-cased and validated.
// An empty list is a fatal configuration error at construction time:
// no engine ever sees a repository it cannot draw from.
type Repository struct {
	guessWords []string            // 5-letter words for WordIt
	hangman    map[string][]string // difficulty key -> terms (may contain spaces)
}

// NewRepository loads and validates all embedded word lists.
func NewRepository() (*Repository, error) {
	guess, err := loadList("data/words-5-letter.txt", func(w string) bool {
		return len(w) == GuessWordLen && isAlpha(w)
	})
	if err != nil {
		return nil, err
	}

	hangman := make(map[string][]string, len(hangmanFiles))
	for key, file := range hangmanFiles {
		words, err := loadList(file, func(w string) bool { return w != "" })
		if err != nil {
			return nil, err
		}
		hangman[key] = words
	}

	return &Repository{guessWords: guess, hangman: hangman}, nil
}

// loadList reads one embedded file into an upper-cased, filtered slice.
func loadList(path string, keep func(string) bool) ([]string, error) {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: cannot read %s: %w", path, err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		w := strings.ToUpper(strings.TrimSpace(line))
		if w == "" || !keep(w) {
			continue
		}
		words = append(words, w)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("wordlist: no usable words in %s", path)
	}
	return words, nil
}

func isAlpha(w string) bool {
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// GuessWords returns the 5-letter word list for the Wordle-style game.
func (r *Repository) GuessWords() []string {
	return r.guessWords
}

// PickGuessWord draws a random 5-letter answer.
func (r *Repository) PickGuessWord(rng *rand.Rand) string {
	return r.guessWords[rng.Intn(len(r.guessWords))]
}

// HangmanWords returns the hangman list for a difficulty key.
func (r *Repository) HangmanWords(key string) ([]string, error) {
	words, ok := r.hangman[key]
	if !ok {
		return nil, fmt.Errorf("wordlist: unknown hangman difficulty %q", key)
	}
	return words, nil
}

// PickHangmanWord draws a random term for a difficulty key.
func (r *Repository) PickHangmanWord(key string, rng *rand.Rand) (string, error) {
	words, err := r.HangmanWords(key)
	if err != nil {
		return "", err
	}
	return words[rng.Intn(len(words))], nil
}
