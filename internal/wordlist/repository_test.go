package wordlist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	words := repo.GuessWords()
	require.NotEmpty(t, words)
	for _, w := range words {
		assert.Len(t, w, GuessWordLen)
		assert.Equal(t, w, toUpper(w))
	}
}

func TestHangmanListsPresent(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	for _, key := range []string{KeyEasy, KeyNormal, KeyHard, KeyExpert} {
		words, err := repo.HangmanWords(key)
		require.NoError(t, err, "difficulty %s", key)
		assert.NotEmpty(t, words, "difficulty %s", key)
	}

	_, err = repo.HangmanWords("nightmare")
	assert.Error(t, err)
}

func TestPickIsDeterministic(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	a := repo.PickGuessWord(rand.New(rand.NewSource(7)))
	b := repo.PickGuessWord(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)

	h1, err := repo.PickHangmanWord(KeyHard, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	h2, err := repo.PickHangmanWord(KeyHard, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func toUpper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - ('a' - 'A')
		}
	}
	return string(out)
}
