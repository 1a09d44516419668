package wordit

// Mark is the verdict for one guessed letter.
type Mark uint8

const (
	// MarkAbsent means the letter does not occur in the answer, or
	// every occurrence is already claimed.
	MarkAbsent Mark = iota
	// MarkPresent means the letter occurs elsewhere in the answer.
	MarkPresent
	// MarkCorrect means the letter is in its exact position.
	MarkCorrect
)

// Score grades a guess against the answer with two passes: exact
// matches first, then leftover-letter matches. Each answer letter is
// consumed at most once, so a guess with repeated letters never earns
// more marks than the answer has copies.
func Score(guess, answer string) []Mark {
	n := len(guess)
	marks := make([]Mark, n)
	remaining := make(map[byte]int)

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			marks[i] = MarkCorrect
		} else {
			remaining[answer[i]]++
		}
	}
	for i := 0; i < n; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		if remaining[guess[i]] > 0 {
			marks[i] = MarkPresent
			remaining[guess[i]]--
		}
	}
	return marks
}

// Hard-mode rejection reasons shown to the player.
const (
	ReasonKeepGreens    = "Keep green letters in place"
	ReasonUseYellows    = "Include all yellow letters"
	ReasonNoReusedGreys = "Don't reuse grey letters"
)

// ValidateHard checks a guess against the evidence of all previous
// guesses: confirmed positions must be kept, discovered letters must
// be reused, and letters proven absent must not reappear.
func ValidateHard(guess string, prevGuesses []string, prevMarks [][]Mark) (string, bool) {
	greens := make(map[int]byte)
	yellows := make(map[byte]bool)
	greys := make(map[byte]bool)
	for gi, prev := range prevGuesses {
		for i := range prev {
			switch prevMarks[gi][i] {
			case MarkCorrect:
				greens[i] = prev[i]
			case MarkPresent:
				yellows[prev[i]] = true
			case MarkAbsent:
				greys[prev[i]] = true
			}
		}
	}
	// A letter both marked and greyed (repeats) counts as known.
	for i := range greens {
		delete(greys, greens[i])
	}
	for b := range yellows {
		delete(greys, b)
	}

	for i, b := range greens {
		if guess[i] != b {
			return ReasonKeepGreens, false
		}
	}
	for b := range yellows {
		found := false
		for i := 0; i < len(guess); i++ {
			if guess[i] == b {
				found = true
				break
			}
		}
		if !found {
			return ReasonUseYellows, false
		}
	}
	for i := 0; i < len(guess); i++ {
		if greys[guess[i]] {
			return ReasonNoReusedGreys, false
		}
	}
	return "", true
}
