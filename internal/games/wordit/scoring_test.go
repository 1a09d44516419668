package wordit

import "testing"

func marksEqual(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScoreTwoPass(t *testing.T) {
	cases := []struct {
		guess, answer string
		want          []Mark
	}{
		{"AEIOU", "AEIOU", []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}},
		{"ABCDE", "AEIOU", []Mark{MarkCorrect, MarkAbsent, MarkAbsent, MarkAbsent, MarkPresent}},
		{"ZZZZZ", "AEIOU", []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent}},
		// Repeated guess letters never out-score the answer's supply.
		{"EEESS", "EASES", []Mark{MarkCorrect, MarkPresent, MarkAbsent, MarkPresent, MarkCorrect}},
		{"LEVER", "EERIE", []Mark{MarkAbsent, MarkCorrect, MarkAbsent, MarkPresent, MarkPresent}},
		// An exact match claims its copy before any present pass.
		{"ROBOT", "BOOST", []Mark{MarkAbsent, MarkCorrect, MarkPresent, MarkPresent, MarkCorrect}},
	}
	for _, tc := range cases {
		got := Score(tc.guess, tc.answer)
		if !marksEqual(got, tc.want) {
			t.Errorf("Score(%q, %q) = %v, want %v", tc.guess, tc.answer, got, tc.want)
		}
	}
}

func TestValidateHardKeepGreens(t *testing.T) {
	prev := []string{"CRANE"}
	marks := [][]Mark{Score("CRANE", "CLOUD")}
	reason, ok := ValidateHard("SHORT", prev, marks)
	if ok {
		t.Fatal("guess dropping a green letter passed")
	}
	if reason != ReasonKeepGreens {
		t.Errorf("reason %q, want %q", reason, ReasonKeepGreens)
	}
}

func TestValidateHardUseYellows(t *testing.T) {
	prev := []string{"CRANE"}
	marks := [][]Mark{Score("CRANE", "LEAST")}
	// E is yellow; a guess keeping the green A but missing E must be rejected.
	reason, ok := ValidateHard("SLANT", prev, marks)
	if ok {
		t.Fatal("guess missing a yellow letter passed")
	}
	if reason != ReasonUseYellows {
		t.Errorf("reason %q, want %q", reason, ReasonUseYellows)
	}
}

func TestValidateHardNoReusedGreys(t *testing.T) {
	prev := []string{"CRANE"}
	marks := [][]Mark{Score("CRANE", "MOIST")}
	reason, ok := ValidateHard("ROBIN", prev, marks)
	if ok {
		t.Fatal("guess reusing a grey letter passed")
	}
	if reason != ReasonNoReusedGreys {
		t.Errorf("reason %q, want %q", reason, ReasonNoReusedGreys)
	}
}

func TestValidateHardAcceptsConsistentGuess(t *testing.T) {
	prev := []string{"CRANE"}
	marks := [][]Mark{Score("CRANE", "CLOUD")}
	if reason, ok := ValidateHard("CLOUD", prev, marks); !ok {
		t.Errorf("consistent guess rejected: %s", reason)
	}
}

func TestValidateHardNoHistory(t *testing.T) {
	if _, ok := ValidateHard("CRANE", nil, nil); !ok {
		t.Error("first guess rejected with no history")
	}
}
