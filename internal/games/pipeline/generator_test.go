package pipeline

import (
	"math/rand"
	"testing"
)

func TestSplitLengthsPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for seed := int64(0); seed < 20; seed++ {
		rng.Seed(seed)
		lengths := splitLengths(25, 4, 3, rng)
		if len(lengths) != 4 {
			t.Fatalf("seed %d: %d lengths, want 4", seed, len(lengths))
		}
		sum := 0
		for _, n := range lengths {
			if n < 3 {
				t.Errorf("seed %d: segment length %d below minimum 3", seed, n)
			}
			sum += n
		}
		if sum != 25 {
			t.Errorf("seed %d: lengths sum to %d, want 25", seed, sum)
		}
	}
}

func TestGenerateCoversBoard(t *testing.T) {
	cases := []struct {
		rows, cols, pairs, minSeg int
	}{
		{5, 5, 4, 3},
		{6, 6, 5, 4},
		{7, 7, 6, 4},
		{9, 9, 8, 4},
	}
	for _, tc := range cases {
		rng := rand.New(rand.NewSource(99))
		b, err := Generate(tc.rows, tc.cols, tc.pairs, tc.minSeg, 64, rng)
		if err != nil {
			t.Fatalf("%dx%d/%d pairs: %v", tc.rows, tc.cols, tc.pairs, err)
		}
		if len(b.Endpoints) != tc.pairs {
			t.Fatalf("%d endpoint pairs, want %d", len(b.Endpoints), tc.pairs)
		}
		seen := make(map[Cell]bool)
		for pair, ends := range b.Endpoints {
			for _, e := range ends {
				if e.Row < 0 || e.Row >= tc.rows || e.Col < 0 || e.Col >= tc.cols {
					t.Errorf("pair %d endpoint %v out of bounds", pair, e)
				}
				if seen[e] {
					t.Errorf("endpoint %v used twice", e)
				}
				seen[e] = true
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(6, 6, 5, 4, 64, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(6, 6, 5, 4, 64, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Endpoints {
		if a.Endpoints[i] != b.Endpoints[i] {
			t.Fatalf("pair %d differs between identical seeds", i)
		}
	}
}

func TestGenerateExhaustedBudgetErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Generate(5, 5, 4, 3, 0, rng)
	if err == nil {
		t.Fatal("expected an error with a zero attempt budget")
	}
}
