package mastery

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/abhisek/quizmastery/internal/quizbank"
)

func questions(ids ...string) []quizbank.Question {
	qs := make([]quizbank.Question, len(ids))
	for i, id := range ids {
		qs[i] = quizbank.Question{ID: id, Topic: "cad"}
	}
	return qs
}

func ids(qs []quizbank.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func seeded(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// priorityFixture has 5 unseen, 3 wrong and 2 correct questions.
func priorityFixture() ([]quizbank.Question, map[string]QuestionHistoryEntry) {
	pool := questions("u1", "w1", "c1", "u2", "u3", "w2", "u4", "c2", "w3", "u5")
	history := map[string]QuestionHistoryEntry{
		"w1": {Seen: true, LastResult: ResultIncorrect, TimesSeen: 1},
		"w2": {Seen: true, LastResult: ResultIncorrect, TimesSeen: 3, TimesCorrect: 2},
		"w3": {Seen: true, TimesSeen: 1},
		"c1": {Seen: true, LastResult: ResultCorrect, TimesSeen: 1, TimesCorrect: 1},
		"c2": {Seen: true, LastResult: ResultCorrect, TimesSeen: 2, TimesCorrect: 1},
		"u5": {Seen: false},
	}
	return pool, history
}

func TestPartition(t *testing.T) {
	pool, history := priorityFixture()
	p := Partition(pool, history)

	if got := ids(p.Unseen); !slices.Equal(got, []string{"u1", "u2", "u3", "u4", "u5"}) {
		t.Errorf("Unseen = %v", got)
	}
	if got := ids(p.Wrong); !slices.Equal(got, []string{"w1", "w2", "w3"}) {
		t.Errorf("Wrong = %v", got)
	}
	if got := ids(p.Correct); !slices.Equal(got, []string{"c1", "c2"}) {
		t.Errorf("Correct = %v", got)
	}
}

func TestSelect_PriorityOrdering(t *testing.T) {
	pool, history := priorityFixture()

	for seed := uint64(0); seed < 200; seed++ {
		got := ids(Select(pool, history, 6, seeded(seed)))
		if len(got) != 6 {
			t.Fatalf("seed %d: len = %d, want 6", seed, len(got))
		}
		unseen, wrong, correct := 0, 0, 0
		for _, id := range got {
			switch id[0] {
			case 'u':
				unseen++
			case 'w':
				wrong++
			case 'c':
				correct++
			}
		}
		if unseen != 5 || wrong != 1 || correct != 0 {
			t.Fatalf("seed %d: got %v (unseen=%d wrong=%d correct=%d), want 5/1/0",
				seed, got, unseen, wrong, correct)
		}
	}
}

func TestSelect_NoDuplicates(t *testing.T) {
	pool := questions("a", "b", "a", "c", "b", "d")
	history := map[string]QuestionHistoryEntry{
		"b": {Seen: true, LastResult: ResultCorrect},
	}

	for size := 0; size <= 8; size++ {
		for seed := uint64(0); seed < 20; seed++ {
			got := ids(Select(pool, history, size, seeded(seed)))
			seen := make(map[string]bool)
			for _, id := range got {
				if seen[id] {
					t.Fatalf("size %d seed %d: duplicate %q in %v", size, seed, id, got)
				}
				seen[id] = true
			}
			if want := min(size, 4); len(got) != want {
				t.Fatalf("size %d seed %d: len = %d, want %d", size, seed, len(got), want)
			}
		}
	}
}

func TestSelect_FullPermutationWhenSetCoversPool(t *testing.T) {
	pool := questions("q1", "q2", "q3", "q4", "q5")
	history := map[string]QuestionHistoryEntry{
		"q2": {Seen: true, LastResult: ResultCorrect},
		"q4": {Seen: true, LastResult: ResultIncorrect},
	}

	got := ids(Select(pool, history, 50, seeded(7)))
	slices.Sort(got)
	if !slices.Equal(got, []string{"q1", "q2", "q3", "q4", "q5"}) {
		t.Errorf("got %v, want every question once", got)
	}
}

func TestSelect_DegenerateInputs(t *testing.T) {
	pool := questions("q1", "q2")

	tests := []struct {
		name    string
		pool    []quizbank.Question
		setSize int
	}{
		{"zero size", pool, 0},
		{"negative size", pool, -4},
		{"empty pool", nil, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.pool, nil, tt.setSize, seeded(1))
			if got == nil || len(got) != 0 {
				t.Errorf("Select = %v, want empty non-nil slice", got)
			}
		})
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	pool := questions("q1", "q2", "q3", "q4", "q5", "q6")
	before := slices.Clone(pool)

	Select(pool, nil, 3, seeded(3))
	if !slices.Equal(pool, before) {
		t.Errorf("pool changed: %v", ids(pool))
	}
}

func TestSelect_DeterministicForSeed(t *testing.T) {
	pool, history := priorityFixture()
	a := ids(Select(pool, history, 7, seeded(42)))
	b := ids(Select(pool, history, 7, seeded(42)))
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestSelect_NilShufflerUsesDefault(t *testing.T) {
	pool := questions("q1", "q2", "q3")
	if got := Select(pool, nil, 2, nil); len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestSelect_FinalOrderMixesTiers(t *testing.T) {
	pool, history := priorityFixture()

	// With a final shuffle the wrong-pool pick must not always land last.
	positions := make(map[int]bool)
	for seed := uint64(0); seed < 100; seed++ {
		got := ids(Select(pool, history, 6, seeded(seed)))
		for i, id := range got {
			if id[0] == 'w' {
				positions[i] = true
			}
		}
	}
	if len(positions) < 2 {
		t.Errorf("wrong-pool question only ever at positions %v", fmt.Sprint(positions))
	}
}
