package mastery

import (
	"math/rand/v2"

	"github.com/abhisek/quizmastery/internal/quizbank"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultShuffler uses the process-wide math/rand/v2 source.
var DefaultShuffler Shuffler = globalShuffler{}

// Pools is a candidate pool split by what the learner did last time.
type Pools struct {
	Unseen  []quizbank.Question
	Wrong   []quizbank.Question
	Correct []quizbank.Question
}

// Len returns the number of distinct questions across all pools.
func (p Pools) Len() int {
	return len(p.Unseen) + len(p.Wrong) + len(p.Correct)
}

// Partition splits pool by history. A repeated ID keeps only its first
// occurrence. The input slice is not modified.
func Partition(pool []quizbank.Question, history map[string]QuestionHistoryEntry) Pools {
	var p Pools
	seen := make(map[string]struct{}, len(pool))
	for _, q := range pool {
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}

		h, ok := history[q.ID]
		switch {
		case !ok || !h.Seen:
			p.Unseen = append(p.Unseen, q)
		case h.LastResult != ResultCorrect:
			p.Wrong = append(p.Wrong, q)
		default:
			p.Correct = append(p.Correct, q)
		}
	}
	return p
}

// Select picks up to setSize questions: unseen first, then previously wrong,
// then previously correct, each tier shuffled before it is drawn from. The
// picked set is shuffled once more so its order does not reveal the tiers.
// A nil Shuffler uses DefaultShuffler.
func Select(pool []quizbank.Question, history map[string]QuestionHistoryEntry, setSize int, sh Shuffler) []quizbank.Question {
	if setSize <= 0 || len(pool) == 0 {
		return []quizbank.Question{}
	}
	if sh == nil {
		sh = DefaultShuffler
	}

	p := Partition(pool, history)
	out := make([]quizbank.Question, 0, min(setSize, p.Len()))
	for _, tier := range [][]quizbank.Question{p.Unseen, p.Wrong, p.Correct} {
		if len(out) == setSize {
			break
		}
		shuffle(sh, tier)
		out = append(out, tier[:min(len(tier), setSize-len(out))]...)
	}
	shuffle(sh, out)
	return out
}

func shuffle(sh Shuffler, qs []quizbank.Question) {
	sh.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
}
