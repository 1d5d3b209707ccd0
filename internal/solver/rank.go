// internal/solver/rank.go
//
// Guess selection: candidate pool, per-word scoring and the ranked ordering.
//
// Scoring (per character c at position i of a candidate):
//   - unknown c:                     +Unknown   (1)
//   - CorrectPosition(j), i == j:    +Exact     (5)
//   - CorrectPosition(j), i != j:    +Misplaced (2)
//   - InWord:                        +InWord    (2, tunable to 3)
//   - NotInWord:                     +Absent    (-10)
//
// Ties on score are broken by the lexicographically smallest word, so the
// choice is reproducible for a given knowledge store and pool.

package solver

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Weights are the per-character score contributions.
type Weights struct {
	Unknown   int
	Exact     int
	Misplaced int
	InWord    int
	Absent    int
}

// DefaultWeights returns the standard heuristic.
func DefaultWeights() Weights {
	return Weights{
		Unknown:   1,
		Exact:     5,
		Misplaced: 2,
		InWord:    2,
		Absent:    -10,
	}
}

// Validate keeps the InWord weight within the supported range [2,3].
func (w Weights) Validate() error {
	if w.InWord < 2 || w.InWord > 3 {
		return fmt.Errorf("in-word weight must be 2 or 3, got %d", w.InWord)
	}
	return nil
}

// Ranked is a candidate word and its score.
type Ranked struct {
	Word  string
	Score int
}

// Score sums the weight of each character of word against k.
func Score(word string, k *Knowledge, w Weights) int {
	total := 0
	for i, c := range []rune(word) {
		s, ok := k.Status(c)
		if !ok {
			total += w.Unknown
			continue
		}
		switch s.Kind {
		case CorrectPosition:
			if s.Position == i {
				total += w.Exact
			} else {
				total += w.Misplaced
			}
		case InWord:
			total += w.InWord
		case NotInWord:
			total += w.Absent
		}
	}
	return total
}

// Rank scores every word in pool and orders them by score descending,
// then word ascending. It does not mutate pool.
func Rank(pool []string, k *Knowledge, w Weights) []Ranked {
	out := make([]Ranked, 0, len(pool))
	for _, word := range pool {
		out = append(out, Ranked{Word: word, Score: Score(word, k, w)})
	}
	slices.SortStableFunc(out, func(a, b Ranked) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return out
}

// Candidates returns the bank minus every guessed word, in bank order.
// Duplicate bank entries are kept until the word is guessed.
func Candidates(bank []string, guessed mapset.Set[string]) []string {
	out := make([]string, 0, len(bank))
	for _, w := range bank {
		if guessed.Contains(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Selector picks the next guess from the candidate pool.
type Selector struct {
	Weights Weights
	Rand    *rand.Rand
}

// Select returns the next guess and its score.
// With an empty knowledge store the pick is uniform over the pool (score 0);
// otherwise it is the top of Rank. An empty pool yields ErrExhausted.
func (s *Selector) Select(bank []string, guessed mapset.Set[string], k *Knowledge) (Ranked, error) {
	pool := Candidates(bank, guessed)
	if len(pool) == 0 {
		return Ranked{}, ErrExhausted
	}
	if k.Empty() {
		return Ranked{Word: pool[s.Rand.IntN(len(pool))]}, nil
	}

	best := Ranked{Word: pool[0], Score: Score(pool[0], k, s.Weights)}
	for _, w := range pool[1:] {
		sc := Score(w, k, s.Weights)
		if sc > best.Score || (sc == best.Score && w < best.Word) {
			best = Ranked{Word: w, Score: sc}
		}
	}
	return best, nil
}
