// internal/game/engine.go
//
// Referee for a single solving run.
// Responsibilities:
//   - Hold the target word.
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Guesses are not checked against a dictionary; the solver only draws
//     from its own word bank, which may contain placeholder entries.
//   - Letters are compared per code point.

package game

import (
	"errors"
	"strings"
)

// ErrFinished is returned by ApplyGuess once the game is over.
var ErrFinished = errors.New("game finished")

// New constructs a game for answer. rows <= 0 means no guess limit.
func New(answer string, rows int) *Game {
	if rows < 0 {
		rows = 0
	}
	return &Game{
		Answer:  strings.ToLower(answer),
		Rows:    rows,
		Guesses: []string{},
	}
}

// ApplyGuess scores a guess and records it.
// Returns the per-letter marks and the new state, or ErrFinished.
//
// State transitions:
//   - guess == answer → Finished = true, Won = true.
//   - Else if Rows > 0 and the number of guesses reaches Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (Marks, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}

	marks := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if guess == g.Answer {
		g.Finished, g.Won = true, true
	} else if g.Rows > 0 && len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
//
// This ensures correct behavior with repeated letters in both answer and guess.
// Guess positions past the end of the answer are always Miss.
func Score(answer, guess string) Marks {
	answerRunes := []rune(answer)
	guessRunes := []rune(guess)
	res := make(Marks, len(guessRunes))

	counts := make(map[rune]int, len(answerRunes))

	// First pass: mark hits and collect counts for remaining answer letters.
	for i, r := range answerRunes {
		if i < len(guessRunes) && guessRunes[i] == r {
			res[i] = MarkHit
		} else {
			counts[r]++
		}
	}

	// Second pass: resolve presents/misses for non-hit tiles.
	for i, r := range guessRunes {
		if res[i] == MarkHit {
			continue
		}
		if counts[r] > 0 {
			res[i] = MarkPresent
			counts[r]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}
