// internal/game/types.go
//
// Core type definitions for the referee.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Marks: a scored guess, printable as a G/Y/. strip.
//   - Game: the target and the guesses played against it.

package game

import "strings"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer (or all copies are used up).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Marks is the per-letter evaluation of one guess.
type Marks []Mark

// String renders marks as G (hit), Y (present) and . (miss).
func (m Marks) String() string {
	var b strings.Builder
	for _, x := range m {
		switch x {
		case MarkHit:
			b.WriteByte('G')
		case MarkPresent:
			b.WriteByte('Y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single solving run as seen by the referee.
type Game struct {
	Answer   string   // The target word (always lowercase).
	Rows     int      // Maximum number of guesses; 0 means unbounded.
	Guesses  []string // Guesses made so far.
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}
