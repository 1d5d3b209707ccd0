package solver

import "errors"

var (
	// ErrIllegalTarget is returned when the target is not in the legal-target list.
	ErrIllegalTarget = errors.New("target is not a legal word of the day")

	// ErrExhausted is returned when every candidate has been guessed without
	// reaching the target.
	ErrExhausted = errors.New("solver exhausted: no candidates left")

	// ErrMaxGuesses is returned when a configured guess limit is reached unsolved.
	ErrMaxGuesses = errors.New("solver exceeded max guesses")
)
