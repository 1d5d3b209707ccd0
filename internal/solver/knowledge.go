// internal/solver/knowledge.go
//
// Per-character knowledge accumulated over one solving session.
// Defines:
//   - Kind / Status: what is known about a single character.
//   - Knowledge: the character → Status map and its update rule.
//
// Notes:
//   - Knowledge only grows: entries are added or upgraded, never removed.
//   - CorrectPosition is terminal; InWord may upgrade to it, nothing downgrades.
//   - Positions are code-point indices into the guess/target.

package solver

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the coarse status of a character relative to the target word.
type Kind uint8

const (
	// InWord: the character occurs in the target, no correct position known yet.
	InWord Kind = iota + 1
	// NotInWord: the character does not occur in the target.
	NotInWord
	// CorrectPosition: the character matched the target at Status.Position.
	CorrectPosition
)

func (k Kind) String() string {
	switch k {
	case InWord:
		return "in_word"
	case NotInWord:
		return "not_in_word"
	case CorrectPosition:
		return "correct_position"
	}
	return "unknown"
}

// Status is the best-known status of one character.
// Position is only meaningful when Kind == CorrectPosition.
type Status struct {
	Kind     Kind
	Position int
}

func (s Status) String() string {
	if s.Kind == CorrectPosition {
		return fmt.Sprintf("%s(%d)", s.Kind, s.Position)
	}
	return s.Kind.String()
}

// Knowledge maps each character seen in a guess to its best-known Status.
// The zero value is not usable; construct with NewKnowledge.
type Knowledge struct {
	status map[rune]Status
}

// NewKnowledge returns an empty knowledge store.
func NewKnowledge() *Knowledge {
	return &Knowledge{status: make(map[rune]Status)}
}

// Status reports the known status of c; ok is false when c is unknown.
func (k *Knowledge) Status(c rune) (Status, bool) {
	s, ok := k.status[c]
	return s, ok
}

// Len returns the number of characters with a known status.
func (k *Knowledge) Len() int { return len(k.status) }

// Empty reports whether nothing has been learned yet.
func (k *Knowledge) Empty() bool { return len(k.status) == 0 }

// Snapshot returns a copy of the store, safe to keep across later updates.
func (k *Knowledge) Snapshot() map[rune]Status {
	out := make(map[rune]Status, len(k.status))
	for c, s := range k.status {
		out[c] = s
	}
	return out
}

// Update records what comparing guess against target reveals.
//
// For each character c at position i of guess:
//   - c in target, no entry:      CorrectPosition(i) if target's first c is at i, else InWord.
//   - c in target, entry InWord:  upgraded to CorrectPosition(i) if target's first c is at i.
//   - c in target, entry Correct: untouched; the first established position wins.
//   - c not in target:            NotInWord, only if there is no entry yet.
func (k *Knowledge) Update(guess, target string) {
	tr := []rune(target)
	for i, c := range []rune(guess) {
		at := slices.Index(tr, c)
		if at < 0 {
			if _, ok := k.status[c]; !ok {
				k.status[c] = Status{Kind: NotInWord}
			}
			continue
		}

		cur, ok := k.status[c]
		switch {
		case !ok && at == i:
			k.status[c] = Status{Kind: CorrectPosition, Position: i}
		case !ok:
			k.status[c] = Status{Kind: InWord}
		case cur.Kind == InWord && at == i:
			k.status[c] = Status{Kind: CorrectPosition, Position: i}
		}
	}
}

// String renders the store sorted by character, e.g. "a:in_word e:correct_position(4)".
func (k *Knowledge) String() string {
	keys := make([]rune, 0, len(k.status))
	for c := range k.status {
		keys = append(keys, c)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, c := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
		b.WriteByte(':')
		b.WriteString(k.status[c].String())
	}
	return b.String()
}
