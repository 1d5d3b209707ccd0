package words

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Bank is the ordered, immutable set of candidate words for a session:
// the guessable list followed by the legal-target list. Words present in
// both lists appear twice; the bank is not de-duplicated.
type Bank struct {
	words  []string
	legal  mapset.Set[string]
	nLegal int
}

// NewBank assembles a bank. The input slices are copied.
func NewBank(legal, guessable []string) *Bank {
	all := make([]string, 0, len(guessable)+len(legal))
	all = append(all, guessable...)
	all = append(all, legal...)
	return &Bank{
		words:  all,
		legal:  mapset.NewThreadUnsafeSet(legal...),
		nLegal: len(legal),
	}
}

// Words returns the bank's words in order. Callers must not modify the slice.
func (b *Bank) Words() []string { return b.words }

// Legal returns the legal-target words in their original order.
func (b *Bank) Legal() []string { return b.words[len(b.words)-b.nLegal:] }

// IsLegal reports whether w may be the word of the day.
func (b *Bank) IsLegal(w string) bool { return b.legal.Contains(w) }

// Len returns the number of entries in the bank, duplicates included.
func (b *Bank) Len() int { return len(b.words) }
