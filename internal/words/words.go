// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Read newline-delimited word lists from files, readers or the embedded defaults.
//   - Normalise entries (trim, lowercase) and skip blank lines and "#" comments.
//   - Apply the malformed-line policy (strict error vs. empty placeholder).
//
// Word Lists:
//   - "legal": words that may be the word of the day.
//   - "guessable": additional words the solver may guess.
//
// A malformed line is one that is not valid UTF-8.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// ErrUnreadable wraps failures to open or read a word source.
var ErrUnreadable = errors.New("word source unreadable")

// Policy selects how malformed lines are handled.
type Policy int

const (
	// Strict fails the read with a *ParseError.
	Strict Policy = iota
	// Lenient substitutes an empty placeholder word and keeps going.
	Lenient
)

// ParseError reports a malformed line in a word source.
type ParseError struct {
	Source string
	Line   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed line (invalid UTF-8)", e.Source, e.Line)
}

// ReadList reads one word per line from r. source names r in errors and logs.
func ReadList(r io.Reader, source string, policy Policy) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if !utf8.ValidString(line) {
			if policy == Strict {
				return nil, &ParseError{Source: source, Line: n}
			}
			log.Warn().Str("source", source).Int("line", n).Msg("malformed line replaced with empty word")
			out = append(out, "")
			continue
		}
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, source, err)
	}
	return out, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string, policy Policy) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()
	return ReadList(f, path, policy)
}

// LoadFiles reads the legal and guessable lists from disk and assembles a Bank.
func LoadFiles(legalPath, guessablePath string, policy Policy) (*Bank, error) {
	legal, err := LoadFile(legalPath, policy)
	if err != nil {
		return nil, err
	}
	guessable, err := LoadFile(guessablePath, policy)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("legal", legalPath).Int("legalCount", len(legal)).
		Str("guessable", guessablePath).Int("guessableCount", len(guessable)).
		Msg("word lists loaded")
	return NewBank(legal, guessable), nil
}

// LoadEmbedded assembles a Bank from the lists compiled into the binary.
func LoadEmbedded() (*Bank, error) {
	legal, err := readEmbedded(assets.LegalFile)
	if err != nil {
		return nil, err
	}
	guessable, err := readEmbedded(assets.GuessableFile)
	if err != nil {
		return nil, err
	}
	return NewBank(legal, guessable), nil
}

func readEmbedded(name string) ([]string, error) {
	f, err := assets.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()
	return ReadList(f, "embedded:"+name, Strict)
}
