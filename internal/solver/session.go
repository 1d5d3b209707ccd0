// internal/solver/session.go
//
// Session runs the solving loop for one target word.
// Responsibilities:
//   - Own the per-session state: knowledge store, guessed set, round counter.
//   - Each round: select a guess, let the referee score it, update knowledge.
//   - Stop when the guess equals the target, or fail with a defined error.
//
// State machine:
//   AwaitingOpeningGuess → Ranking (once any knowledge exists) → Solved.
//
// A session is single-threaded; callers must not share one across goroutines.

package solver

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// State is the position of a session in its lifecycle.
type State string

const (
	StateAwaitingOpeningGuess State = "awaiting_opening_guess"
	StateRanking              State = "ranking"
	StateSolved               State = "solved"
)

// Round describes one completed guess.
type Round struct {
	N       int        // 1-based round number.
	Guess   string     // Word guessed this round.
	Score   int        // Rank score; 0 for the opening random pick.
	Opening bool       // True when the guess was drawn at random.
	Marks   game.Marks // Referee feedback for the guess.
	Solved  bool       // True when Guess equals the target.
}

// Result summarises a finished session.
type Result struct {
	Target  string
	Guesses []string
	Count   int
	Solved  bool
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for the opening pick.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.selector.Rand = r }
}

// WithSeed seeds the opening pick for reproducible runs.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithWeights overrides the scoring weights.
func WithWeights(w Weights) Option {
	return func(s *Session) { s.selector.Weights = w }
}

// WithMaxGuesses fails the session with ErrMaxGuesses after n unsolved rounds.
// n <= 0 disables the limit.
func WithMaxGuesses(n int) Option {
	return func(s *Session) { s.maxGuesses = n }
}

// WithProgress registers a callback invoked after every round.
func WithProgress(fn func(Round)) Option {
	return func(s *Session) { s.progress = fn }
}

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session holds the state of one solving run.
type Session struct {
	bank      []string
	target    string
	knowledge *Knowledge
	guessed   mapset.Set[string]
	history   []string
	state     State

	selector   Selector
	referee    *game.Game
	limit      int
	maxGuesses int
	progress   func(Round)
	log        zerolog.Logger
}

// NewSession validates target against the bank's legal-target list and
// prepares a session. The round limit is the size of the initial candidate pool.
func NewSession(bank *words.Bank, target string, opts ...Option) (*Session, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if !bank.IsLegal(target) {
		return nil, fmt.Errorf("%w: %q", ErrIllegalTarget, target)
	}

	s := &Session{
		bank:      bank.Words(),
		target:    target,
		knowledge: NewKnowledge(),
		guessed:   mapset.NewThreadUnsafeSet[string](),
		state:     StateAwaitingOpeningGuess,
		selector: Selector{
			Weights: DefaultWeights(),
			Rand:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		},
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if err := s.selector.Weights.Validate(); err != nil {
		return nil, err
	}

	s.limit = len(s.bank)
	s.referee = game.New(target, s.maxGuesses)
	return s, nil
}

// Target returns the word being solved.
func (s *Session) Target() string { return s.target }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Knowledge exposes the session's knowledge store.
func (s *Session) Knowledge() *Knowledge { return s.knowledge }

// Guesses returns the words guessed so far, in order.
func (s *Session) Guesses() []string { return append([]string(nil), s.history...) }

// Step plays a single round.
func (s *Session) Step() (Round, error) {
	if s.state == StateSolved {
		return Round{}, game.ErrFinished
	}
	if len(s.history) >= s.limit {
		return Round{}, ErrExhausted
	}

	pick, err := s.selector.Select(s.bank, s.guessed, s.knowledge)
	if err != nil {
		return Round{}, err
	}
	opening := s.state == StateAwaitingOpeningGuess

	marks, st, err := s.referee.ApplyGuess(pick.Word)
	if err != nil {
		return Round{}, err
	}

	s.knowledge.Update(pick.Word, s.target)
	s.guessed.Add(pick.Word)
	s.history = append(s.history, pick.Word)

	r := Round{
		N:       len(s.history),
		Guess:   pick.Word,
		Score:   pick.Score,
		Opening: opening,
		Marks:   marks,
		Solved:  st == game.StateWon,
	}
	switch {
	case r.Solved:
		s.state = StateSolved
	case !s.knowledge.Empty():
		s.state = StateRanking
	}

	s.log.Debug().
		Int("round", r.N).
		Str("guess", r.Guess).
		Int("score", r.Score).
		Bool("opening", r.Opening).
		Stringer("marks", r.Marks).
		Stringer("knowledge", s.knowledge).
		Str("state", string(s.state)).
		Msg("round")

	if s.progress != nil {
		s.progress(r)
	}
	if st == game.StateLost {
		return r, fmt.Errorf("%w (%d)", ErrMaxGuesses, s.maxGuesses)
	}
	return r, nil
}

// Run plays rounds until the target is guessed or a fatal condition occurs.
// ctx is checked between rounds.
func (s *Session) Run(ctx context.Context) (Result, error) {
	for s.state != StateSolved {
		if err := ctx.Err(); err != nil {
			return s.result(), err
		}
		if _, err := s.Step(); err != nil {
			return s.result(), err
		}
	}
	return s.result(), nil
}

func (s *Session) result() Result {
	return Result{
		Target:  s.target,
		Guesses: s.Guesses(),
		Count:   len(s.history),
		Solved:  s.state == StateSolved,
	}
}
