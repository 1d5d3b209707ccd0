package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// ErrMissingTarget is returned when no word of the day is supplied.
var ErrMissingTarget = errors.New("please supply word of the day")

// options are the settings shared by every command. Defaults come from
// the environment; flags override them.
type options struct {
	legalFile     string
	guessableFile string
	builtin       bool
	lenient       bool
	seed          uint64
	maxGuesses    int
	weights       solver.Weights
	verbose       bool
}

func newRootCmd(cfg config.Config) *cobra.Command {
	o := &options{
		legalFile:     cfg.LegalFile,
		guessableFile: cfg.GuessableFile,
		lenient:       cfg.Lenient,
		seed:          cfg.Seed,
		maxGuesses:    cfg.MaxGuesses,
	}

	var weightsErr error
	o.weights, weightsErr = cfg.Weights()

	cmd := &cobra.Command{
		Use:           "go-solver <word>",
		Short:         "Solve a Wordle-style puzzle for the given word of the day",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return weightsErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrMissingTarget
			}
			bank, err := o.loadBank()
			if err != nil {
				return err
			}
			_, err = o.solve(cmd.Context(), cmd.OutOrStdout(), bank, args[0])
			return err
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&o.legalFile, "legal", o.legalFile, "path to the legal word-of-the-day list")
	f.StringVar(&o.guessableFile, "guessable", o.guessableFile, "path to the additional guessable word list")
	f.BoolVar(&o.builtin, "builtin", false, "use the embedded word lists instead of files")
	f.BoolVar(&o.lenient, "lenient", o.lenient, "replace malformed lines with empty words instead of failing")
	f.Uint64Var(&o.seed, "seed", o.seed, "seed for the opening guess (0 = random)")
	f.IntVar(&o.maxGuesses, "max-guesses", o.maxGuesses, "fail after this many guesses (0 = no limit)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "print letter feedback next to each guess")

	cmd.AddCommand(newBenchCmd(o), newDailyCmd(o, cfg.DailySalt))
	return cmd
}

// loadBank reads the word lists selected by the options.
func (o *options) loadBank() (*words.Bank, error) {
	if o.builtin {
		return words.LoadEmbedded()
	}
	policy := words.Strict
	if o.lenient {
		policy = words.Lenient
	}
	return words.LoadFiles(o.legalFile, o.guessableFile, policy)
}

// sessionOptions builds solver options; offset varies the seed per session.
func (o *options) sessionOptions(offset uint64) []solver.Option {
	opts := []solver.Option{
		solver.WithWeights(o.weights),
		solver.WithMaxGuesses(o.maxGuesses),
		solver.WithLogger(log.Logger),
	}
	if o.seed != 0 {
		opts = append(opts, solver.WithSeed(o.seed+offset))
	}
	return opts
}

// solve runs one session for target and prints a line per guess.
func (o *options) solve(ctx context.Context, out io.Writer, bank *words.Bank, target string) (solver.Result, error) {
	opts := append(o.sessionOptions(0), solver.WithProgress(func(r solver.Round) {
		if o.verbose {
			fmt.Fprintf(out, "guess: %s %s\n", r.Guess, r.Marks)
			return
		}
		fmt.Fprintf(out, "guess: %s\n", r.Guess)
	}))

	s, err := solver.NewSession(bank, target, opts...)
	if err != nil {
		return solver.Result{}, err
	}
	res, err := s.Run(ctx)
	if err != nil {
		return res, err
	}
	fmt.Fprintf(out, "%s is word!\nTook %d guesses\n", res.Target, res.Count)
	return res, nil
}
