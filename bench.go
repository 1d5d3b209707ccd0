package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func newBenchCmd(o *options) *cobra.Command {
	var (
		workers, limit int
		show           string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve every legal word of the day and report guess statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := o.loadBank()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			st := store.NewMemoryStore()
			if err := o.bench(ctx, bank, st, workers, limit); err != nil {
				return err
			}
			sum, err := st.Summary(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sessions: %d\nsolved: %d\nfailed: %d\n", sum.Sessions, sum.Solved, sum.Failed)
			fmt.Fprintf(out, "mean guesses: %.2f\nmax guesses: %d (%s)\n", sum.Mean, sum.Max, sum.MaxTarget)
			if show == "" {
				return nil
			}
			rec, err := st.Get(ctx, strings.ToLower(strings.TrimSpace(show)))
			if err != nil {
				return fmt.Errorf("show %q: %w", show, err)
			}
			fmt.Fprintf(out, "%s: %s\n", rec.Target, strings.Join(rec.Guesses, " "))
			if rec.Err != "" {
				fmt.Fprintf(out, "%s failed: %s\n", rec.Target, rec.Err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of sessions solved in parallel")
	cmd.Flags().IntVar(&limit, "limit", 0, "solve only the first N distinct legal words (0 = all)")
	cmd.Flags().StringVar(&show, "show", "", "print the guesses taken for this word after the run")
	return cmd
}

// bench solves each distinct legal word as an independent session and records
// the outcome in st. Session failures are recorded; only cancellation aborts.
func (o *options) bench(ctx context.Context, bank *words.Bank, st store.Store, workers, limit int) error {
	targets := distinct(bank.Legal())
	if limit > 0 && limit < len(targets) {
		targets = targets[:limit]
	}
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, target := range targets {
		g.Go(func() error {
			s, err := solver.NewSession(bank, target, o.sessionOptions(uint64(i))...)
			if err != nil {
				return err
			}
			res, err := s.Run(ctx)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			rec := store.Record{Target: target, Guesses: res.Guesses, Solved: res.Solved}
			if err != nil {
				rec.Err = err.Error()
				log.Warn().Err(err).Str("target", target).Msg("session failed")
			}
			return st.Save(ctx, rec)
		})
	}
	return g.Wait()
}

// distinct drops repeated words, keeping first-seen order. The store keeps
// one record per target, so each target is solved once.
func distinct(ws []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if seen.Add(w) {
			out = append(out, w)
		}
	}
	return out
}
