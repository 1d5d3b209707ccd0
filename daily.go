package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
)

func newDailyCmd(o *options, salt string) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Solve the deterministic word of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if date != "" {
				t, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				day = t
			}
			bank, err := o.loadBank()
			if err != nil {
				return err
			}
			target := daily.Pick(day, salt, bank.Legal())
			if target == "" {
				return fmt.Errorf("daily: legal word list is empty")
			}
			log.Info().Str("date", daily.DateKey(day)).Msg("solving word of the day")
			_, err = o.solve(cmd.Context(), cmd.OutOrStdout(), bank, target)
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to solve, YYYY-MM-DD (default today, UTC)")
	cmd.Flags().StringVar(&salt, "salt", salt, "salt for the daily word pick")
	return cmd
}
