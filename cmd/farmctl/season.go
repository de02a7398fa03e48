package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/season"
)

func seasonCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Inspect or move the global season calendar",
	}
	cmd.AddCommand(seasonShowCmd(a), seasonAdvanceCmd(a), seasonSetCmd(a))
	return cmd
}

func seasonShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current season clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lengths, err := a.lengths()
			if err != nil {
				return err
			}
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			clock, err := store.GetSeasonClock(ctx)
			if err != nil {
				return err
			}
			printClock(cmd.OutOrStdout(), clock, lengths)
			return nil
		},
	}
}

func seasonAdvanceCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance the calendar by one or more days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}
			ctx := cmd.Context()
			lengths, err := a.lengths()
			if err != nil {
				return err
			}
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			svc := season.NewService(store, nil, lengths, nil, 0)
			out := cmd.OutOrStdout()

			clock, err := store.GetSeasonClock(ctx)
			if err != nil {
				return err
			}
			for i := 0; i < days; i++ {
				prev := clock.CurrentSeason
				clock, err = svc.AdvanceDay(ctx)
				if err != nil {
					return err
				}
				if clock.CurrentSeason != prev {
					fmt.Fprintf(out, "%s day %d: %s begins\n",
						color.New(color.FgYellow).Sprint("season change"), clock.DaysPassed, seasonName(clock.CurrentSeason))
				}
			}
			printClock(out, clock, lengths)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 1, "number of days to advance")
	return cmd
}

func seasonSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <season>",
		Short: "Force the current season (name or index 0-3)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSeason(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			lengths, err := a.lengths()
			if err != nil {
				return err
			}
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			clock, err := season.NewService(store, nil, lengths, nil, 0).SetSeason(ctx, index)
			if err != nil {
				return err
			}
			printClock(cmd.OutOrStdout(), clock, lengths)
			return nil
		},
	}
}

// parseSeason accepts "spring".."winter" in any case, or 0-3
func parseSeason(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := 0; i < domain.NumSeasons; i++ {
		if domain.Season(i).String() == s {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && i < domain.NumSeasons {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidSeasonIndex, s)
}

func printClock(w io.Writer, c *domain.SeasonClock, lengths season.Lengths) {
	bold := color.New(color.Bold)
	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Season:   "), color.New(color.FgGreen).Sprint(seasonName(c.CurrentSeason)))
	fmt.Fprintf(w, "%s %d\n", bold.Sprint("Day:      "), c.DaysPassed)
	fmt.Fprintf(w, "%s %d of %d\n", bold.Sprint("In season:"), c.DaysIntoSeason()+1, lengths[c.CurrentSeason.Clamped()])
	fmt.Fprintf(w, "%s %d\n", bold.Sprint("Remaining:"), season.DaysRemaining(*c, lengths))
}
