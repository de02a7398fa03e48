package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/FarmEconomy_Go/internal/crafting"
	"github.com/osse101/FarmEconomy_Go/internal/crop"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/resource"
	"github.com/osse101/FarmEconomy_Go/internal/synergy"
	"github.com/osse101/FarmEconomy_Go/internal/tool"
)

var titleCase = cases.Title(language.English)

// displayName turns "watering_can" into "Watering Can"
func displayName(name string) string {
	return titleCase.String(strings.ReplaceAll(name, "_", " "))
}

func seasonName(s domain.Season) string {
	return displayName(s.String())
}

type catalogPrinter func(io.Writer) error

var catalogSections = []struct {
	name  string
	print catalogPrinter
}{
	{"crops", printCrops},
	{"tools", printTools},
	{"resources", printResources},
	{"recipes", printRecipes},
	{"patterns", printPatterns},
}

func catalogCmd() *cobra.Command {
	names := make([]string, 0, len(catalogSections))
	for _, s := range catalogSections {
		names = append(names, s.name)
	}

	return &cobra.Command{
		Use:       "catalog [" + strings.Join(names, "|") + "]",
		Short:     "Print the static game catalog",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: names,
		// The catalog is compiled in and needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range catalogSections {
				if len(args) == 1 && args[0] != s.name {
					continue
				}
				fmt.Fprintln(out, color.New(color.Bold, color.FgCyan).Sprint(displayName(s.name)))
				if err := s.print(out); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func table(w io.Writer, header string, rows func(tw *tabwriter.Writer)) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

func printCrops(w io.Writer) error {
	return table(w, "NAME\tGROWTH\tBASE YIELD\tFERTILITY COST\tSEASONS", func(tw *tabwriter.Writer) {
		for _, c := range crop.All() {
			seasons := make([]string, 0, len(c.ValidSeasons))
			for _, s := range c.ValidSeasons {
				seasons = append(seasons, seasonName(s))
			}
			name := displayName(c.Type.String())
			if c.Restorative {
				name += " *"
			}
			fmt.Fprintf(tw, "%s\t%ds\t%d\t%d\t%s\n", name, c.GrowthTime, c.BaseYield, c.FertilityCost, strings.Join(seasons, ", "))
		}
	})
}

func printTools(w io.Writer) error {
	return table(w, "TOOL\tCOST", func(tw *tabwriter.Writer) {
		for _, t := range tool.All() {
			fmt.Fprintf(tw, "%s\t%d\n", displayName(t.Name), t.Cost)
		}
	})
}

func printResources(w io.Writer) error {
	return table(w, "RESOURCE\tMAX STACK\tPER GATHER\tCOOLDOWN", func(tw *tabwriter.Writer) {
		for _, r := range resource.All() {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%ds\n", displayName(r.Name), r.MaxStack, r.MaxPerAction, r.Cooldown)
		}
	})
}

func printRecipes(w io.Writer) error {
	return table(w, "ITEM\tINPUTS\tOUTPUT\tDURATION", func(tw *tabwriter.Writer) {
		for _, r := range crafting.All() {
			inputs := make([]string, 0, len(r.Inputs))
			for _, in := range r.Inputs {
				inputs = append(inputs, fmt.Sprintf("%d %s", in.Amount, in.Resource.String()))
			}
			duration := "instant"
			if !r.Instant() {
				duration = fmt.Sprintf("%ds", r.Duration)
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", displayName(r.Item.String()), strings.Join(inputs, ", "), r.Output, duration)
		}
	})
}

func printPatterns(w io.Writer) error {
	var failed error
	err := table(w, "PATTERN\tYIELD\tDESCRIPTION", func(tw *tabwriter.Writer) {
		for p := domain.PatternType(0); p < domain.NumPatternTypes; p++ {
			b, err := synergy.ForPattern(p)
			if err != nil {
				failed = err
				return
			}
			fmt.Fprintf(tw, "%s\t%d.%02dx\t%s\n", displayName(p.String()), b.YieldMultiplierBP/10000, b.YieldMultiplierBP%10000/100, b.Description)
		}
	})
	if failed != nil {
		return failed
	}
	return err
}
