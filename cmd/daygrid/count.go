package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"svw.info/daygrid/internal/almanac"
)

var (
	countYear    bool
	countWorkers int
)

var countCmd = &cobra.Command{
	Use:   "count [month day]",
	Short: "Count tilings without printing them",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runCount,
}

func init() {
	countCmd.Flags().BoolVar(&countYear, "year", false, "count every date on the board")
	countCmd.Flags().IntVar(&countWorkers, "workers", 4, "concurrent solves for --year")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	tiler, kind, err := newTiler()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if countYear {
		logger.Info("counting full year", "engine", string(kind), "workers", countWorkers)
		census := almanac.New(tiler)
		res, stats, err := census.Run(ctx, almanac.AllDates(), countWorkers)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
		fmt.Fprintln(w, "date\tsolutions\tnodes\tduration")
		total := 0
		for _, r := range res {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.Date, r.Count, r.Nodes, r.Duration.Round(time.Millisecond))
			total += r.Count
		}
		if err := w.Flush(); err != nil {
			return err
		}
		lo, hi := almanac.Extremes(res)
		fmt.Printf("\n%d dates, %d tilings total; fewest %s (%d), most %s (%d); %s elapsed\n",
			len(res), total, lo.Date, lo.Count, hi.Date, hi.Count, stats.Duration.Round(time.Millisecond))
		return nil
	}

	d, err := parseDateArgs(args)
	if err != nil {
		return err
	}
	n, stats, err := tiler.Count(ctx, d.MonthCell(), d.DayCell())
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d solutions (%d nodes, %s)\n", d, n, stats.Nodes, stats.Duration.Round(time.Millisecond))
	return nil
}
