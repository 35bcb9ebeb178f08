package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/infrastructure/storage"
	"svw.info/daygrid/internal/ports"
	"svw.info/daygrid/internal/render"
	"svw.info/daygrid/internal/usecase"
	"svw.info/daygrid/internal/validator"
)

var (
	solveAll    bool
	solveLimit  int
	solveFormat string
	solveCheck  bool
	solveSave   string
)

var solveCmd = &cobra.Command{
	Use:   "solve [month day]",
	Short: "Enumerate tilings for a date (defaults to today)",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveAll, "all", false, "print every solution, not just the first")
	solveCmd.Flags().IntVarP(&solveLimit, "limit", "n", 0, "print at most n solutions (0 = no cap)")
	solveCmd.Flags().StringVar(&solveFormat, "format", "calendar", "board format: simple|calendar|color")
	solveCmd.Flags().BoolVar(&solveCheck, "check", false, "validate every solution before printing")
	solveCmd.Flags().StringVar(&solveSave, "save", "", "write the result as JSON under this directory")
	rootCmd.AddCommand(solveCmd)
}

// parseDateArgs accepts either no arguments (today) or "month day".
func parseDateArgs(args []string) (domain.Date, error) {
	switch len(args) {
	case 0:
		return domain.Today(), nil
	case 2:
		month, err := strconv.Atoi(args[0])
		if err != nil {
			return domain.Date{}, fmt.Errorf("%w: month %q", domain.ErrInvalidDate, args[0])
		}
		day, err := strconv.Atoi(args[1])
		if err != nil {
			return domain.Date{}, fmt.Errorf("%w: day %q", domain.ErrInvalidDate, args[1])
		}
		return domain.NewDate(month, day)
	}
	return domain.Date{}, fmt.Errorf("expected no arguments or: month day")
}

func runSolve(cmd *cobra.Command, args []string) error {
	d, err := parseDateArgs(args)
	if err != nil {
		return err
	}
	tiler, kind, err := newTiler()
	if err != nil {
		return err
	}
	var store ports.Storage
	if solveSave != "" {
		store = storage.NewFS(solveSave)
	}
	svc := usecase.NewService(tiler, validator.New(), store)
	ctx := cmd.Context()

	fmt.Printf("Solving for %s...\n", d)
	sols, stats, err := svc.SolveDate(ctx, d)
	if err != nil {
		return err
	}
	logger.Debug("solve finished",
		"date", d.String(),
		"engine", string(kind),
		"count", len(sols),
		"nodes", stats.Nodes,
		"dur", stats.Duration.Round(time.Millisecond),
	)

	if solveCheck {
		a, b := d.Cells()
		for i, sol := range sols {
			ok, conflicts, err := svc.Validate(ctx, sol, a, b)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("solution %d failed validation at cells %v", i+1, conflicts)
			}
		}
	}

	if len(sols) == 0 {
		fmt.Println("No solution found!")
		return nil
	}

	shown := 1
	if solveAll {
		shown = len(sols)
	}
	if solveLimit > 0 && shown > solveLimit {
		shown = solveLimit
	}
	a, b := d.Cells()
	for i := 0; i < shown; i++ {
		if i > 0 {
			fmt.Println()
		}
		switch solveFormat {
		case "simple":
			fmt.Println(render.Simple(sols[i], a, b))
		case "color":
			fmt.Println(render.Color(sols[i], a, b))
		default:
			fmt.Println(render.Calendar(sols[i], d))
		}
	}
	fmt.Printf("\nFound %d solutions (%d nodes, %s)\n",
		len(sols), stats.Nodes, stats.Duration.Round(time.Millisecond))

	if solveSave != "" {
		if _, err := svc.SaveRecord(ctx, d, kind, sols, stats); err != nil {
			return err
		}
		logger.Info("record saved", "dir", solveSave, "date", d.String())
	}
	return nil
}
