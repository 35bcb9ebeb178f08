package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
	"svw.info/daygrid/internal/solver"
)

var (
	flagEngine   string
	flagLogLevel string

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "daygrid",
	Short: "Solver for the puzzle-a-day calendar board",
	Long: `daygrid enumerates every way to tile the 7x7 calendar board with its
eight pieces so that exactly one month and one day stay visible.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl := slog.LevelInfo
		switch strings.ToLower(flagLogLevel) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEngine, "engine", "backtrack", "solving engine: backtrack|dlx|sat")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug|info|warn|error")
}

// newTiler builds the engine selected by --engine.
func newTiler() (ports.Tiler, domain.EngineKind, error) {
	kind, err := domain.ParseEngineKind(flagEngine)
	if err != nil {
		return nil, "", err
	}
	return solver.ForKind(kind), kind, nil
}
