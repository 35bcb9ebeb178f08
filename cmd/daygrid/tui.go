package main

import (
	"github.com/spf13/cobra"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
	"svw.info/daygrid/internal/solver"
	"svw.info/daygrid/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse solutions interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		tilers := map[domain.EngineKind]ports.Tiler{
			domain.EngineBacktrack: solver.NewBacktracking(),
			domain.EngineDLX:       solver.NewExactCover(),
			domain.EngineSAT:       solver.NewSAT(),
		}
		return tui.Run(tilers, domain.Today())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
