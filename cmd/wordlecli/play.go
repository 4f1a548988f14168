package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/menu"
)

func newPlayCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive solver menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, words, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			m := menu.New(menu.Params{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				NewSolver: func() *wordle.Solver {
					return wordle.CreateSolver(words, wordle.SolverParams{Logger: logger})
				},
				Top:         cfg.Display.Top,
				ClearScreen: isatty.IsTerminal(os.Stdout.Fd()),
				Logger:      logger,
			})
			return m.Run(cmd.Context())
		},
	}
}
