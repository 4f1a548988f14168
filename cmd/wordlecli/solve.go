package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"crosswarped.com/wordle"
)

type solveFlags struct {
	greens      string
	yellows     []string
	blacks      string
	profile     bool
	profileFile string
}

func newSolveCmd(flags *rootFlags) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the suggestions for one set of constraints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, words, err := flags.setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if sf.profile {
				f, err := os.Create(sf.profileFile)
				if err != nil {
					return fmt.Errorf("creating profile file: %w", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("starting CPU profile: %w", err)
				}
				defer pprof.StopCPUProfile()
			}

			s := wordle.CreateSolver(words, wordle.SolverParams{Logger: logger})
			if err := applyConstraints(s, sf); err != nil {
				return err
			}
			printSuggestions(cmd.OutOrStdout(), s.Solve(), cfg.Display.Top)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&sf.greens, "greens", ".....", "green pattern, e.g. s..r.")
	f.StringArrayVar(&sf.yellows, "yellow", nil, "yellow sequence, e.g. .a...; repeat for each guess")
	f.StringVar(&sf.blacks, "blacks", "", "black letters, e.g. tgu")
	f.BoolVar(&sf.profile, "profile", false, "write a CPU profile")
	f.StringVar(&sf.profileFile, "profile-file", "cpu.pprof", "the file to write the CPU profile to")
	return cmd
}

// applyConstraints adds blacks last so the green and yellow letters are
// known when they are filtered.
func applyConstraints(s *wordle.Solver, sf *solveFlags) error {
	if err := s.SetGreens(sf.greens); err != nil {
		return err
	}
	for _, y := range sf.yellows {
		if err := s.AddYellow(y); err != nil {
			return err
		}
	}
	return s.AddBlacks(sf.blacks)
}

func printSuggestions(w io.Writer, got wordle.Suggestions, top int) {
	rows := make([][]string, 0, top)
	for i, s := range got.Top(top) {
		rows = append(rows, []string{fmt.Sprintf("%d.", i+1), s.Word, s.FrequencyString()})
	}
	r := lipgloss.NewRenderer(w)
	fmt.Fprintf(w, "Search Space: %d\n", got.SearchSpace)
	fmt.Fprintln(w, table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Faint(true)).
		Headers("", "word", "frequency").
		Rows(rows...).
		String())
}
