package main

import (
	"github.com/geange/dfa"
	"github.com/spf13/cobra"
)

func newMinimizeCmd(c *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "minimize <automaton>",
		Short: "Minimize an automaton",
		Long: `Merges equivalent states by partition refinement. States unreachable from the
start state are dropped. The result is written to --output, or to stdout as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := dfa.Load(args[0])
			if err != nil {
				return err
			}

			m := dfa.Minimize(a, dfa.WithLogger(c.logger))
			c.logger.Info("automaton minimized",
				"path", args[0],
				"states", a.NumStates(),
				"minimal", m.NumStates(),
			)
			return writeAutomaton(cmd, m, out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (.json, .yaml or .yml)")
	return cmd
}
