package main

import (
	"fmt"

	"github.com/geange/dfa"
	"github.com/spf13/cobra"
)

var productOperations = map[string]func(a, b *dfa.Automaton) (*dfa.Automaton, error){
	"intersection": dfa.Intersection,
	"union":        dfa.Union,
	"difference":   dfa.Difference,
}

func newProductCmd(c *cli) *cobra.Command {
	var (
		out      string
		minimize bool
	)

	cmd := &cobra.Command{
		Use:   "product <intersection|union|difference> <a> <b>",
		Short: "Combine two automata with a product construction",
		Long: `Builds the product of two automata over the same alphabet. Only state pairs
reachable from the pair of start states are created, and a pair only has an edge on
a symbol when both automata have one.`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"intersection", "union", "difference"},
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := productOperations[args[0]]
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			a, err := dfa.Load(args[1])
			if err != nil {
				return err
			}
			b, err := dfa.Load(args[2])
			if err != nil {
				return err
			}

			p, err := op(a, b)
			if err != nil {
				return err
			}
			c.logger.Info("product built", "operation", args[0], "states", p.NumStates())

			if minimize {
				p = dfa.Minimize(p, dfa.WithLogger(c.logger))
				c.logger.Info("product minimized", "states", p.NumStates())
			}
			return writeAutomaton(cmd, p, out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (.json, .yaml or .yml)")
	cmd.Flags().BoolVar(&minimize, "minimize", false, "Minimize the product")
	return cmd
}
