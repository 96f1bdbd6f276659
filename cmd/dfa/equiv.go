package main

import (
	"fmt"

	"github.com/geange/dfa"
	"github.com/spf13/cobra"
)

func newEquivCmd(c *cli) *cobra.Command {
	var language bool

	cmd := &cobra.Command{
		Use:   "equiv <a> <b>",
		Short: "Compare two automata",
		Long: `Compares the reachable parts of two automata up to state renaming. With --language
both are completed and minimized first, so any two automata accepting the same strings
compare equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := dfa.Load(args[0])
			if err != nil {
				return err
			}
			b, err := dfa.Load(args[1])
			if err != nil {
				return err
			}

			var same bool
			if language {
				same = dfa.SameLanguage(a, b)
			} else {
				same = dfa.Equivalent(a, b)
			}
			c.logger.Debug("automata compared", "language", language, "equivalent", same)

			if same {
				fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&language, "language", false, "Compare accepted languages")
	return cmd
}
