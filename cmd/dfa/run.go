package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geange/dfa"
	"github.com/spf13/cobra"
)

func newRunCmd(c *cli) *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "run <automaton> [input...]",
		Short: "Run inputs through an automaton",
		Long: `Runs every input through the automaton and prints "accept" or "reject" next to it.
Without inputs, one input per line is read from stdin. Each character is a symbol
unless --sep splits inputs into multi-character symbols.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := dfa.Load(args[0])
			if err != nil {
				return err
			}
			c.logger.Debug("automaton loaded", "path", args[0], "states", a.NumStates())

			inputs := args[1:]
			if len(inputs) == 0 {
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, input := range inputs {
				var accepted bool
				if separator == "" {
					accepted, err = a.Run(input)
				} else {
					accepted, err = a.RunSymbols(splitSymbols(input, separator))
				}
				if err != nil {
					return fmt.Errorf("input %q: %w", input, err)
				}
				verdict := "reject"
				if accepted {
					verdict = "accept"
				}
				fmt.Fprintf(out, "%s\t%s\n", verdict, input)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&separator, "sep", "", "Separator between symbols of an input")
	return cmd
}

func splitSymbols(input, separator string) []string {
	if input == "" {
		return nil
	}
	return strings.Split(input, separator)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
