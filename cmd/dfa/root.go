package main

import (
	"log/slog"

	"github.com/geange/dfa"
	"github.com/geange/dfa/internal/logging"
	"github.com/spf13/cobra"
)

// cli holds state shared by every subcommand.
type cli struct {
	verbose   bool
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "dfa",
		Short: "dfa builds, minimizes and compares deterministic finite automata",
		Long: `dfa works on automata stored as JSON or YAML documents (chosen by file extension).
It runs inputs through them, minimizes them, combines them with product constructions
and renders them as Graphviz or Mermaid diagrams.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := logging.ParseFormat(c.logFormat)
			if err != nil {
				return err
			}
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			c.logger = logging.New(cmd.ErrOrStderr(), level, format)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(
		newRunCmd(c),
		newMinimizeCmd(c),
		newProductCmd(c),
		newEquivCmd(c),
		newGraphCmd(c),
		newVersionCmd(),
	)
	return rootCmd
}

// writeAutomaton saves a to out, or prints it as JSON when out is empty.
func writeAutomaton(cmd *cobra.Command, a *dfa.Automaton, out string) error {
	if out == "" {
		return dfa.Encode(cmd.OutOrStdout(), a, dfa.FormatJSON)
	}
	return dfa.Save(out, a)
}

