package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/geange/dfa"
	"github.com/geange/dfa/render"
	"github.com/spf13/cobra"
)

func newGraphCmd(c *cli) *cobra.Command {
	var (
		format  string
		rankDir string
		out     string
		image   string
	)

	cmd := &cobra.Command{
		Use:   "graph <automaton>",
		Short: "Export the automaton as a diagram",
		Long: `Prints the automaton as Graphviz DOT (default) or a Mermaid flowchart. With --render
and --output, DOT is piped through the Graphviz dot binary to produce an image instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := dfa.Load(args[0])
			if err != nil {
				return err
			}
			dir, err := render.ParseRankDir(rankDir)
			if err != nil {
				return err
			}

			var source string
			switch format {
			case "dot":
				source = render.DOT(a, render.WithRankDir(dir))
			case "mermaid":
				source = render.Mermaid(a)
			default:
				return fmt.Errorf("unknown graph format %q", format)
			}

			if image != "" {
				if format != "dot" {
					return errors.New("--render needs --format dot")
				}
				if out == "" {
					return errors.New("--render needs --output")
				}
				c.logger.Debug("rendering with graphviz", "format", image, "output", out)
				return render.Render(cmd.Context(), source, out, image)
			}

			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), source)
				return err
			}
			return os.WriteFile(out, []byte(source), 0o644)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "Diagram format: dot or mermaid")
	cmd.Flags().StringVar(&rankDir, "rankdir", string(render.LeftRight), "Layout direction for dot: TB, LR, BT or RL")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file")
	cmd.Flags().StringVar(&image, "render", "", "Render an image with Graphviz (png, svg, pdf, ...)")
	return cmd
}
