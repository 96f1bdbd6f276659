package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/geange/dfa"
)

// RankDir Direction of the graph layout.
type RankDir string

const (
	TopBottom RankDir = "TB"
	LeftRight RankDir = "LR"
	BottomTop RankDir = "BT"
	RightLeft RankDir = "RL"
)

// ParseRankDir Accepts TB, LR, BT or RL, case-insensitively.
func ParseRankDir(s string) (RankDir, error) {
	dir := RankDir(strings.ToUpper(s))
	switch dir {
	case TopBottom, LeftRight, BottomTop, RightLeft:
		return dir, nil
	default:
		return "", fmt.Errorf("unknown rank direction %q", s)
	}
}

type options struct {
	rankDir  RankDir
	name     string
	fontName string
}

// Option configures DOT.
type Option func(*options)

// WithRankDir Sets the layout direction. Defaults to LeftRight.
func WithRankDir(dir RankDir) Option {
	return func(o *options) {
		o.rankDir = dir
	}
}

// WithName Sets the digraph name. Defaults to "dfa".
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// DOT Returns Graphviz source for a. Accepting states are drawn with a double circle and an
// invisible start node points at the start state with a green edge. Edges between the same two
// states are merged into one edge labelled with the sorted, comma-separated symbols.
func DOT(a *dfa.Automaton, opts ...Option) string {
	o := &options{
		rankDir:  LeftRight,
		name:     "dfa",
		fontName: "Arial",
	}
	for _, opt := range opts {
		opt(o)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", quote(o.name))
	fmt.Fprintf(&sb, "  rankdir=%s;\n", o.rankDir)
	fmt.Fprintf(&sb, "  graph [label=%s, fontsize=18];\n",
		quote("DFA with alphabet {"+strings.Join(a.Alphabet(), ", ")+"}"))
	fmt.Fprintf(&sb, "  node [shape=circle, fontname=%s, fontsize=12];\n", quote(o.fontName))
	fmt.Fprintf(&sb, "  edge [fontname=%s, fontsize=10];\n", quote(o.fontName))
	sb.WriteString("\n")

	sb.WriteString("  start [style=invis];\n")
	fmt.Fprintf(&sb, "  start -> %s [color=green];\n", quote(a.Start().Name))
	sb.WriteString("\n")

	for _, s := range a.States() {
		if s.Accepting {
			fmt.Fprintf(&sb, "  %s [shape=doublecircle];\n", quote(s.Name))
		} else {
			fmt.Fprintf(&sb, "  %s;\n", quote(s.Name))
		}
	}
	sb.WriteString("\n")

	for _, e := range groupEdges(a) {
		fmt.Fprintf(&sb, "  %s -> %s [label=%s];\n", quote(e.from), quote(e.to), quote(e.label()))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// edge All symbols leading from one state to another.
type edge struct {
	from, to string
	symbols  []string
}

func (e edge) label() string {
	return strings.Join(e.symbols, ", ")
}

// groupEdges merges parallel transitions, in order of first appearance.
func groupEdges(a *dfa.Automaton) []edge {
	type key struct{ from, to string }

	index := make(map[key]int)
	var edges []edge
	for t := range a.Transitions() {
		k := key{t.From.Name, t.To.Name}
		i, ok := index[k]
		if !ok {
			i = len(edges)
			index[k] = i
			edges = append(edges, edge{from: k.from, to: k.to})
		}
		edges[i].symbols = append(edges[i].symbols, t.Symbol)
	}
	for i := range edges {
		slices.Sort(edges[i].symbols)
	}
	return edges
}
