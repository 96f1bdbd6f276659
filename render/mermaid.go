package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geange/dfa"
)

// Mermaid Returns a Mermaid flowchart for a. States get positional ids (n0, n1, ... in name
// order) so arbitrary state names never clash with Mermaid syntax; names only appear as labels.
// Accepting states are double circles, the start state is pointed at by an unlabelled blank node.
func Mermaid(a *dfa.Automaton) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make(map[string]string, a.NumStates())
	for i, s := range a.States() {
		id := "n" + strconv.Itoa(i)
		ids[s.Name] = id

		opener, closer := "((", "))"
		if s.Accepting {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, escapeMermaid(s.Name), closer)
	}

	sb.WriteString("    start[\" \"]\n")
	sb.WriteString("    style start fill:none,stroke:none\n")
	fmt.Fprintf(&sb, "    start --> %s\n", ids[a.Start().Name])

	for _, e := range groupEdges(a) {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", ids[e.from], escapeMermaid(e.label()), ids[e.to])
	}
	return sb.String()
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
