package dfa

import (
	"bytes"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomAutomaton builds a partial automaton over {a, b} with up to six states.
func randomAutomaton(t *testing.T, r *rand.Rand) *Automaton {
	t.Helper()

	n := 1 + r.IntN(6)
	states := make([]State, n)
	for i := range states {
		states[i] = State{Name: "r" + strconv.Itoa(i), Accepting: r.IntN(3) == 0}
	}
	a, err := NewAutomaton(states[0], []string{"a", "b"}, WithStates(states...))
	require.NoError(t, err)

	for _, from := range states {
		for _, symbol := range []string{"a", "b"} {
			if r.Float64() < 0.8 {
				require.NoError(t, a.AddTransition(from.Name, symbol, states[r.IntN(n)].Name))
			}
		}
	}
	return a
}

// words returns every string over {a, b} of length at most n.
func words(n int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range frontier {
			next = append(next, w+"a", w+"b")
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func accepts(t *testing.T, a *Automaton, input string) bool {
	t.Helper()
	ok, err := a.Run(input)
	require.NoError(t, err)
	return ok
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	inputs := words(6)

	for i := 0; i < 200; i++ {
		a := randomAutomaton(t, r)
		b := randomAutomaton(t, r)
		m := Minimize(a)

		assert.True(t, Equivalent(a, a))
		assert.True(t, Equivalent(Minimize(m), m), "minimize is idempotent")
		assert.LessOrEqual(t, m.NumStates(), a.NumStates())
		assert.True(t, Equivalent(Minimize(Reachable(a)), m))
		assert.True(t, SameLanguage(a, m))
		assert.True(t, SameLanguage(a, Totalize(a)))

		intersection, err := Intersection(a, b)
		require.NoError(t, err)
		ta, tb := Totalize(a), Totalize(b)
		union, err := Union(ta, tb)
		require.NoError(t, err)
		difference, err := Difference(ta, tb)
		require.NoError(t, err)

		for _, input := range inputs {
			inA, inB := accepts(t, a, input), accepts(t, b, input)

			assert.Equal(t, inA, accepts(t, m, input), "minimize preserves %q", input)
			assert.Equal(t, inA && inB, accepts(t, intersection, input), "intersection on %q", input)
			assert.Equal(t, inA || inB, accepts(t, union, input), "union on %q", input)
			assert.Equal(t, inA && !inB, accepts(t, difference, input), "difference on %q", input)
		}

		assert.Equal(t, IsEmpty(intersection), IsEmpty(Minimize(intersection)))
	}
}

func TestProperties_Renaming(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 100; i++ {
		a := randomAutomaton(t, r)

		d := a.Document()
		renamed := Document{
			StartingState:   "x" + d.StartingState,
			States:          make(map[string]StateDocument, len(d.States)),
			Alphabet:        d.Alphabet,
			TransitionTable: make(map[string]map[string]string, len(d.TransitionTable)),
		}
		for name, s := range d.States {
			renamed.States["x"+name] = StateDocument{Name: "x" + name, IsAccepting: s.IsAccepting}
		}
		for from, edges := range d.TransitionTable {
			renamed.TransitionTable["x"+from] = make(map[string]string, len(edges))
			for symbol, to := range edges {
				renamed.TransitionTable["x"+from][symbol] = "x" + to
			}
		}

		b, err := FromDocument(renamed)
		require.NoError(t, err)
		assert.True(t, Equivalent(a, b))
		assert.True(t, Equivalent(b, a))

		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, b, FormatJSON))
		c, err := Decode(&buf, FormatJSON)
		require.NoError(t, err)
		assert.True(t, Equivalent(b, c))
	}
}
