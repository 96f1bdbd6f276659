package dfa

import "github.com/bits-and-blooms/bitset"

// table Anchors the states reachable from the start state to dense indexes. Indexes are assigned
// in breadth-first order from the start state (index 0), visiting successors in alphabet order,
// so two automata with isomorphic reachable parts produce identical tables.
type table struct {
	states []State
	index  map[State]int

	// delta[i][k] is the index of the target of states[i] on alphabet[k], or -1 without an edge.
	delta [][]int

	accept *bitset.BitSet
}

func newTable(a *Automaton) *table {
	t := &table{
		states: []State{a.start},
		index:  map[State]int{a.start: 0},
	}

	// states doubles as the work list: everything past upto is yet to be expanded.
	for upto := 0; upto < len(t.states); upto++ {
		row := make([]int, len(a.alphabet))
		for k, symbol := range a.alphabet {
			to, ok := a.Step(t.states[upto], symbol)
			if !ok {
				row[k] = -1
				continue
			}
			j, seen := t.index[to]
			if !seen {
				j = len(t.states)
				t.index[to] = j
				t.states = append(t.states, to)
			}
			row[k] = j
		}
		t.delta = append(t.delta, row)
	}

	t.accept = bitset.New(uint(len(t.states)))
	for i, s := range t.states {
		if s.Accepting {
			t.accept.Set(uint(i))
		}
	}
	return t
}

func (t *table) size() int {
	return len(t.states)
}
