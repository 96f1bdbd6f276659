package dfa

import "slices"

// CanonicalForm A renaming-independent numbering of the states reachable from an automaton's start
// state. The start state is 0 and the rest are numbered in breadth-first order, visiting
// successors in alphabet order. Unreachable states have no index.
type CanonicalForm struct {
	alphabet []string
	table    *table
}

// Canonicalize Computes the canonical form of a.
func Canonicalize(a *Automaton) *CanonicalForm {
	return &CanonicalForm{
		alphabet: a.alphabet,
		table:    newTable(a),
	}
}

// Size Number of reachable states.
func (c *CanonicalForm) Size() int {
	return c.table.size()
}

// State Returns the state with canonical index i.
func (c *CanonicalForm) State(i int) State {
	return c.table.states[i]
}

// Index Returns the canonical index of s, false if s is unreachable.
func (c *CanonicalForm) Index(s State) (int, bool) {
	i, ok := c.table.index[s]
	return i, ok
}

// Target Returns the canonical index reached from i on symbol, false if there is no such edge.
func (c *CanonicalForm) Target(i int, symbol string) (int, bool) {
	k, ok := slices.BinarySearch(c.alphabet, symbol)
	if !ok {
		return 0, false
	}
	j := c.table.delta[i][k]
	return j, j >= 0
}

// IsAccept Returns true if the state with canonical index i is accepting.
func (c *CanonicalForm) IsAccept(i int) bool {
	return c.table.accept.Test(uint(i))
}

// Equal Returns true if both forms have the same alphabet, the same number of states, the same
// canonical transition table (including which symbols have no edge) and the same accepting
// indexes.
func (c *CanonicalForm) Equal(other *CanonicalForm) bool {
	if !slices.Equal(c.alphabet, other.alphabet) {
		return false
	}
	if c.Size() != other.Size() {
		return false
	}
	for i, row := range c.table.delta {
		if !slices.Equal(row, other.table.delta[i]) {
			return false
		}
	}
	return c.table.accept.Equal(other.table.accept)
}

// Equivalent Reports whether a and b have the same alphabet and isomorphic reachable parts with
// matching accepting states. State names and unreachable states are ignored.
//
// This is a structural check. Two automata that accept the same language but are not both minimal
// (or differ in where they get stuck versus enter a dead state) can be judged not equivalent;
// use SameLanguage for language equality.
func Equivalent(a, b *Automaton) bool {
	if !sameAlphabet(a, b) {
		return false
	}
	return Canonicalize(a).Equal(Canonicalize(b))
}
