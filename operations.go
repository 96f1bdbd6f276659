package dfa

import "fmt"

// AcceptFunc Decides whether a product state is accepting from the acceptance of its two halves.
type AcceptFunc func(aAccepting, bAccepting bool) bool

// statePair A product state: table indexes into the two operands.
type statePair struct {
	a, b int
}

func (p statePair) Hash() uint64 {
	return mixInts(p.a, p.b)
}

func (p statePair) Equals(other Hashable) bool {
	o, ok := other.(statePair)
	return ok && p == o
}

// Product
// Builds the product automaton of a and b. Its states are the pairs (qa, qb) reachable from
// (start(a), start(b)) by stepping both operands on the same symbol; a pair is accepting iff
// combine(qa.Accepting, qb.Accepting). A pair has an edge on a symbol only when both qa and qb have
// one, so a path on which either operand gets stuck is dropped, even for union.
//
// Pair states are named "(qa,qb)". If two distinct pairs would get the same name (state names
// containing commas or parentheses), later ones are suffixed with ' until unique.
//
// Fails with ErrAlphabetMismatch unless a and b have the same alphabet.
func Product(a, b *Automaton, combine AcceptFunc) (*Automaton, error) {
	if !sameAlphabet(a, b) {
		return nil, fmt.Errorf("%w: %v and %v", ErrAlphabetMismatch, a.alphabet, b.alphabet)
	}

	ta, tb := newTable(a), newTable(b)
	taken := make(map[string]struct{})
	newPairState := func(p statePair) State {
		qa, qb := ta.states[p.a], tb.states[p.b]
		return State{
			Name:      uniqueName(taken, "("+qa.Name+","+qb.Name+")"),
			Accepting: combine(qa.Accepting, qb.Accepting),
		}
	}

	start := statePair{0, 0}
	ids := newHashMap[int](withCapacity(ta.size() + tb.size()))
	ids.Set(start, 0)
	pairs := []statePair{start}
	states := []State{newPairState(start)}
	result := newLike(a, states[0])

	// pairs is the FIFO work list; each pair gets its id once and is expanded once.
	for upto := 0; upto < len(pairs); upto++ {
		current := pairs[upto]
		for k, symbol := range a.alphabet {
			nextA, nextB := ta.delta[current.a][k], tb.delta[current.b][k]
			if nextA < 0 || nextB < 0 {
				continue
			}
			next := statePair{nextA, nextB}
			id, ok := ids.Get(next)
			if !ok {
				id = len(pairs)
				ids.Set(next, id)
				pairs = append(pairs, next)
				s := newPairState(next)
				states = append(states, s)
				result.states[s.Name] = s
			}
			result.setTransition(states[upto], symbol, states[id])
		}
	}

	return result, nil
}

// Intersection Accepts what both a and b accept.
func Intersection(a, b *Automaton) (*Automaton, error) {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// Union Accepts what a or b accepts, restricted to inputs on which neither gets stuck.
func Union(a, b *Automaton) (*Automaton, error) {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Difference Accepts what a accepts and b rejects, restricted to inputs on which neither gets
// stuck.
func Difference(a, b *Automaton) (*Automaton, error) {
	return Product(a, b, func(x, y bool) bool { return x && !y })
}

// IsEmpty
// Returns true if the given automaton accepts no strings.
func IsEmpty(a *Automaton) bool {
	if a.start.Accepting {
		// Common case: it accepts the empty string
		return false
	}
	if len(a.transitions[a.start]) == 0 {
		// Common case: just one initial state
		return true
	}
	return newTable(a).accept.None()
}

// IsTotal
// Returns true if every state has an edge for every symbol, so the automaton never gets stuck.
func IsTotal(a *Automaton) bool {
	for _, s := range a.states {
		if len(a.transitions[s]) != len(a.alphabet) {
			return false
		}
	}
	return true
}

// Totalize
// Returns a copy of a in which every missing edge leads to a new non-accepting sink state that
// loops on every symbol. The sink is named "sink", suffixed with ' if that name is taken. A total
// automaton is returned as a plain copy.
func Totalize(a *Automaton) *Automaton {
	result := a.Clone()
	if IsTotal(a) {
		return result
	}

	taken := make(map[string]struct{}, len(a.states))
	for name := range a.states {
		taken[name] = struct{}{}
	}
	sink := result.AddState(uniqueName(taken, "sink"), false)

	for _, s := range result.States() {
		for _, symbol := range result.alphabet {
			if _, ok := result.Step(s, symbol); !ok {
				result.setTransition(s, symbol, sink)
			}
		}
	}
	return result
}

// Reachable
// Returns a copy of a without the states that cannot be reached from the start state.
func Reachable(a *Automaton) *Automaton {
	t := newTable(a)
	result := newLike(a, a.start)
	for _, s := range t.states {
		result.states[s.Name] = s
	}
	for i, row := range t.delta {
		for k, to := range row {
			if to >= 0 {
				result.setTransition(t.states[i], a.alphabet[k], t.states[to])
			}
		}
	}
	return result
}

// SameLanguage
// Reports whether a and b accept exactly the same strings. Both are made total and minimized, and
// the minimal automata are compared with Equivalent.
func SameLanguage(a, b *Automaton) bool {
	if !sameAlphabet(a, b) {
		return false
	}
	return Equivalent(Minimize(Totalize(a)), Minimize(Totalize(b)))
}

func uniqueName(taken map[string]struct{}, name string) string {
	for {
		if _, ok := taken[name]; !ok {
			taken[name] = struct{}{}
			return name
		}
		name += "'"
	}
}
