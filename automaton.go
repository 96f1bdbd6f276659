package dfa

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Automaton Represents a deterministic finite automaton: a start state, a table of states keyed by
// name, a fixed alphabet and a partial transition function. A state may lack an outgoing edge for
// some symbols; running into such a gap makes the automaton stuck and the input is rejected.
//
// Build an automaton with NewAutomaton, then add states with AddState and edges with
// AddTransition. Determinism is enforced when an edge is added. The alphabet never changes after
// construction.
//
// An Automaton is not safe for concurrent mutation. Minimize, Product, Equivalent and friends only
// read their operands, so any number of them may run in parallel as long as nobody calls
// AddState or AddTransition on the same instance at the same time.
type Automaton struct {
	start State

	states map[string]State

	// Sorted, deduplicated alphabet. Algorithms iterate symbols in this order.
	alphabet []string
	symbols  map[string]struct{}

	// Outgoing edges keyed by the source state value captured when the edge was added.
	transitions map[State]map[string]State
}

// Transition A single edge of an automaton.
type Transition struct {
	From   State
	Symbol string
	To     State
}

type automatonOptions struct {
	states      []State
	transitions map[string]map[string]string
}

// Option configures NewAutomaton.
type Option func(*automatonOptions)

// WithStates adds the given states to the automaton, in order. A later state replaces an earlier
// one with the same name.
func WithStates(states ...State) Option {
	return func(o *automatonOptions) {
		o.states = append(o.states, states...)
	}
}

// WithTransitions adds every edge of table, keyed from-state name -> symbol -> to-state name.
// Edges are validated exactly like AddTransition.
func WithTransitions(table map[string]map[string]string) Option {
	return func(o *automatonOptions) {
		if o.transitions == nil {
			o.transitions = make(map[string]map[string]string, len(table))
		}
		for from, edges := range table {
			if o.transitions[from] == nil {
				o.transitions[from] = make(map[string]string, len(edges))
			}
			for symbol, to := range edges {
				o.transitions[from][symbol] = to
			}
		}
	}
}

// NewAutomaton Creates an automaton over alphabet whose start state is start. The start state is
// added to the state table unless a state with the same name and acceptance is supplied through
// WithStates; a same-named state with a different acceptance flag is an error, since the start
// state must be a member of the table.
func NewAutomaton(start State, alphabet []string, options ...Option) (*Automaton, error) {
	opts := &automatonOptions{}
	for _, opt := range options {
		opt(opts)
	}

	sorted, symbols, err := newAlphabet(alphabet)
	if err != nil {
		return nil, err
	}

	a := &Automaton{
		start:       start,
		states:      make(map[string]State, len(opts.states)+1),
		alphabet:    sorted,
		symbols:     symbols,
		transitions: make(map[State]map[string]State),
	}

	for _, s := range opts.states {
		a.states[s.Name] = s
	}
	if existing, ok := a.states[start.Name]; !ok {
		a.states[start.Name] = start
	} else if existing != start {
		return nil, fmt.Errorf("%w: start state %s conflicts with %s", ErrUnknownState, start, existing)
	}

	// Sorted so the first failing edge is reported deterministically.
	froms := make([]string, 0, len(opts.transitions))
	for from := range opts.transitions {
		froms = append(froms, from)
	}
	slices.Sort(froms)
	for _, from := range froms {
		edges := opts.transitions[from]
		labels := make([]string, 0, len(edges))
		for symbol := range edges {
			labels = append(labels, symbol)
		}
		slices.Sort(labels)
		for _, symbol := range labels {
			if err := a.AddTransition(from, symbol, edges[symbol]); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

func newAlphabet(alphabet []string) ([]string, map[string]struct{}, error) {
	symbols := make(map[string]struct{}, len(alphabet))
	sorted := make([]string, 0, len(alphabet))
	for _, symbol := range alphabet {
		if symbol == "" {
			return nil, nil, fmt.Errorf("%w: empty symbol", ErrInvalidSymbol)
		}
		if _, ok := symbols[symbol]; ok {
			continue
		}
		symbols[symbol] = struct{}{}
		sorted = append(sorted, symbol)
	}
	slices.Sort(sorted)
	return sorted, symbols, nil
}

// AddState Adds a state, replacing any existing state with the same name. It never fails.
//
// Edges are keyed by the state value captured when they were added, so replacing a state that
// already has edges (for instance to flip its acceptance flag) leaves those edges attached to the
// old value: they are not re-pointed to the new state and are no longer reachable by name. Add
// states before their transitions.
func (a *Automaton) AddState(name string, accepting bool) State {
	s := State{Name: name, Accepting: accepting}
	a.states[name] = s
	return s
}

// AddTransition Adds the edge from -symbol-> to. Both states must exist, symbol must be in the
// alphabet and from must not already have an edge for symbol.
func (a *Automaton) AddTransition(from, symbol, to string) error {
	if !a.HasSymbol(symbol) {
		return fmt.Errorf("%w: %q not in %v", ErrInvalidSymbol, symbol, a.alphabet)
	}
	source, ok := a.states[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, from)
	}
	target, ok := a.states[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, to)
	}
	if _, ok := a.transitions[source][symbol]; ok {
		return fmt.Errorf("%w: from %q on %q", ErrDuplicateTransition, from, symbol)
	}
	a.setTransition(source, symbol, target)
	return nil
}

// setTransition adds an edge without validation; algorithms building fresh automata use it.
func (a *Automaton) setTransition(from State, symbol string, to State) {
	edges, ok := a.transitions[from]
	if !ok {
		edges = make(map[string]State, len(a.alphabet))
		a.transitions[from] = edges
	}
	edges[symbol] = to
}

// Start Returns the start state.
func (a *Automaton) Start() State {
	return a.start
}

// State Looks up a state by name.
func (a *Automaton) State(name string) (State, bool) {
	s, ok := a.states[name]
	return s, ok
}

// States Returns all states sorted by name.
func (a *Automaton) States() []State {
	states := make([]State, 0, len(a.states))
	for _, s := range a.states {
		states = append(states, s)
	}
	slices.SortFunc(states, func(x, y State) int {
		return strings.Compare(x.Name, y.Name)
	})
	return states
}

// NumStates How many states this automaton has, reachable or not.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// Alphabet Returns a sorted copy of the alphabet.
func (a *Automaton) Alphabet() []string {
	return slices.Clone(a.alphabet)
}

// HasSymbol Returns true if symbol belongs to the alphabet.
func (a *Automaton) HasSymbol(symbol string) bool {
	_, ok := a.symbols[symbol]
	return ok
}

// Step Performs lookup in transitions. Returns false if from has no edge for symbol.
func (a *Automaton) Step(from State, symbol string) (State, bool) {
	to, ok := a.transitions[from][symbol]
	return to, ok
}

// Transitions Iterates over every edge, ordered by source name, then source acceptance, then
// symbol. Edges left behind by a replaced state (see AddState) are included.
func (a *Automaton) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		sources := make([]State, 0, len(a.transitions))
		for s := range a.transitions {
			sources = append(sources, s)
		}
		slices.SortFunc(sources, compareStates)

		for _, from := range sources {
			edges := a.transitions[from]
			for _, symbol := range a.alphabet {
				to, ok := edges[symbol]
				if !ok {
					continue
				}
				if !yield(Transition{From: from, Symbol: symbol, To: to}) {
					return
				}
			}
		}
	}
}

// NumTransitions How many edges this automaton has.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, edges := range a.transitions {
		n += len(edges)
	}
	return n
}

// Clone Returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	b := &Automaton{
		start:       a.start,
		states:      make(map[string]State, len(a.states)),
		alphabet:    slices.Clone(a.alphabet),
		symbols:     make(map[string]struct{}, len(a.symbols)),
		transitions: make(map[State]map[string]State, len(a.transitions)),
	}
	for name, s := range a.states {
		b.states[name] = s
	}
	for symbol := range a.symbols {
		b.symbols[symbol] = struct{}{}
	}
	for from, edges := range a.transitions {
		copied := make(map[string]State, len(edges))
		for symbol, to := range edges {
			copied[symbol] = to
		}
		b.transitions[from] = copied
	}
	return b
}

// newLike returns an empty automaton sharing a's alphabet, with start as its only state.
func newLike(a *Automaton, start State) *Automaton {
	b := &Automaton{
		start:       start,
		states:      map[string]State{start.Name: start},
		alphabet:    slices.Clone(a.alphabet),
		symbols:     make(map[string]struct{}, len(a.symbols)),
		transitions: make(map[State]map[string]State),
	}
	for symbol := range a.symbols {
		b.symbols[symbol] = struct{}{}
	}
	return b
}

func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DFA(Starting state: %s, Σ: {%s}):", a.start, strings.Join(a.alphabet, ", "))

	var (
		current State
		open    bool
	)
	for t := range a.Transitions() {
		if !open || t.From != current {
			if open {
				sb.WriteString("}")
			}
			fmt.Fprintf(&sb, "\n\t%s: {", t.From)
			current, open = t.From, true
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q -> %s", t.Symbol, t.To)
	}
	if open {
		sb.WriteString("}")
	}
	return sb.String()
}

func compareStates(x, y State) int {
	if c := strings.Compare(x.Name, y.Name); c != 0 {
		return c
	}
	switch {
	case x.Accepting == y.Accepting:
		return 0
	case !x.Accepting:
		return -1
	default:
		return 1
	}
}

func sameAlphabet(a, b *Automaton) bool {
	return slices.Equal(a.alphabet, b.alphabet)
}
