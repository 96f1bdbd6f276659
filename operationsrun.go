package dfa

import "fmt"

// Run Walks input from the start state, one rune per symbol, and reports whether the state reached
// is accepting. See RunSymbols.
func (a *Automaton) Run(input string) (bool, error) {
	symbols := make([]string, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return a.RunSymbols(symbols)
}

// RunSymbols Walks symbols from the start state. Every symbol is checked against the alphabet
// before walking, so an unknown symbol is an error even when the walk would get stuck first.
// When the current state has no edge for the next symbol the walk is stuck and the input is
// rejected without error. The empty input is accepted iff the start state is accepting.
func (a *Automaton) RunSymbols(symbols []string) (bool, error) {
	for i, symbol := range symbols {
		if !a.HasSymbol(symbol) {
			return false, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, symbol, i)
		}
	}

	state := a.start
	for _, symbol := range symbols {
		next, ok := a.Step(state, symbol)
		if !ok {
			return false, nil
		}
		state = next
	}
	return state.Accepting, nil
}
