package dfa

import "strconv"

// MakeEmpty
// Returns a new automaton over alphabet with the empty language.
func MakeEmpty(alphabet []string) (*Automaton, error) {
	return NewAutomaton(State{Name: "q0"}, alphabet)
}

// MakeEmptyString
// Returns a new automaton over alphabet that accepts only the empty string.
func MakeEmptyString(alphabet []string) (*Automaton, error) {
	return NewAutomaton(State{Name: "q0", Accepting: true}, alphabet)
}

// MakeAnyString
// Returns a new automaton that accepts all strings over alphabet.
func MakeAnyString(alphabet []string) (*Automaton, error) {
	a, err := NewAutomaton(State{Name: "q0", Accepting: true}, alphabet)
	if err != nil {
		return nil, err
	}
	for _, symbol := range a.alphabet {
		if err := a.AddTransition("q0", symbol, "q0"); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// MakeString
// Returns a new automaton over alphabet that accepts only word, read one rune per symbol. The
// automaton is not total: it gets stuck as soon as the input leaves word.
func MakeString(alphabet []string, word string) (*Automaton, error) {
	runes := []rune(word)
	a, err := NewAutomaton(State{Name: "q0", Accepting: len(runes) == 0}, alphabet)
	if err != nil {
		return nil, err
	}
	for i, r := range runes {
		to := "q" + strconv.Itoa(i+1)
		a.AddState(to, i == len(runes)-1)
		if err := a.AddTransition("q"+strconv.Itoa(i), string(r), to); err != nil {
			return nil, err
		}
	}
	return a, nil
}
