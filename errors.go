package dfa

import "errors"

var (
	// ErrInvalidSymbol is returned when a symbol is not part of the automaton's alphabet.
	ErrInvalidSymbol = errors.New("symbol not in alphabet")

	// ErrUnknownState is returned when a state name is absent from the automaton's states.
	ErrUnknownState = errors.New("unknown state")

	// ErrDuplicateTransition is returned when a (state, symbol) pair already has a transition.
	ErrDuplicateTransition = errors.New("transition already exists")

	// ErrAlphabetMismatch is returned by product operations on automata with different alphabets.
	ErrAlphabetMismatch = errors.New("alphabets differ")

	// ErrUnsupportedFormat is returned when a file extension maps to no persisted format.
	ErrUnsupportedFormat = errors.New("unsupported automaton file format")
)
