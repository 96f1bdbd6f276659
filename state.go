package dfa

// State A state of an automaton, identified by its name and acceptance flag. States are plain
// values: two states are the same state iff both fields match, so a State can be used directly as
// a map key.
type State struct {
	Name      string
	Accepting bool
}

func (s State) String() string {
	mark := "✗"
	if s.Accepting {
		mark = "✓"
	}
	return s.Name + " (" + mark + ")"
}
