package dfa

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StateDocument The persisted form of a State.
type StateDocument struct {
	Name        string `json:"name" yaml:"name"`
	IsAccepting bool   `json:"is_accepting" yaml:"is_accepting"`
}

// Document The persisted form of an Automaton. States are referenced by name throughout.
type Document struct {
	StartingState   string                       `json:"starting_state" yaml:"starting_state"`
	States          map[string]StateDocument     `json:"states" yaml:"states"`
	Alphabet        []string                     `json:"alphabet" yaml:"alphabet"`
	TransitionTable map[string]map[string]string `json:"transition_table" yaml:"transition_table"`
}

// Document Returns the persisted form of a. Only edges leaving the current state of each name are
// written; edges stranded on a replaced state (see AddState) are dropped.
func (a *Automaton) Document() Document {
	d := Document{
		StartingState:   a.start.Name,
		States:          make(map[string]StateDocument, len(a.states)),
		Alphabet:        a.Alphabet(),
		TransitionTable: make(map[string]map[string]string, len(a.transitions)),
	}
	for name, s := range a.states {
		d.States[name] = StateDocument{Name: s.Name, IsAccepting: s.Accepting}
	}
	for t := range a.Transitions() {
		if a.states[t.From.Name] != t.From {
			continue
		}
		edges, ok := d.TransitionTable[t.From.Name]
		if !ok {
			edges = make(map[string]string)
			d.TransitionTable[t.From.Name] = edges
		}
		edges[t.Symbol] = t.To.Name
	}
	return d
}

// FromDocument Rebuilds an automaton from its persisted form. Every state key must match the
// state's name (an empty name takes the key), and the start state and every transition endpoint
// must be listed in States.
func FromDocument(d Document) (*Automaton, error) {
	states := make([]State, 0, len(d.States))
	for key, sd := range d.States {
		name := sd.Name
		if name == "" {
			name = key
		}
		if name != key {
			return nil, fmt.Errorf("%w: state listed as %q is named %q", ErrUnknownState, key, name)
		}
		states = append(states, State{Name: name, Accepting: sd.IsAccepting})
	}

	start, ok := d.States[d.StartingState]
	if !ok {
		return nil, fmt.Errorf("%w: starting state %q", ErrUnknownState, d.StartingState)
	}

	return NewAutomaton(
		State{Name: d.StartingState, Accepting: start.IsAccepting},
		d.Alphabet,
		WithStates(states...),
		WithTransitions(d.TransitionTable),
	)
}

func (a *Automaton) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Document())
}

func (a *Automaton) UnmarshalJSON(data []byte) error {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	b, err := FromDocument(d)
	if err != nil {
		return err
	}
	*a = *b
	return nil
}

func (a *Automaton) MarshalYAML() (any, error) {
	return a.Document(), nil
}

func (a *Automaton) UnmarshalYAML(value *yaml.Node) error {
	var d Document
	if err := value.Decode(&d); err != nil {
		return err
	}
	b, err := FromDocument(d)
	if err != nil {
		return err
	}
	*a = *b
	return nil
}

// Format A persisted encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf Picks the format from a file extension: .json, .yaml or .yml.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Encode Writes a to w in the given format. JSON is indented by two spaces.
func Encode(w io.Writer, a *Automaton, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode Reads an automaton in the given format from r.
func Decode(r io.Reader, format Format) (*Automaton, error) {
	var d Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode json automaton: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode yaml automaton: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return FromDocument(d)
}

// Save Writes a to path, in the format given by its extension.
func Save(path string, a *Automaton) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, a, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// Load Reads an automaton from path, in the format given by its extension.
func Load(path string) (*Automaton, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return a, nil
}
