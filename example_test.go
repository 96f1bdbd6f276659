package dfa_test

import (
	"fmt"

	"github.com/geange/dfa"
)

func Example() {
	states := []dfa.State{
		{Name: "1"}, {Name: "2"}, {Name: "3"},
		{Name: "4", Accepting: true},
		{Name: "5"},
		{Name: "6", Accepting: true},
		{Name: "7", Accepting: true},
	}
	a, err := dfa.NewAutomaton(states[0], []string{"a", "b"},
		dfa.WithStates(states...),
		dfa.WithTransitions(map[string]map[string]string{
			"1": {"a": "2", "b": "3"},
			"2": {"a": "4", "b": "5"},
			"3": {"a": "6", "b": "7"},
			"4": {"a": "4", "b": "5"},
			"5": {"a": "6", "b": "7"},
			"6": {"a": "4", "b": "5"},
			"7": {"a": "6", "b": "7"},
		}),
	)
	if err != nil {
		panic(err)
	}

	m := dfa.Minimize(a)
	fmt.Println(a.NumStates(), "->", m.NumStates())
	for t := range m.Transitions() {
		fmt.Printf("%s -%s-> %s\n", t.From, t.Symbol, t.To)
	}
	// Output:
	// 7 -> 5
	// s0 (✗) -a-> s1 (✗)
	// s0 (✗) -b-> s2 (✗)
	// s1 (✗) -a-> s3 (✓)
	// s1 (✗) -b-> s2 (✗)
	// s2 (✗) -a-> s3 (✓)
	// s2 (✗) -b-> s4 (✓)
	// s3 (✓) -a-> s3 (✓)
	// s3 (✓) -b-> s2 (✗)
	// s4 (✓) -a-> s3 (✓)
	// s4 (✓) -b-> s4 (✓)
}

func ExampleIntersection() {
	alphabet := []string{"0", "1"}
	endsInOne, _ := dfa.NewAutomaton(dfa.State{Name: "other"}, alphabet,
		dfa.WithStates(dfa.State{Name: "one", Accepting: true}),
		dfa.WithTransitions(map[string]map[string]string{
			"other": {"0": "other", "1": "one"},
			"one":   {"0": "other", "1": "one"},
		}),
	)
	anything, _ := dfa.MakeAnyString(alphabet)

	both, err := dfa.Intersection(endsInOne, anything)
	if err != nil {
		panic(err)
	}
	for _, input := range []string{"", "01", "10"} {
		ok, _ := both.Run(input)
		fmt.Printf("%q %v\n", input, ok)
	}
	fmt.Println(dfa.SameLanguage(both, endsInOne))
	// Output:
	// "" false
	// "01" true
	// "10" false
	// true
}
