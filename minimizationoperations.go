package dfa

import (
	"io"
	"log/slog"
	"slices"
	"strconv"
)

type minimizeOptions struct {
	logger *slog.Logger
}

// MinimizeOption configures Minimize.
type MinimizeOption func(*minimizeOptions)

// WithLogger Logs every refinement round at debug level.
func WithLogger(logger *slog.Logger) MinimizeOption {
	return func(o *minimizeOptions) {
		o.logger = logger
	}
}

// signature The group reached on each alphabet symbol, -1 where there is no edge.
type signature []int

func (s signature) Hash() uint64 {
	return mixInts(s...)
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	return ok && slices.Equal(s, o)
}

// Minimize
// Returns a new automaton with one state per class of equivalent states of a, using partition
// refinement: start from the accepting/non-accepting split and keep splitting groups whose members
// reach different groups on some symbol until the number of groups stops growing. Every round
// recomputes all signatures, which is quadratic in the worst case.
//
// States unreachable from the start state are pruned before refinement and never appear in the
// result. Result states are named s0, s1, ... with s0 the start state; a state is accepting iff
// its members are. Missing edges are kept missing: a state with no edge on a symbol is only
// grouped with states that also lack it.
func Minimize(a *Automaton, options ...MinimizeOption) *Automaton {
	opts := &minimizeOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		opt(opts)
	}

	t := newTable(a)
	groupOf := make([]int, t.size())

	// Initial partition: accepting states, then the rest. Empty groups are left out.
	var accepting, rejecting []int
	for i := range t.states {
		if t.accept.Test(uint(i)) {
			accepting = append(accepting, i)
		} else {
			rejecting = append(rejecting, i)
		}
	}
	partition := make([][]int, 0, 2)
	for _, group := range [][]int{accepting, rejecting} {
		if len(group) == 0 {
			continue
		}
		for _, s := range group {
			groupOf[s] = len(partition)
		}
		partition = append(partition, group)
	}

	for round := 1; ; round++ {
		next := make([][]int, 0, len(partition))
		for _, group := range partition {
			split := newHashMap[int](withCapacity(len(group)))
			for _, s := range group {
				sig := make(signature, len(a.alphabet))
				for k, to := range t.delta[s] {
					if to < 0 {
						sig[k] = -1
					} else {
						sig[k] = groupOf[to]
					}
				}
				j, ok := split.Get(sig)
				if !ok {
					j = len(next)
					split.Set(sig, j)
					next = append(next, nil)
				}
				next[j] = append(next[j], s)
			}
		}

		opts.logger.Debug("partition refined", "round", round, "groups", len(next))

		grew := len(next) > len(partition)
		partition = next
		for g, group := range partition {
			for _, s := range group {
				groupOf[s] = g
			}
		}
		if !grew {
			break
		}
	}

	// Members stay in ascending index order through every split, so group[0] is the lowest index
	// and the group holding the start state (index 0) sorts first.
	slices.SortFunc(partition, func(x, y []int) int {
		return x[0] - y[0]
	})
	for g, group := range partition {
		for _, s := range group {
			groupOf[s] = g
		}
	}

	states := make([]State, len(partition))
	for g, group := range partition {
		states[g] = State{
			Name: "s" + strconv.Itoa(g),
			Accepting: slices.ContainsFunc(group, func(s int) bool {
				return t.accept.Test(uint(s))
			}),
		}
	}

	m := newLike(a, states[0])
	for _, s := range states {
		m.states[s.Name] = s
	}
	for g, group := range partition {
		// Any member works: members of a stable group agree on the target group of every symbol.
		for k, to := range t.delta[group[0]] {
			if to >= 0 {
				m.setTransition(states[g], a.alphabet[k], states[groupOf[to]])
			}
		}
	}

	opts.logger.Debug("automaton minimized",
		"states", a.NumStates(),
		"reachable", t.size(),
		"minimal", len(states),
	)
	return m
}
