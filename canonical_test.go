package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquivalent(t *testing.T) {
	dfa1 := build(t, "01", "s0", "s0", "s0-0->s1", "s0-1->s0", "s1-0->s1", "s1-1->s0")
	dfa2 := build(t, "01", "q0", "q0", "q0-0->q1", "q0-1->q0", "q1-0->q1", "q1-1->q0")

	assert.True(t, Equivalent(dfa1, dfa2))
	assert.True(t, Equivalent(dfa2, dfa1))
	assert.True(t, Equivalent(dfa1, dfa1))
	assert.True(t, Equivalent(dfa1, dfa1.Clone()))
}

func TestEquivalent_Differences(t *testing.T) {
	base := build(t, "01", "s0", "s0", "s0-0->s1", "s0-1->s0", "s1-0->s1", "s1-1->s0")

	tests := []struct {
		name  string
		other *Automaton
	}{
		{
			name:  "acceptance",
			other: build(t, "01", "s0", "s1", "s0-0->s1", "s0-1->s0", "s1-0->s1", "s1-1->s0"),
		},
		{
			name:  "edge target",
			other: build(t, "01", "s0", "s0", "s0-0->s1", "s0-1->s0", "s1-0->s0", "s1-1->s0"),
		},
		{
			name:  "missing edge",
			other: build(t, "01", "s0", "s0", "s0-0->s1", "s0-1->s0", "s1-0->s1"),
		},
		{
			name:  "alphabet",
			other: build(t, "ab", "s0", "s0", "s0-a->s1", "s0-b->s0", "s1-a->s1", "s1-b->s0"),
		},
		{
			name:  "extra reachable state",
			other: build(t, "01", "s0", "s0", "s0-0->s1", "s0-1->s0", "s1-0->s2", "s1-1->s0", "s2-0->s1", "s2-1->s0"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Equivalent(base, tt.other))
			assert.False(t, Equivalent(tt.other, base))
		})
	}
}

func TestEquivalent_IgnoresUnreachable(t *testing.T) {
	a := build(t, "01", "s0", "s1", "s0-0->s1", "s1-1->s0")
	b := build(t, "01", "s0", "s1 dead", "s0-0->s1", "s1-1->s0", "dead-0->s0")

	assert.True(t, Equivalent(a, b))
}

func TestCanonicalize(t *testing.T) {
	a := build(t, "ab", "start", "end",
		"start-b->mid", "start-a->end", "mid-a->end", "end-b->end", "lost-a->start")

	c := Canonicalize(a)
	assert.Equal(t, 3, c.Size())

	// Breadth first, successors in alphabet order: start, end (on a), mid (on b).
	assert.Equal(t, "start", c.State(0).Name)
	assert.Equal(t, "end", c.State(1).Name)
	assert.Equal(t, "mid", c.State(2).Name)

	mid, _ := a.State("mid")
	i, ok := c.Index(mid)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	lost, _ := a.State("lost")
	_, ok = c.Index(lost)
	assert.False(t, ok)

	j, ok := c.Target(0, "b")
	assert.True(t, ok)
	assert.Equal(t, 2, j)
	_, ok = c.Target(2, "b")
	assert.False(t, ok)
	_, ok = c.Target(0, "z")
	assert.False(t, ok)

	assert.False(t, c.IsAccept(0))
	assert.True(t, c.IsAccept(1))
	assert.False(t, c.IsAccept(2))
}
