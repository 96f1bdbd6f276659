// Package render draws automata as directed graphs.
//
// DOT produces Graphviz source and Mermaid produces a Mermaid flowchart. Both only read the
// automaton through its public iteration API. Render pipes DOT source through the Graphviz dot
// binary to produce an image.
package render
