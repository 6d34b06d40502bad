// Package nodelink renders tries as traditional node-link diagrams.
//
// # Overview
//
// The hero images use a hand-tuned layout. For debugging a word list it is
// often quicker to look at the plain trie structure, so this package
// exports a trie as Graphviz DOT source and can lay it out with Graphviz
// itself.
//
// # Usage
//
// Convert a trie to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(trie.Build(words), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// Node ids are the prefixes the nodes spell, so they are unique and
// readable. The root is a point, word-ending nodes are double circles and
// all other nodes plain circles. Nodes and edges are emitted in sorted
// pre-order, so the same words always give the same DOT text.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
