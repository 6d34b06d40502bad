// Package trie builds the character-indexed prefix trees drawn by trieviz.
//
// # Overview
//
// A trie stores a set of words so that words sharing a prefix share the
// nodes for that prefix. Each [Node] represents one character; a node is
// terminal when some inserted word ends exactly there. The root represents
// the empty prefix and carries no character.
//
// The package is intentionally small: words go in through [Build] or
// [Node.Insert] and the resulting tree is consumed read-only by the layout
// engine. There is no deletion and no lookup API.
//
// # Usage
//
//	root := trie.Build([]string{"trie", "tried", "tree"})
//	for _, child := range root.SortedChildren() {
//	    fmt.Println(child.Char) // "t"
//	}
//
// # Ordering
//
// Children are keyed by character, so insertion order never changes the
// structure. [Node.SortedChildren] re-establishes a deterministic
// left-to-right order by comparing characters bytewise, which matches
// alphabetical order for the lowercase ASCII words trieviz draws.
package trie
