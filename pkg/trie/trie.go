package trie

import (
	"cmp"
	"maps"
	"slices"
	"unicode/utf8"
)

// Node is one character position shared by every word with the same prefix.
type Node struct {
	Char     string           // Single character, empty for the root
	Path     string           // Prefix spelled from the root to this node
	Terminal bool             // Whether an inserted word ends here
	Children map[string]*Node // Keyed by the next character
}

// New returns an empty root node.
func New() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// Build inserts every word into a fresh trie and returns its root.
// An empty word marks the root itself as terminal.
func Build(words []string) *Node {
	root := New()
	for _, w := range words {
		root.Insert(w)
	}
	return root
}

// Insert adds word below n, creating missing nodes along its path, and
// marks the final node terminal. Words are split into UTF-8 sequences; an
// invalid byte becomes a single-byte character of its own.
func (n *Node) Insert(word string) {
	node := n
	for i := 0; i < len(word); {
		_, size := utf8.DecodeRuneInString(word[i:])
		ch := word[i : i+size]
		i += size

		child, ok := node.Children[ch]
		if !ok {
			child = &Node{
				Char:     ch,
				Path:     n.Path + word[:i],
				Children: make(map[string]*Node),
			}
			node.Children[ch] = child
		}
		node = child
	}
	node.Terminal = true
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// SortedChildren returns the children of n ordered by character.
func (n *Node) SortedChildren() []*Node {
	return slices.SortedFunc(maps.Values(n.Children), func(a, b *Node) int {
		return cmp.Compare(a.Char, b.Char)
	})
}

// Walk visits n and its descendants depth-first in sorted child order.
// Returning false from fn skips the subtree below that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.SortedChildren() {
		c.Walk(fn)
	}
}

// Size returns the number of nodes in the trie rooted at n, root included.
func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Terminals returns the number of terminal nodes below and including n.
func (n *Node) Terminals() int {
	count := 0
	n.Walk(func(node *Node) bool {
		if node.Terminal {
			count++
		}
		return true
	})
	return count
}

// Depth returns the length of the longest root-to-leaf path in edges.
func (n *Node) Depth() int {
	deepest := 0
	for _, c := range n.Children {
		deepest = max(deepest, c.Depth()+1)
	}
	return deepest
}
