package layout

import (
	"math"

	"github.com/matzehuels/trieviz/pkg/trie"
)

// Node is a positioned projection of a trie node.
type Node struct {
	X, Y     float64
	Char     string
	Path     string
	Terminal bool
	Root     bool
	Children []*Node // Sorted by character
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Bounds is the extent of a laid-out tree. The minimum y is always 0.
type Bounds struct {
	MinX, MaxX float64
	MaxY       float64
}

// Width returns the horizontal extent between the outermost node centers.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent from the root to the deepest node.
func (b Bounds) Height() float64 { return b.MaxY }

// Contains reports whether the point lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= 0 && y <= b.MaxY
}

// Tree is a positioned layout together with its bounds.
type Tree struct {
	Root   *Node
	Bounds Bounds
}

// Build lays out the trie rooted at root. Leaves are nodeSpacing apart and
// each level sits levelHeight below its parent.
func Build(root *trie.Node, nodeSpacing, levelHeight float64) Tree {
	lr := convert(root, 0, levelHeight)

	cursor := 0.0
	assignX(lr, nodeSpacing, &cursor)

	return Tree{Root: lr, Bounds: measure(lr)}
}

func convert(n *trie.Node, depth int, levelHeight float64) *Node {
	sorted := n.SortedChildren()
	ln := &Node{
		Y:        float64(depth) * levelHeight,
		Char:     n.Char,
		Path:     n.Path,
		Terminal: n.Terminal,
		Root:     depth == 0,
		Children: make([]*Node, 0, len(sorted)),
	}
	for _, c := range sorted {
		ln.Children = append(ln.Children, convert(c, depth+1, levelHeight))
	}
	return ln
}

func assignX(n *Node, spacing float64, cursor *float64) {
	if n.IsLeaf() {
		n.X = *cursor
		*cursor += spacing
		return
	}
	for _, c := range n.Children {
		assignX(c, spacing, cursor)
	}
	first := n.Children[0].X
	last := n.Children[len(n.Children)-1].X
	n.X = (first + last) / 2
}

func measure(root *Node) Bounds {
	b := Bounds{MinX: math.Inf(1), MaxX: math.Inf(-1)}
	root.Walk(func(n *Node) {
		b.MinX = min(b.MinX, n.X)
		b.MaxX = max(b.MaxX, n.X)
		b.MaxY = max(b.MaxY, n.Y)
	})
	return b
}

// Walk visits n and its descendants in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// NodeCount returns the number of nodes in the tree.
func (t Tree) NodeCount() int {
	count := 0
	t.Root.Walk(func(*Node) { count++ })
	return count
}

// LeafCount returns the number of leaves in the tree.
func (t Tree) LeafCount() int {
	count := 0
	t.Root.Walk(func(n *Node) {
		if n.IsLeaf() {
			count++
		}
	})
	return count
}
