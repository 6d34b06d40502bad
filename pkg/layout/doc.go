// Package layout positions a trie on a 2D plane for rendering.
//
// # Overview
//
// [Build] converts a [trie.Node] tree into a tree of [Node] values carrying
// x/y coordinates, then reports the [Bounds] of the result. The coordinate
// system has y growing downward; the root sits at y = 0.
//
// # Algorithm
//
// The layout is the classic leaf-packing heuristic, in three passes:
//
//  1. Conversion: every node gets y = depth × levelHeight, and its children
//     are sorted by character so that left-to-right order is reproducible.
//  2. X assignment: a post-order walk with one shared cursor starting at 0.
//     A leaf takes the cursor value and advances it by nodeSpacing. An
//     internal node is centered between its first and last child.
//  3. Bounds: a final walk tracks min/max x and max y.
//
// Sibling subtrees never overlap horizontally and parents sit centered over
// their descendants. The result is neither balanced nor minimal in width.
//
// A trie holding only its root produces a single node at x = 0 and bounds
// of zero width and height; callers centering content must not divide by
// the width.
//
// # Usage
//
//	tree := layout.Build(trie.Build(words), 52, 64)
//	fmt.Println(tree.Bounds.Width(), tree.Bounds.Height())
package layout
