// Package pkg provides the libraries behind trieviz, which draws the hero
// images and tiling background of a blog series about tries.
//
// # Overview
//
// Each post in the series lists a handful of words. trieviz builds a prefix
// tree from them, lays the tree out with leaves packed left to right and
// parents centred over their children, and writes the result as SVG in the
// blog's palettes. A background tile arranges the trees of every post on a
// grid.
//
// # Architecture
//
// The data flow for one hero image:
//
//	words (series.toml)
//	      ↓
//	[trie.Build]       prefix tree, children sorted bytewise
//	      ↓
//	[layout.Build]     x/y coordinates and bounds
//	      ↓
//	[render.RenderHero] SVG document
//	      ↓
//	[output.Writer]    file in the output directory
//
// Background tiles add [compose.Arrange] between layout and rendering.
//
// # Quick Start
//
//	tree := layout.Build(trie.Build([]string{"go", "gopher"}),
//	    render.HeroStyle().NodeSpacing, render.HeroStyle().LevelHeight)
//	svg := render.RenderHero(tree, theme)
//
// # Main Packages
//
// [trie] - Prefix tree construction and traversal.
//
// [layout] - Leaf-packing tree layout with bounding boxes.
//
// [compose] - Grid arrangement of many laid-out trees.
//
// [render] - SVG hero and tile documents, plus PNG social cards drawn with gg.
//
// [nodelink] - Graphviz DOT export and Graphviz-rendered SVG of a trie.
//
// [theme] and [series] - Palettes and the embedded TOML describing the posts.
//
// [pipeline] - Runs the targets (heroes, background, cards) used by the CLI
// and the preview server, with logging and observability hooks.
//
// [output] - Writes artifacts and detects unchanged files.
//
// [cache] - In-memory store of rendered images for the preview server.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./...
//	go test -run Example ./pkg/...
package pkg
