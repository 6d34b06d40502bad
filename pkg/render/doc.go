// Package render draws laid-out tries.
//
// # Overview
//
// Every image is produced from a [layout.Tree] and a [theme.Theme]. The
// drawing is always the same two passes: first one cubic S-curve per
// parent-child edge, then the node glyphs on top of them, so circles cover
// the line ends.
//
//   - [RenderHero]: a standalone SVG for one trie on a gridded canvas
//   - [RenderTile]: a transparent SVG with several tries composed on a grid
//   - [RenderCard]: a PNG raster of the hero drawing for social cards
//
// # Styles
//
// Sizes come from a [Style]. [HeroStyle] and [TileStyle] are the two
// presets the series uses; the layout must be built with the same
// spacing the style declares:
//
//	st := render.HeroStyle()
//	tree := layout.Build(trie.Build(words), st.NodeSpacing, st.LevelHeight)
//	svg := render.RenderHero(tree, th)
//
// # Determinism
//
// Output is a pure function of its inputs. Numbers are written in their
// shortest round-trip decimal form without rounding, children are visited
// in sorted order and nothing time- or randomness-dependent is embedded, so
// rerunning the generator reproduces the same bytes.
//
// [layout.Tree]: github.com/matzehuels/trieviz/pkg/layout.Tree
// [theme.Theme]: github.com/matzehuels/trieviz/pkg/theme.Theme
package render
