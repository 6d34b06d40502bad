package render

import "github.com/matzehuels/trieviz/pkg/fonts"

// Style holds the geometry and typography of a drawing.
type Style struct {
	NodeSpacing float64 // Horizontal distance between neighbouring leaves
	LevelHeight float64 // Vertical distance between depths
	Padding     float64 // Canvas margin around the tree (heroes only)

	NodeRadius float64
	NodeStroke float64
	RootRadius float64
	RootStroke float64 // Zero draws the root marker without an outline

	HaloGap     float64 // Distance between a terminal node and its halo ring
	HaloStroke  float64
	HaloOpacity float64 // Zero omits the opacity attribute

	EdgeStroke float64

	FontFamily string
	FontSize   float64
}

// HeroStyle returns the style of the per-post header images. Each call
// returns a fresh copy, so callers may adjust it for [WithStyle].
func HeroStyle() Style { return heroStyle }

// TileStyle returns the style of the small tries in the background tile.
func TileStyle() Style { return tileStyle }

var heroStyle = Style{
	NodeSpacing: 52,
	LevelHeight: 64,
	Padding:     50,
	NodeRadius:  18,
	NodeStroke:  2.5,
	RootRadius:  8,
	RootStroke:  2,
	HaloGap:     5,
	HaloStroke:  2,
	HaloOpacity: 0.3,
	EdgeStroke:  2.5,
	FontFamily:  fonts.MonoFamily,
	FontSize:    15,
}

var tileStyle = Style{
	NodeSpacing: 30,
	LevelHeight: 36,
	NodeRadius:  10,
	NodeStroke:  1.5,
	RootRadius:  4,
	HaloGap:     3,
	HaloStroke:  1.2,
	EdgeStroke:  1.5,
	FontFamily:  "'JetBrains Mono',monospace",
	FontSize:    9,
}
