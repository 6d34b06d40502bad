package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/trieviz/pkg/compose"
	"github.com/matzehuels/trieviz/pkg/layout"
	"github.com/matzehuels/trieviz/pkg/theme"
)

// RenderTile composes trees on grid and renders them into one transparent
// SVG meant to be repeated as a page background. Trees fill the grid in
// row-major order; the canvas is sized by [compose.Arrange]. The default
// style is [TileStyle].
func RenderTile(trees []layout.Tree, th theme.Theme, grid compose.Grid, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(TileStyle(), opts...)

	bounds := make([]layout.Bounds, len(trees))
	for i, t := range trees {
		bounds[i] = t.Bounds
	}
	c, err := compose.Arrange(bounds, grid)
	if err != nil {
		return nil, err
	}

	W, H := num(c.Width), num(c.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<svg xmlns=\"%s\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n", svgNS, W, H, W, H)
	for _, p := range c.Placements {
		t := trees[p.Index]
		writeTree(&buf, t.Root, th, r.style, p.TranslateX(t.Bounds), p.TranslateY())
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
