package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/trieviz/pkg/layout"
	"github.com/matzehuels/trieviz/pkg/theme"
)

// RenderHero renders t as a standalone SVG on a gridded canvas sized to
// the tree plus padding. Pattern ids carry the theme variant so several
// heroes can be inlined into one page. The default style is [HeroStyle].
func RenderHero(t layout.Tree, th theme.Theme, opts ...SVGOption) []byte {
	r := newSVGRenderer(HeroStyle(), opts...)
	st := r.style

	w := t.Bounds.Width() + 2*st.Padding
	h := t.Bounds.Height() + 2*st.Padding
	W, H := num(w), num(h)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<svg xmlns=\"%s\" viewBox=\"0 0 %s %s\" width=\"%s\" height=\"%s\">\n", svgNS, W, H, W, H)
	writeGridDefs(&buf, th)
	fmt.Fprintf(&buf, "  <rect width=\"%s\" height=\"%s\" fill=\"%s\"/>\n", W, H, th.Background)
	fmt.Fprintf(&buf, "  <rect width=\"%s\" height=\"%s\" fill=\"url(#grid-lg-%s)\"/>\n", W, H, th.Variant)
	writeTree(&buf, t.Root, th, st, st.Padding-t.Bounds.MinX, st.Padding)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// Grid pattern cell sizes.
const (
	gridFine   = 20
	gridCoarse = 100
)

func writeGridDefs(buf *bytes.Buffer, th theme.Theme) {
	v := th.Variant
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, "    <pattern id=\"grid-sm-%s\" width=\"%d\" height=\"%d\" patternUnits=\"userSpaceOnUse\">\n", v, gridFine, gridFine)
	fmt.Fprintf(buf, "      <path d=\"M %d 0 L 0 0 0 %d\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.5\"/>\n", gridFine, gridFine, th.Grid)
	buf.WriteString("    </pattern>\n")
	fmt.Fprintf(buf, "    <pattern id=\"grid-lg-%s\" width=\"%d\" height=\"%d\" patternUnits=\"userSpaceOnUse\">\n", v, gridCoarse, gridCoarse)
	fmt.Fprintf(buf, "      <rect width=\"%d\" height=\"%d\" fill=\"url(#grid-sm-%s)\"/>\n", gridCoarse, gridCoarse, v)
	fmt.Fprintf(buf, "      <path d=\"M %d 0 L 0 0 0 %d\" fill=\"none\" stroke=\"%s\" stroke-width=\"1\"/>\n", gridCoarse, gridCoarse, th.GridStrong)
	buf.WriteString("    </pattern>\n")
	buf.WriteString("  </defs>\n")
}
