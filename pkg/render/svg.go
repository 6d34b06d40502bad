package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/matzehuels/trieviz/pkg/layout"
	"github.com/matzehuels/trieviz/pkg/theme"
)

const svgNS = "http://www.w3.org/2000/svg"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style Style
}

// WithStyle overrides the preset style of a renderer.
func WithStyle(s Style) SVGOption {
	return func(r *svgRenderer) { r.style = s }
}

func newSVGRenderer(def Style, opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: def}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// num formats v in its shortest exact decimal form. Negative zero prints
// as 0.
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EscapeXML escapes s for use as SVG text content or attribute value.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// writeTree emits one tree as a translated group: all edges, then all
// nodes, both in pre-order.
func writeTree(buf *bytes.Buffer, root *layout.Node, th theme.Theme, st Style, tx, ty float64) {
	fmt.Fprintf(buf, "  <g transform=\"translate(%s,%s)\">\n", num(tx), num(ty))
	writeEdges(buf, root, th, st)
	root.Walk(func(n *layout.Node) { writeNode(buf, n, th, st) })
	buf.WriteString("  </g>\n")
}

func writeEdges(buf *bytes.Buffer, n *layout.Node, th theme.Theme, st Style) {
	for _, c := range n.Children {
		midY := (n.Y + c.Y) / 2
		fmt.Fprintf(buf,
			"    <path d=\"M%s,%s C%s,%s %s,%s %s,%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" stroke-linecap=\"round\"/>\n",
			num(n.X), num(n.Y), num(n.X), num(midY), num(c.X), num(midY), num(c.X), num(c.Y),
			th.Border, num(st.EdgeStroke))
		writeEdges(buf, c, th, st)
	}
}

func writeNode(buf *bytes.Buffer, n *layout.Node, th theme.Theme, st Style) {
	cx, cy := num(n.X), num(n.Y)

	if n.Root {
		if st.RootStroke > 0 {
			fmt.Fprintf(buf, "    <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
				cx, cy, num(st.RootRadius), th.TextMuted, th.TextMuted, num(st.RootStroke))
		} else {
			fmt.Fprintf(buf, "    <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
				cx, cy, num(st.RootRadius), th.TextMuted)
		}
		return
	}

	fill := th.NodeFill()
	if n.Terminal {
		fill = th.Accent
		fmt.Fprintf(buf, "    <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"",
			cx, cy, num(st.NodeRadius+st.HaloGap), th.Accent, num(st.HaloStroke))
		if st.HaloOpacity > 0 {
			fmt.Fprintf(buf, " opacity=\"%s\"", num(st.HaloOpacity))
		}
		buf.WriteString("/>\n")
	}
	fmt.Fprintf(buf, "    <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		cx, cy, num(st.NodeRadius), fill, th.Accent, num(st.NodeStroke))
	fmt.Fprintf(buf, "    <text x=\"%s\" y=\"%s\" text-anchor=\"middle\" dy=\"0.35em\" fill=\"%s\" font-family=\"%s\" font-size=\"%s\" font-weight=\"700\">%s</text>\n",
		cx, cy, th.LabelColor(n.Terminal), st.FontFamily, num(st.FontSize), EscapeXML(n.Char))
}
