package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/trieviz/pkg/errors"
	"github.com/matzehuels/trieviz/pkg/trie"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Paths labels each node with its full prefix instead of its
	// character.
	Paths bool

	// Accent is the outline color of word-ending nodes. Empty uses black.
	Accent string
}

// ToDOT converts a trie to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(root *trie.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph trie {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontname=\"monospace\", fontsize=14, width=0.4, fixedsize=true];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	root.Walk(func(n *trie.Node) bool {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Path, strings.Join(fmtAttrs(n, opts), ", "))
		return true
	})

	buf.WriteString("\n")
	root.Walk(func(n *trie.Node) bool {
		for _, c := range n.SortedChildren() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.Path, c.Path)
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n *trie.Node, opts Options) []string {
	if n.Path == "" {
		return []string{"shape=point", "width=0.12"}
	}
	label := n.Char
	if opts.Paths {
		label = n.Path
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Terminal {
		attrs = append(attrs, "shape=doublecircle")
		if opts.Accent != "" {
			attrs = append(attrs, fmt.Sprintf("color=%q", opts.Accent))
		}
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
