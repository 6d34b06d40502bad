package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/trieviz/pkg/errors"
	"github.com/matzehuels/trieviz/pkg/trie"
)

const wantDOT = `digraph trie {
  rankdir=TB;
  bgcolor="transparent";
  node [shape=circle, fontname="monospace", fontsize=14, width=0.4, fixedsize=true];
  edge [arrowhead=none];
  ranksep=0.4;
  nodesep=0.25;

  "" [shape=point, width=0.12];
  "a" [label="a"];
  "ab" [label="b", shape=doublecircle];
  "ac" [label="c", shape=doublecircle];

  "" -> "a";
  "a" -> "ab";
  "a" -> "ac";
}
`

func TestToDOT(t *testing.T) {
	// insertion order must not matter
	got := ToDOT(trie.Build([]string{"ac", "ab"}), Options{})
	if got != wantDOT {
		t.Errorf("ToDOT mismatch\ngot:\n%s\nwant:\n%s", got, wantDOT)
	}
}

func TestToDOTOptions(t *testing.T) {
	dot := ToDOT(trie.Build([]string{"tree", "trek"}), Options{Paths: true, Accent: "#d94040"})

	for _, want := range []string{
		`"tre" [label="tre"];`,
		`"tree" [label="tree", shape=doublecircle, color="#d94040"];`,
		`"tre" -> "trek";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %s in:\n%s", want, dot)
		}
	}
}

func TestToDOTEmptyTrie(t *testing.T) {
	dot := ToDOT(trie.New(), Options{})
	if strings.Contains(dot, "->") {
		t.Error("empty trie should have no edges")
	}
	if !strings.Contains(dot, `"" [shape=point, width=0.12];`) {
		t.Error("root node missing")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(trie.Build([]string{"trie", "tree"}), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("root element not normalized:\n%s", s[:min(len(s), 400)])
	}
	if !strings.Contains(s, "</svg>") {
		t.Error("incomplete SVG")
	}
}

func TestRenderSVGInvalid(t *testing.T) {
	_, err := RenderSVG("digraph {")
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeRenderFailed)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got := string(normalizeViewBox(in)); got != want {
		t.Errorf("got %s", got)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Error("svg without viewBox should pass through")
	}
}
