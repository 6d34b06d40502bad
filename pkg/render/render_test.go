package render

import (
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/trieviz/pkg/compose"
	"github.com/matzehuels/trieviz/pkg/layout"
	"github.com/matzehuels/trieviz/pkg/theme"
	"github.com/matzehuels/trieviz/pkg/trie"
)

var heroTheme = theme.Theme{
	Variant:       "light",
	Accent:        "#d94040",
	Background:    "#fdfdfd",
	Text:          "#1e2a3a",
	TextMuted:     "#8899aa",
	Border:        "#d0d8e4",
	Grid:          "rgba(74,122,181,0.07)",
	GridStrong:    "rgba(74,122,181,0.15)",
	LabelOnAccent: "#ffffff",
}

var tileTheme = theme.Theme{
	Variant:   "dark",
	Accent:    "rgba(239,96,96,0.16)",
	Text:      "rgba(216,224,236,0.18)",
	TextMuted: "rgba(90,106,128,0.3)",
	Border:    "rgba(42,54,72,0.5)",
}

func heroTree(words ...string) layout.Tree {
	return layout.Build(trie.Build(words), HeroStyle().NodeSpacing, HeroStyle().LevelHeight)
}

func tileTree(words ...string) layout.Tree {
	return layout.Build(trie.Build(words), TileStyle().NodeSpacing, TileStyle().LevelHeight)
}

const wantHero = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 152 228" width="152" height="228">
  <defs>
    <pattern id="grid-sm-light" width="20" height="20" patternUnits="userSpaceOnUse">
      <path d="M 20 0 L 0 0 0 20" fill="none" stroke="rgba(74,122,181,0.07)" stroke-width="0.5"/>
    </pattern>
    <pattern id="grid-lg-light" width="100" height="100" patternUnits="userSpaceOnUse">
      <rect width="100" height="100" fill="url(#grid-sm-light)"/>
      <path d="M 100 0 L 0 0 0 100" fill="none" stroke="rgba(74,122,181,0.15)" stroke-width="1"/>
    </pattern>
  </defs>
  <rect width="152" height="228" fill="#fdfdfd"/>
  <rect width="152" height="228" fill="url(#grid-lg-light)"/>
  <g transform="translate(50,50)">
    <path d="M26,0 C26,32 26,32 26,64" fill="none" stroke="#d0d8e4" stroke-width="2.5" stroke-linecap="round"/>
    <path d="M26,64 C26,96 0,96 0,128" fill="none" stroke="#d0d8e4" stroke-width="2.5" stroke-linecap="round"/>
    <path d="M26,64 C26,96 52,96 52,128" fill="none" stroke="#d0d8e4" stroke-width="2.5" stroke-linecap="round"/>
    <circle cx="26" cy="0" r="8" fill="#8899aa" stroke="#8899aa" stroke-width="2"/>
    <circle cx="26" cy="64" r="18" fill="#fdfdfd" stroke="#d94040" stroke-width="2.5"/>
    <text x="26" y="64" text-anchor="middle" dy="0.35em" fill="#1e2a3a" font-family="'JetBrains Mono','SF Mono','Fira Code',monospace" font-size="15" font-weight="700">a</text>
    <circle cx="0" cy="128" r="23" fill="none" stroke="#d94040" stroke-width="2" opacity="0.3"/>
    <circle cx="0" cy="128" r="18" fill="#d94040" stroke="#d94040" stroke-width="2.5"/>
    <text x="0" y="128" text-anchor="middle" dy="0.35em" fill="#ffffff" font-family="'JetBrains Mono','SF Mono','Fira Code',monospace" font-size="15" font-weight="700">b</text>
    <circle cx="52" cy="128" r="23" fill="none" stroke="#d94040" stroke-width="2" opacity="0.3"/>
    <circle cx="52" cy="128" r="18" fill="#d94040" stroke="#d94040" stroke-width="2.5"/>
    <text x="52" y="128" text-anchor="middle" dy="0.35em" fill="#ffffff" font-family="'JetBrains Mono','SF Mono','Fira Code',monospace" font-size="15" font-weight="700">c</text>
  </g>
</svg>
`

func TestRenderHeroExact(t *testing.T) {
	got := string(RenderHero(heroTree("ab", "ac"), heroTheme))
	if got != wantHero {
		t.Errorf("RenderHero mismatch\ngot:\n%s\nwant:\n%s", got, wantHero)
	}
}

func TestRenderHeroElementCounts(t *testing.T) {
	words := []string{"trie", "tried", "tries", "tree", "trees", "trek", "trend"}
	tree := heroTree(words...)
	svg := string(RenderHero(tree, heroTheme))

	nodes := tree.NodeCount()
	terminals := trie.Build(words).Terminals()

	tests := []struct {
		elem string
		want int
	}{
		// edges plus the two grid pattern paths
		{"<path ", nodes - 1 + 2},
		// root, one per other node, one halo per terminal
		{"<circle ", 1 + (nodes - 1) + terminals},
		{"<text ", nodes - 1},
		{`opacity="0.3"`, terminals},
	}
	for _, tt := range tests {
		if got := strings.Count(svg, tt.elem); got != tt.want {
			t.Errorf("count %q = %d, want %d", tt.elem, got, tt.want)
		}
	}
	assertWellFormed(t, []byte(svg))
}

func TestRenderHeroEdgesBeforeNodes(t *testing.T) {
	svg := string(RenderHero(heroTree("trie", "tree"), heroTheme))
	lastPath := strings.LastIndex(svg, "<path d=\"M")
	firstCircle := strings.Index(svg, "<circle ")
	if lastPath < 0 || firstCircle < 0 || lastPath > firstCircle {
		t.Errorf("edges must precede nodes: last path at %d, first circle at %d", lastPath, firstCircle)
	}
}

func TestRenderHeroRootOnly(t *testing.T) {
	svg := RenderHero(heroTree(), heroTheme)
	s := string(svg)
	if !strings.Contains(s, `viewBox="0 0 100 100" width="100" height="100"`) {
		t.Errorf("root-only canvas should be 2*padding square:\n%s", s)
	}
	if got := strings.Count(s, "<circle "); got != 1 {
		t.Errorf("circles = %d, want 1", got)
	}
	if strings.Contains(s, "<text ") || strings.Contains(s, "NaN") || strings.Contains(s, "Inf") {
		t.Errorf("unexpected content:\n%s", s)
	}
	assertWellFormed(t, svg)
}

func TestRenderHeroDeterministic(t *testing.T) {
	words := []string{"scan", "scale", "scatter", "score", "screen", "script", "scheme"}
	a := RenderHero(heroTree(words...), heroTheme)
	b := RenderHero(heroTree(words...), heroTheme)
	if !bytes.Equal(a, b) {
		t.Error("RenderHero output differs between runs")
	}
}

func TestRenderHeroEscapesLabels(t *testing.T) {
	svg := RenderHero(heroTree("<&>"), heroTheme)
	s := string(svg)
	for _, want := range []string{">&lt;</text>", ">&amp;</text>", ">&gt;</text>"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing escaped label %q", want)
		}
	}
	assertWellFormed(t, svg)
}

func TestRenderHeroWithStyle(t *testing.T) {
	st := HeroStyle()
	st.Padding = 10
	svg := string(RenderHero(heroTree("ab"), heroTheme, WithStyle(st)))
	if !strings.Contains(svg, `<g transform="translate(10,10)">`) {
		t.Errorf("custom padding not applied:\n%s", svg)
	}
}

func TestRenderTile(t *testing.T) {
	trees := []layout.Tree{tileTree("ab", "ac"), tileTree("x"), tileTree("pq", "pr", "ps")}
	svg, err := RenderTile(trees, tileTheme, compose.Grid{Columns: 2, Rows: 2, Padding: 24, Gap: 20})
	if err != nil {
		t.Fatalf("RenderTile: %v", err)
	}
	s := string(svg)

	// columns 60 and 0 wide, rows 72 and 72 tall
	wantHeader := `<svg xmlns="http://www.w3.org/2000/svg" width="128" height="212" viewBox="0 0 128 212">` + "\n"
	if !strings.HasPrefix(s, wantHeader) {
		t.Errorf("header mismatch:\n%s", s)
	}
	if !strings.HasSuffix(s, "</svg>\n") {
		t.Error("document should end with </svg> and a newline")
	}
	if got := strings.Count(s, "<g transform="); got != 3 {
		t.Errorf("groups = %d, want 3", got)
	}
	for _, want := range []string{
		`<g transform="translate(39,24)">`,
		`<g transform="translate(104,42)">`,
		`<g transform="translate(24,116)">`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s", want)
		}
	}
	if strings.Contains(s, "<rect") || strings.Contains(s, "<defs>") {
		t.Error("tile must be transparent")
	}
	if strings.Contains(s, "opacity=") {
		t.Error("tile halos carry no opacity")
	}
	if !strings.Contains(s, `r="4" fill="rgba(90,106,128,0.3)"/>`) {
		t.Error("tile root should be filled without stroke")
	}
	if !strings.Contains(s, `r="10" fill="none" stroke="rgba(239,96,96,0.16)" stroke-width="1.5"/>`) {
		t.Error("open tile nodes should be unfilled")
	}
	if !strings.Contains(s, `r="13" fill="none" stroke="rgba(239,96,96,0.16)" stroke-width="1.2"/>`) {
		t.Error("missing tile halo")
	}
	assertWellFormed(t, svg)
}

func TestRenderTileLabelsUseTextColor(t *testing.T) {
	svg, err := RenderTile([]layout.Tree{tileTree("a")}, tileTheme, compose.Grid{Columns: 1, Rows: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := `fill="rgba(216,224,236,0.18)" font-family="'JetBrains Mono',monospace" font-size="9" font-weight="700">a</text>`
	if !strings.Contains(string(svg), want) {
		t.Errorf("terminal tile label should use the text color:\n%s", svg)
	}
}

func TestRenderTileEscapesLabels(t *testing.T) {
	svg, err := RenderTile([]layout.Tree{tileTree("a&b")}, tileTheme, compose.Grid{Columns: 1, Rows: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), ">&amp;</text>") {
		t.Error("tile labels must be escaped")
	}
	assertWellFormed(t, svg)
}

func TestRenderTileInvalidGrid(t *testing.T) {
	trees := []layout.Tree{tileTree("a"), tileTree("b")}
	if _, err := RenderTile(trees, tileTheme, compose.Grid{Columns: 1, Rows: 1}); err == nil {
		t.Error("expected error for too many trees")
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{117, "117"},
		{0.35, "0.35"},
		{-15, "-15"},
		{1.0 / 3, "0.3333333333333333"},
		{2.5, "2.5"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func assertWellFormed(t *testing.T, svg []byte) {
	t.Helper()
	d := xml.NewDecoder(bytes.NewReader(svg))
	for {
		_, err := d.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("malformed SVG: %v", err)
		}
	}
}

// shiftedTree is laid out left of the origin, as a caller-built layout
// may be. Root at -10 over leaves at -20 and 0.
func shiftedTree() layout.Tree {
	root := &layout.Node{X: -10, Y: 0, Root: true, Children: []*layout.Node{
		{X: -20, Y: 64, Char: "a", Path: "a", Terminal: true},
		{X: 0, Y: 64, Char: "b", Path: "b", Terminal: true},
	}}
	return layout.Tree{Root: root, Bounds: layout.Bounds{MinX: -20, MaxX: 0, MaxY: 64}}
}

func TestRenderHeroTranslatesNegativeMinX(t *testing.T) {
	s := string(RenderHero(shiftedTree(), heroTheme))

	wantHeader := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120 164" width="120" height="164">` + "\n"
	if !strings.HasPrefix(s, wantHeader) {
		t.Errorf("header mismatch:\n%s", s)
	}
	// padding 50 minus MinX -20
	if !strings.Contains(s, `<g transform="translate(70,50)">`) {
		t.Errorf("missing translate(70,50):\n%s", s)
	}
	if !strings.Contains(s, `<circle cx="-20" cy="64" r="18"`) {
		t.Errorf("node coordinates should stay in tree space:\n%s", s)
	}
}

func TestRenderTileTranslatesNegativeMinX(t *testing.T) {
	svg, err := RenderTile([]layout.Tree{shiftedTree()}, tileTheme, compose.Grid{Columns: 1, Rows: 1, Padding: 24})
	if err != nil {
		t.Fatalf("RenderTile: %v", err)
	}
	s := string(svg)

	wantHeader := `<svg xmlns="http://www.w3.org/2000/svg" width="68" height="112" viewBox="0 0 68 112">` + "\n"
	if !strings.HasPrefix(s, wantHeader) {
		t.Errorf("header mismatch:\n%s", s)
	}
	// cell x 24 minus MinX -20
	if !strings.Contains(s, `<g transform="translate(44,24)">`) {
		t.Errorf("missing translate(44,24):\n%s", s)
	}
	assertWellFormed(t, svg)
}

func TestStylePresetsAreCopies(t *testing.T) {
	st := HeroStyle()
	st.Padding = 1
	if HeroStyle().Padding != 50 {
		t.Errorf("HeroStyle().Padding = %v after modifying a copy", HeroStyle().Padding)
	}
	tile := TileStyle()
	tile.NodeRadius = 99
	if TileStyle().NodeRadius != 10 {
		t.Errorf("TileStyle().NodeRadius = %v after modifying a copy", TileStyle().NodeRadius)
	}
}
