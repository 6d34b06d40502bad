// Package theme defines the color palettes trie images are drawn with.
//
// A [Theme] is one visual variant ("light", "dark") of a palette. Hero
// images use the full palette including canvas background and grid lines;
// background tiles are transparent and only set the node, edge and label
// colors. Themes are plain values loaded once from the embedded series
// configuration and never mutated.
package theme

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/trieviz/pkg/errors"
)

// Theme is a named set of colors. Values are CSS color strings and are
// written into SVG attributes verbatim.
type Theme struct {
	Variant       string `toml:"variant"`
	Accent        string `toml:"accent"`          // Node outlines, terminal fill
	Background    string `toml:"background"`      // Canvas and open node fill; empty for transparent tiles
	Text          string `toml:"text"`            // Labels on open nodes
	TextMuted     string `toml:"text_muted"`      // Root marker
	Border        string `toml:"border"`          // Edges
	Grid          string `toml:"grid"`            // Fine grid lines
	GridStrong    string `toml:"grid_strong"`     // Bold grid lines
	LabelOnAccent string `toml:"label_on_accent"` // Labels on terminal nodes
}

// NodeFill returns the fill used for non-terminal node circles.
func (t Theme) NodeFill() string {
	if t.Background == "" {
		return "none"
	}
	return t.Background
}

// LabelColor returns the label color for a node.
func (t Theme) LabelColor(terminal bool) string {
	if terminal && t.LabelOnAccent != "" {
		return t.LabelOnAccent
	}
	return t.Text
}

// Validate checks that the variant is usable in filenames and that every
// color the renderer needs is set. Canvas themes (heroes) additionally
// need the background and grid colors.
func (t Theme) Validate(canvas bool) error {
	if err := errors.ValidateName("variant", t.Variant); err != nil {
		return err
	}
	required := []struct {
		name, value string
	}{
		{"accent", t.Accent},
		{"text", t.Text},
		{"text_muted", t.TextMuted},
		{"border", t.Border},
	}
	if canvas {
		required = append(required,
			struct{ name, value string }{"background", t.Background},
			struct{ name, value string }{"grid", t.Grid},
			struct{ name, value string }{"grid_strong", t.GridStrong},
		)
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "theme %q: %s color is required", t.Variant, r.name)
		}
	}
	return nil
}

// ParseColor converts a theme color into an image color. It understands
// "#rgb", "#rrggbb" and "rgba(r,g,b,a)" with a in [0,1], which covers every
// palette trieviz ships.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(expandHex(s))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		var r, g, b uint8
		var a float64
		body := strings.ReplaceAll(s[len("rgba("):len(s)-1], " ", "")
		if _, err := fmt.Sscanf(body, "%d,%d,%d,%g", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		if a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("parse color %q: alpha out of range", s)
		}
		return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}, nil
	}
	return color.NRGBA{}, fmt.Errorf("parse color %q: unsupported format", s)
}

// expandHex turns the short "#rgb" form into "#rrggbb".
func expandHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
