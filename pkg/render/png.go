package render

import (
	"bytes"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/trieviz/pkg/errors"
	"github.com/matzehuels/trieviz/pkg/fonts"
	"github.com/matzehuels/trieviz/pkg/layout"
	"github.com/matzehuels/trieviz/pkg/theme"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style Style
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// palette is a theme resolved to image colors.
type palette struct {
	accent, background, text, muted, border, grid, gridStrong, onAccent color.NRGBA
}

func resolve(th theme.Theme) (palette, error) {
	var p palette
	for _, c := range []struct {
		dst *color.NRGBA
		src string
	}{
		{&p.accent, th.Accent},
		{&p.background, th.Background},
		{&p.text, th.Text},
		{&p.muted, th.TextMuted},
		{&p.border, th.Border},
		{&p.grid, th.Grid},
		{&p.gridStrong, th.GridStrong},
		{&p.onAccent, th.LabelColor(true)},
	} {
		v, err := theme.ParseColor(c.src)
		if err != nil {
			return palette{}, errors.Wrap(errors.ErrCodeRenderFailed, err, "theme %q", th.Variant)
		}
		*c.dst = v
	}
	return p, nil
}

// RenderCard draws the hero image of t as a PNG. The drawing matches
// [RenderHero] element for element, scaled by the configured factor.
// Unsupported theme colors fail with [errors.ErrCodeRenderFailed].
func RenderCard(t layout.Tree, th theme.Theme, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: HeroStyle(), scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "scale must be positive, got %v", r.scale)
	}

	pal, err := resolve(th)
	if err != nil {
		return nil, err
	}
	face, err := fonts.MonoBold(r.style.FontSize * r.scale)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "load font")
	}
	defer face.Close()

	st, s := r.style, r.scale
	w := t.Bounds.Width() + 2*st.Padding
	h := t.Bounds.Height() + 2*st.Padding

	dc := gg.NewContext(int(math.Ceil(w*s)), int(math.Ceil(h*s)))
	dc.SetColor(pal.background)
	dc.Clear()
	drawGrid(dc, w, h, s, gridFine, 0.5, pal.grid)
	drawGrid(dc, w, h, s, gridCoarse, 1, pal.gridStrong)

	tx, ty := st.Padding-t.Bounds.MinX, st.Padding
	pt := func(x, y float64) (float64, float64) { return (x + tx) * s, (y + ty) * s }

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineWidth(st.EdgeStroke * s)
	dc.SetColor(pal.border)
	t.Root.Walk(func(n *layout.Node) {
		for _, c := range n.Children {
			midY := (n.Y + c.Y) / 2
			x1, y1 := pt(n.X, n.Y)
			c1x, c1y := pt(n.X, midY)
			c2x, c2y := pt(c.X, midY)
			x2, y2 := pt(c.X, c.Y)
			dc.MoveTo(x1, y1)
			dc.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
			dc.Stroke()
		}
	})

	dc.SetFontFace(face)
	t.Root.Walk(func(n *layout.Node) {
		x, y := pt(n.X, n.Y)
		if n.Root {
			dc.DrawCircle(x, y, st.RootRadius*s)
			dc.SetColor(pal.muted)
			if st.RootStroke <= 0 {
				dc.Fill()
				return
			}
			dc.FillPreserve()
			dc.SetLineWidth(st.RootStroke * s)
			dc.Stroke()
			return
		}

		fill, label := pal.background, pal.text
		if n.Terminal {
			fill, label = pal.accent, pal.onAccent
			halo := pal.accent
			if st.HaloOpacity > 0 {
				halo.A = uint8(float64(halo.A)*st.HaloOpacity + 0.5)
			}
			dc.DrawCircle(x, y, (st.NodeRadius+st.HaloGap)*s)
			dc.SetColor(halo)
			dc.SetLineWidth(st.HaloStroke * s)
			dc.Stroke()
		}

		dc.DrawCircle(x, y, st.NodeRadius*s)
		dc.SetColor(fill)
		dc.FillPreserve()
		dc.SetColor(pal.accent)
		dc.SetLineWidth(st.NodeStroke * s)
		dc.Stroke()

		dc.SetColor(label)
		dc.DrawStringAnchored(n.Char, x, y, 0.5, 0.35)
	})

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

// drawGrid strokes lines every step units across a w by h canvas, the
// raster counterpart of the SVG grid patterns.
func drawGrid(dc *gg.Context, w, h, scale float64, step int, width float64, c color.NRGBA) {
	dc.SetColor(c)
	dc.SetLineWidth(width * scale)
	for x := 0.0; x <= w; x += float64(step) {
		dc.DrawLine(x*scale, 0, x*scale, h*scale)
	}
	for y := 0.0; y <= h; y += float64(step) {
		dc.DrawLine(0, y*scale, w*scale, y*scale)
	}
	dc.Stroke()
}
