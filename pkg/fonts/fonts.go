// Package fonts provides the typefaces used for raster rendering.
//
// SVG output names CSS font families and leaves glyph lookup to the
// browser. Raster output has to draw glyphs itself, so it uses the Go Mono
// Bold face bundled with golang.org/x/image, which needs no system fonts.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// MonoFamily is the CSS font stack for hero labels.
const MonoFamily = `'JetBrains Mono','SF Mono','Fira Code',monospace`

// parsed is computed once on first access.
var parsed = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomonobold.TTF)
})

// MonoBold returns a Go Mono Bold face at size pixels.
// Callers own the returned face and should Close it.
func MonoBold(size float64) (font.Face, error) {
	f, err := parsed()
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("mono face: %w", err)
	}
	return face, nil
}
