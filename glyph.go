package tinsel

import (
	"image"
	"math/rand/v2"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph raster parameters. The raster is square; pixels are sampled on a
// stride grid and mapped to world units around the raster center.
const (
	glyphRasterSize = 1000
	glyphStride     = 4
	glyphThreshold  = 128
	glyphScale      = 0.05
	glyphDepth      = 0.5

	CountdownGlyphSize = 200.0
	AnnounceGlyphSize  = 250.0
)

// GlyphShape samples particles from the foreground pixels of rendered text.
// Pixels are chosen independently per particle, so a pixel may receive any
// number of particles. When the text yields no foreground pixels, every
// particle falls back to a small flat scatter.
type GlyphShape struct {
	Text string
	// Size is the font size in pixels on the raster.
	Size float64
	// Font overrides the default bold face. Nil uses Go Bold.
	Font *opentype.Font
}

// Points implements Shape.
func (g GlyphShape) Points(rng *rand.Rand, count int) []Vec3 {
	rng = ensureRand(rng)
	pts := make([]Vec3, clampCount(count))

	pixels := g.foreground()
	center := float64(glyphRasterSize) / 2
	for i := range pts {
		if len(pixels) == 0 {
			pts[i] = Vec3{
				(rng.Float64() - 0.5) * FallbackScatterRange,
				(rng.Float64() - 0.5) * FallbackScatterRange,
				0,
			}
			continue
		}
		p := pixels[rng.IntN(len(pixels))]
		pts[i] = Vec3{
			(float64(p.X) - center) * glyphScale,
			-(float64(p.Y) - center) * glyphScale,
			(rng.Float64() - 0.5) * glyphDepth,
		}
	}
	return pts
}

// Glyph returns count points sampled from text rendered at size pixels.
func Glyph(rng *rand.Rand, count int, text string, size float64) []Vec3 {
	return GlyphShape{Text: text, Size: size}.Points(rng, count)
}

// foreground rasterizes the text and returns the stride-grid pixels whose
// alpha exceeds the threshold. Any rasterization failure yields no pixels.
func (g GlyphShape) foreground() []image.Point {
	if g.Text == "" || g.Size <= 0 {
		return nil
	}
	f := g.Font
	if f == nil {
		f = defaultGlyphFont()
	}
	if f == nil {
		return nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    g.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, glyphRasterSize, glyphRasterSize))
	m := face.Metrics()
	width := font.MeasureString(face, g.Text)
	center := fixed.I(glyphRasterSize / 2)

	// Horizontally centered, baseline placed so the em box is vertically
	// centered on the raster.
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			X: center - width/2,
			Y: center + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(g.Text)

	var pixels []image.Point
	for y := 0; y < glyphRasterSize; y += glyphStride {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < glyphRasterSize; x += glyphStride {
			if row[x] > glyphThreshold {
				pixels = append(pixels, image.Point{X: x, Y: y})
			}
		}
	}
	return pixels
}

var (
	glyphFont     *opentype.Font
	glyphFontOnce sync.Once
)

// defaultGlyphFont parses the embedded Go Bold face once. Returns nil if the
// font cannot be parsed.
func defaultGlyphFont() *opentype.Font {
	glyphFontOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err == nil {
			glyphFont = f
		}
	})
	return glyphFont
}
