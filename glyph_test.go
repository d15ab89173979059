package tinsel

import (
	"math"
	"testing"
)

func TestGlyphCount(t *testing.T) {
	for _, n := range []int{0, 1, 500} {
		pts := Glyph(NewRand(1), n, "5", CountdownGlyphSize)
		if len(pts) != n {
			t.Errorf("Glyph(%d) returned %d points", n, len(pts))
		}
	}
}

func TestGlyphBounds(t *testing.T) {
	// The raster maps to [-25, 25] world units on each axis.
	half := float64(glyphRasterSize) / 2 * glyphScale
	for i, p := range Glyph(NewRand(4), 2000, "2026", AnnounceGlyphSize) {
		if math.Abs(p.X) > half || math.Abs(p.Y) > half {
			t.Fatalf("point %d = %+v outside raster bounds", i, p)
		}
		if math.Abs(p.Z) > glyphDepth/2 {
			t.Fatalf("point %d z = %f exceeds depth", i, p.Z)
		}
	}
}

func TestGlyphNotFallback(t *testing.T) {
	// Fallback points are flat; glyph points carry depth jitter.
	for _, p := range Glyph(NewRand(8), 1000, "8", CountdownGlyphSize) {
		if p.Z != 0 {
			return
		}
	}
	t.Error("every z is 0; glyph looks like the fallback scatter")
}

func TestGlyphSamplesOnStrideGrid(t *testing.T) {
	step := glyphStride * glyphScale
	center := float64(glyphRasterSize) / 2 * glyphScale
	for i, p := range Glyph(NewRand(6), 200, "1", CountdownGlyphSize) {
		gx := (p.X + center) / step
		if math.Abs(gx-math.Round(gx)) > 1e-6 {
			t.Fatalf("point %d x = %f is off the sampling grid", i, p.X)
		}
	}
}

func TestGlyphEmptyTextFallback(t *testing.T) {
	pts := Glyph(NewRand(3), 300, "", CountdownGlyphSize)
	if len(pts) != 300 {
		t.Fatalf("len = %d, want 300", len(pts))
	}
	for i, p := range pts {
		if p.Z != 0 {
			t.Fatalf("point %d z = %f, want 0", i, p.Z)
		}
		if math.Abs(p.X) > FallbackScatterRange/2 || math.Abs(p.Y) > FallbackScatterRange/2 {
			t.Fatalf("point %d = %+v outside fallback square", i, p)
		}
	}
}

func TestGlyphWhitespaceFallback(t *testing.T) {
	for i, p := range Glyph(NewRand(3), 50, "   ", CountdownGlyphSize) {
		if p.Z != 0 {
			t.Fatalf("point %d z = %f, want 0 for blank text", i, p.Z)
		}
	}
}

func TestGlyphZeroSizeFallback(t *testing.T) {
	for i, p := range Glyph(NewRand(3), 50, "5", 0) {
		if p.Z != 0 {
			t.Fatalf("point %d z = %f, want 0 for zero size", i, p.Z)
		}
	}
}

func TestGlyphDeterministic(t *testing.T) {
	a := Glyph(NewRand(77), 100, "3", CountdownGlyphSize)
	b := Glyph(NewRand(77), 100, "3", CountdownGlyphSize)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGlyphRoughlyCentered(t *testing.T) {
	var sx, sy float64
	pts := Glyph(NewRand(12), 4000, "0", CountdownGlyphSize)
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	if math.Abs(sx/n) > 2 || math.Abs(sy/n) > 4 {
		t.Errorf("centroid = (%f, %f), want near origin", sx/n, sy/n)
	}
}

func TestDefaultGlyphFont(t *testing.T) {
	if defaultGlyphFont() == nil {
		t.Fatal("default font failed to parse")
	}
	if defaultGlyphFont() != defaultGlyphFont() {
		t.Error("default font should be parsed once")
	}
}
