package tinsel

import (
	"math"
	"testing"
)

func TestScatterCount(t *testing.T) {
	for _, n := range []int{0, 1, 7, 6000} {
		pts := Scatter(NewRand(1), n, IntroScatterRange)
		if len(pts) != n {
			t.Errorf("Scatter(%d) returned %d points", n, len(pts))
		}
	}
}

func TestScatterNegativeCount(t *testing.T) {
	if pts := Scatter(NewRand(1), -5, 10); len(pts) != 0 {
		t.Errorf("len = %d, want 0", len(pts))
	}
}

func TestScatterBounds(t *testing.T) {
	const size = 20.0
	for i, p := range Scatter(NewRand(3), 2000, size) {
		if math.Abs(p.X) > size/2 || math.Abs(p.Y) > size/2 || math.Abs(p.Z) > size/2 {
			t.Fatalf("point %d = %+v outside cube of side %v", i, p, size)
		}
	}
}

func TestScatterDeterministic(t *testing.T) {
	a := Scatter(NewRand(42), 100, 30)
	b := Scatter(NewRand(42), 100, 30)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	c := Scatter(NewRand(43), 100, 30)
	if a[0] == c[0] && a[1] == c[1] {
		t.Error("different seeds produced identical points")
	}
}

func TestShapeNilRand(t *testing.T) {
	if pts := (ScatterShape{Range: 5}).Points(nil, 10); len(pts) != 10 {
		t.Errorf("len = %d, want 10", len(pts))
	}
	if pts := TreeShape().Points(nil, 10); len(pts) != 10 {
		t.Errorf("len = %d, want 10", len(pts))
	}
}

// --- Cone ---

func TestConeBounds(t *testing.T) {
	const h, r = 10.0, 4.0
	pts := Cone(NewRand(9), 5000, h, r)
	if len(pts) != 5000 {
		t.Fatalf("len = %d, want 5000", len(pts))
	}
	for i, p := range pts {
		if p.Y < -h/2-epsilon || p.Y > h/2+epsilon {
			t.Fatalf("point %d y = %f outside [%f, %f]", i, p.Y, -h/2, h/2)
		}
		// Radius at this height shrinks linearly to zero at the apex.
		maxR := r * (1 - (p.Y+h/2)/h)
		if d := math.Hypot(p.X, p.Z); d > maxR+1e-9 {
			t.Fatalf("point %d radius %f exceeds %f at y=%f", i, d, maxR, p.Y)
		}
	}
}

func TestConeWiderAtBase(t *testing.T) {
	var lowMax, highMax float64
	for _, p := range Cone(NewRand(5), 5000, 10, 4) {
		d := math.Hypot(p.X, p.Z)
		if p.Y < -3 {
			lowMax = math.Max(lowMax, d)
		} else if p.Y > 3 {
			highMax = math.Max(highMax, d)
		}
	}
	if lowMax <= highMax {
		t.Errorf("base radius %f should exceed top radius %f", lowMax, highMax)
	}
}

func TestConeZeroHeightIsDisc(t *testing.T) {
	pts := ConeShape{Height: 0, Radius: 5, Spiral: 1}.Points(NewRand(2), 500)
	for i, p := range pts {
		if p.Y != 0 {
			t.Fatalf("point %d y = %f, want 0", i, p.Y)
		}
		if d := math.Hypot(p.X, p.Z); d > 5+1e-9 {
			t.Fatalf("point %d radius %f exceeds 5", i, d)
		}
	}
}

func TestConeDeterministic(t *testing.T) {
	a := TreeShape().Points(NewRand(11), 50)
	b := TreeShape().Points(NewRand(11), 50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestTreeShapeDefaults(t *testing.T) {
	c := TreeShape()
	if c.Height != DefaultConeHeight || c.Radius != DefaultConeRadius || c.Spiral != DefaultConeSpiral {
		t.Errorf("TreeShape() = %+v", c)
	}
}
