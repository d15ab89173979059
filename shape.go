package tinsel

import (
	"math"
	"math/rand/v2"
	"time"
)

// Shape produces one target point per particle. Implementations must return
// exactly count points, read randomness only from rng, and never panic.
type Shape interface {
	Points(rng *rand.Rand, count int) []Vec3
}

// Default shape parameters.
const (
	IntroScatterRange       = 30.0
	InteractiveScatterRange = 20.0
	FallbackScatterRange    = 10.0

	DefaultConeHeight = 10.0
	DefaultConeRadius = 4.0
	DefaultConeSpiral = 1.5
)

// ScatterShape places every point uniformly inside an axis-aligned cube of
// side Range centered on the origin. Points are uncorrelated.
type ScatterShape struct {
	Range float64
}

// Points implements Shape.
func (s ScatterShape) Points(rng *rand.Rand, count int) []Vec3 {
	rng = ensureRand(rng)
	pts := make([]Vec3, clampCount(count))
	for i := range pts {
		pts[i] = Vec3{
			(rng.Float64() - 0.5) * s.Range,
			(rng.Float64() - 0.5) * s.Range,
			(rng.Float64() - 0.5) * s.Range,
		}
	}
	return pts
}

// ConeShape fills a vertical cone standing on its base, centered vertically
// on the origin. The radius shrinks linearly to zero at the apex and each
// point is twisted by Spiral radians per unit of height.
type ConeShape struct {
	Height float64
	Radius float64
	Spiral float64
}

// Points implements Shape.
func (c ConeShape) Points(rng *rand.Rand, count int) []Vec3 {
	rng = ensureRand(rng)
	pts := make([]Vec3, clampCount(count))
	for i := range pts {
		h := rng.Float64() * c.Height

		// A zero-height cone is a flat disc of full radius.
		cr := c.Radius
		if c.Height > 0 {
			cr = c.Radius * (1 - h/c.Height)
		}

		angle := rng.Float64()*2*math.Pi + h*c.Spiral
		// sqrt keeps density uniform per unit area across the disc.
		r := cr * math.Sqrt(rng.Float64())

		sin, cos := math.Sincos(angle)
		pts[i] = Vec3{cos * r, h - c.Height/2, sin * r}
	}
	return pts
}

// Scatter returns count points uniformly spread in a cube of side rangeSize.
func Scatter(rng *rand.Rand, count int, rangeSize float64) []Vec3 {
	return ScatterShape{Range: rangeSize}.Points(rng, count)
}

// Cone returns count points filling a cone of the given height and base radius
// using the default spiral twist.
func Cone(rng *rand.Rand, count int, height, radius float64) []Vec3 {
	return ConeShape{Height: height, Radius: radius, Spiral: DefaultConeSpiral}.Points(rng, count)
}

// TreeShape returns the cone used for the assembled tree.
func TreeShape() ConeShape {
	return ConeShape{Height: DefaultConeHeight, Radius: DefaultConeRadius, Spiral: DefaultConeSpiral}
}

// NewRand returns a deterministic source for the given seed. A zero seed is
// replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(0)
	}
	return rng
}

func clampCount(count int) int {
	if count < 0 {
		return 0
	}
	return count
}
