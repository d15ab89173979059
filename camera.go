package tinsel

import "math"

// Viewpoint is queried each frame for the position the photo planes turn to
// face. It is read-only; nothing in the show holds a reference back to it.
type Viewpoint interface {
	EyePosition() Vec3
}

// Default camera placement.
const (
	DefaultCameraDistance = 15.0
	DefaultCameraFOV      = 45.0
	cameraNear            = 0.1
)

// Camera is a perspective camera on the +Z axis looking toward the origin
// along -Z.
type Camera struct {
	// Eye is the world-space camera position.
	Eye Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
}

// NewCamera creates a camera at the default distance with the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Eye:      Vec3{0, 0, DefaultCameraDistance},
		FOV:      DefaultCameraFOV,
		Viewport: viewport,
	}
}

// EyePosition implements Viewpoint.
func (c *Camera) EyePosition() Vec3 {
	return c.Eye
}

// focal returns the distance in pixels from the eye to the image plane.
func (c *Camera) focal() float64 {
	half := c.FOV * math.Pi / 360
	if half <= 0 {
		return 0
	}
	return (c.Viewport.Height / 2) / math.Tan(half)
}

// WorldToScreen projects p into viewport pixels. scale is the number of
// pixels one world unit covers at p's depth. ok is false for points at or
// behind the near plane.
func (c *Camera) WorldToScreen(p Vec3) (x, y, scale float64, ok bool) {
	r := p.Sub(c.Eye)
	depth := -r.Z
	if depth <= cameraNear {
		return 0, 0, 0, false
	}
	scale = c.focal() / depth
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return cx + r.X*scale, cy - r.Y*scale, scale, true
}
