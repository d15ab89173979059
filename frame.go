package tinsel

import "github.com/hajimehoshi/ebiten/v2"

// ParticleStyle is the pool-wide look of the particles.
type ParticleStyle struct {
	Color   Color
	Opacity float64
	Blend   BlendMode
}

// DefaultParticleStyle is translucent additive gold.
var DefaultParticleStyle = ParticleStyle{Color: ColorGold, Opacity: 0.8, Blend: BlendAdd}

// OrnamentTransform is the per-frame draw state of one ornament.
type OrnamentTransform struct {
	Kind     OrnamentKind
	Color    Color
	Position Vec3
	Rotation Vec3
	Scale    float64
}

// PhotoTransform is the per-frame draw state of one photo plane.
type PhotoTransform struct {
	ID       string
	Image    any
	Position Vec3
	Rotation Vec3
	Scale    Vec3
	Focused  bool
}

// Frame is everything a renderer needs for one frame. Slices are reused
// between frames; a renderer must not retain them past DrawFrame.
type Frame struct {
	Snapshot Snapshot

	Particles    []Vec3
	Sizes        []float64
	PoolRotation float64
	Style        ParticleStyle

	Ornaments        []OrnamentTransform
	OrnamentRotation float64

	Photos        []PhotoTransform
	PhotoRotation float64

	Camera *Camera
}

// Renderer draws a frame. It is the only consumer of Frame.
type Renderer interface {
	DrawFrame(dst *ebiten.Image, f *Frame)
}

// Frame fills and returns the show's reusable frame snapshot for cam.
func (s *Show) Frame(cam *Camera) *Frame {
	f := &s.frame
	f.Snapshot = s.machine.Snapshot()
	f.Style = DefaultParticleStyle
	f.Camera = cam

	ps := s.pool.Particles()
	f.Particles = f.Particles[:0]
	f.Sizes = f.Sizes[:0]
	for i := range ps {
		f.Particles = append(f.Particles, ps[i].Render)
		f.Sizes = append(f.Sizes, ps[i].Size)
	}
	f.PoolRotation = s.motion.PoolRotation

	f.Ornaments = f.Ornaments[:0]
	for _, o := range s.ornaments.Ornaments() {
		f.Ornaments = append(f.Ornaments, OrnamentTransform{
			Kind:     o.Kind,
			Color:    o.Color,
			Position: o.Position,
			Rotation: o.Rotation,
			Scale:    o.Scale,
		})
	}
	f.OrnamentRotation = s.motion.OrnamentRotation

	_, hasFocus := s.gallery.Focused(f.Snapshot)
	f.Photos = f.Photos[:0]
	for _, pl := range s.gallery.Planes() {
		f.Photos = append(f.Photos, PhotoTransform{
			ID:       pl.ID,
			Image:    pl.Image,
			Position: pl.Position,
			Rotation: pl.Rotation,
			Scale:    pl.Scale,
			Focused:  hasFocus && pl.ID == f.Snapshot.FocusedID,
		})
	}
	f.PhotoRotation = s.gallery.Rotation
	return f
}
