package tinsel

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw sizes in world units.
const (
	ornamentSize     = 0.3
	photoFrameMargin = 1.05
	photoFrameAlpha  = 0.4
	photoAlpha       = 0.9
	minPointPixels   = 0.75
)

// EbitenRenderer projects a Frame through its camera and draws it with
// batched DrawTriangles32 calls: one for ornaments, one for the particle
// pool, and one per photo.
type EbitenRenderer struct {
	// ClearColor fills the target before drawing when its alpha is non-zero.
	ClearColor Color

	white *ebiten.Image
	verts []ebiten.Vertex
	inds  []uint32
	order []int
}

// NewEbitenRenderer creates a renderer that clears to black.
func NewEbitenRenderer() *EbitenRenderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &EbitenRenderer{
		ClearColor: Color{0, 0, 0, 1},
		white:      white,
	}
}

// DrawFrame implements Renderer.
func (r *EbitenRenderer) DrawFrame(dst *ebiten.Image, f *Frame) {
	if f == nil || f.Camera == nil {
		return
	}
	if r.ClearColor.A > 0 {
		dst.Fill(r.ClearColor.toRGBA())
	}
	r.drawOrnaments(dst, f)
	r.drawParticles(dst, f)
	r.drawPhotos(dst, f)
}

func (r *EbitenRenderer) drawParticles(dst *ebiten.Image, f *Frame) {
	r.reset()
	c := f.Style.Color
	a := float32(c.A * f.Style.Opacity)
	cr, cg, cb := float32(c.R)*a, float32(c.G)*a, float32(c.B)*a

	for i, p := range f.Particles {
		x, y, scale, ok := f.Camera.WorldToScreen(p.RotateY(f.PoolRotation))
		if !ok {
			continue
		}
		size := 0.0
		if i < len(f.Sizes) {
			size = f.Sizes[i]
		}
		half := math.Max(size*scale/2, minPointPixels)
		r.appendQuad(x, y, half, half, cr, cg, cb, a)
	}
	r.flush(dst, r.white, f.Style.Blend)
}

func (r *EbitenRenderer) drawOrnaments(dst *ebiten.Image, f *Frame) {
	r.reset()
	for _, o := range f.Ornaments {
		x, y, scale, ok := f.Camera.WorldToScreen(o.Position.RotateY(f.OrnamentRotation))
		if !ok {
			continue
		}
		hw := ornamentSize * o.Scale * scale / 2
		hh := hw
		if o.Kind == OrnamentCylinder {
			hw /= 2
			hh *= 2
		}
		a := float32(o.Color.A)
		r.appendQuad(x, y, hw, hh, float32(o.Color.R)*a, float32(o.Color.G)*a, float32(o.Color.B)*a, a)
	}
	r.flush(dst, r.white, BlendNormal)
}

func (r *EbitenRenderer) drawPhotos(dst *ebiten.Image, f *Frame) {
	// Far photos first so nearer ones overlap them.
	r.order = r.order[:0]
	for i, p := range f.Photos {
		if p.Scale.X == 0 || p.Scale.Y == 0 {
			continue
		}
		r.order = append(r.order, i)
	}
	sort.SliceStable(r.order, func(a, b int) bool {
		za := f.Photos[r.order[a]].Position.RotateY(f.PhotoRotation).Z
		zb := f.Photos[r.order[b]].Position.RotateY(f.PhotoRotation).Z
		return za < zb
	})

	gold := ColorGold
	ga := float32(photoFrameAlpha)
	for _, i := range r.order {
		p := &f.Photos[i]

		r.reset()
		if !r.appendPlane(f, p, photoFrameMargin, r.white, float32(gold.R)*ga, float32(gold.G)*ga, float32(gold.B)*ga, ga) {
			continue
		}
		r.flush(dst, r.white, BlendNormal)

		img, ok := p.Image.(*ebiten.Image)
		if !ok || img == nil {
			continue
		}
		r.reset()
		pa := float32(photoAlpha)
		if r.appendPlane(f, p, 1, img, pa, pa, pa, pa) {
			r.flush(dst, img, BlendNormal)
		}
	}
}

// appendPlane adds the photo's unit plane, grown by margin, as two
// triangles mapped onto src. Returns false if any corner is behind the camera.
func (r *EbitenRenderer) appendPlane(f *Frame, p *PhotoTransform, margin float64, src *ebiten.Image, cr, cg, cb, ca float32) bool {
	b := src.Bounds()
	u := [4]float32{float32(b.Min.X), float32(b.Max.X), float32(b.Min.X), float32(b.Max.X)}
	v := [4]float32{float32(b.Min.Y), float32(b.Min.Y), float32(b.Max.Y), float32(b.Max.Y)}
	lx := [4]float64{-0.5, 0.5, -0.5, 0.5}
	ly := [4]float64{0.5, 0.5, -0.5, -0.5}

	base := uint32(len(r.verts))
	for j := 0; j < 4; j++ {
		local := Vec3{lx[j] * margin * p.Scale.X, ly[j] * margin * p.Scale.Y, 0}
		world := rotateEuler(local, p.Rotation).Add(p.Position).RotateY(f.PhotoRotation)
		x, y, _, ok := f.Camera.WorldToScreen(world)
		if !ok {
			r.verts = r.verts[:base]
			return false
		}
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: u[j], SrcY: v[j],
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	r.inds = append(r.inds, base+0, base+1, base+2, base+1, base+3, base+2)
	return true
}

// appendQuad adds an axis-aligned screen quad centered on (x, y) sampling
// the 1x1 white image.
func (r *EbitenRenderer) appendQuad(x, y, hw, hh float64, cr, cg, cb, ca float32) {
	base := uint32(len(r.verts))
	dx := [4]float64{-hw, hw, -hw, hw}
	dy := [4]float64{-hh, -hh, hh, hh}
	for j := 0; j < 4; j++ {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: float32(x + dx[j]), DstY: float32(y + dy[j]),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	r.inds = append(r.inds, base+0, base+1, base+2, base+1, base+3, base+2)
}

func (r *EbitenRenderer) reset() {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

func (r *EbitenRenderer) flush(dst, src *ebiten.Image, blend BlendMode) {
	if len(r.verts) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(r.verts, r.inds, src, &triOp)
}

// rotateEuler rotates v by r.Z (roll), then r.X (pitch), then r.Y (yaw).
func rotateEuler(v, r Vec3) Vec3 {
	if r.Z != 0 {
		sin, cos := math.Sincos(r.Z)
		v = Vec3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
	}
	if r.X != 0 {
		sin, cos := math.Sincos(r.X)
		v = Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
	}
	if r.Y != 0 {
		v = v.RotateY(r.Y)
	}
	return v
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{clamp(c.R * c.A), clamp(c.G * c.A), clamp(c.B * c.A), clamp(c.A)}
}
