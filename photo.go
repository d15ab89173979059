package tinsel

import (
	"math"

	"github.com/google/uuid"
)

// Photo is a user-supplied image. Image is an opaque handle passed through
// to the renderer untouched.
type Photo struct {
	ID    string
	Image any
}

// Photo layout constants.
const (
	photoPosDuration   = 2.0
	photoScaleDuration = 1.5
	photoRotDuration   = 1.0
	photoOrbitSeed     = 13.37
)

var (
	photoFocusPosition = Vec3{0, 0, 8}
	photoFocusScale    = Vec3{4, 4, 1}
	photoOrbitScale    = Vec3{1.5, 1.5, 1}
)

// PhotoPlane is the animated transform of one photo. Rotation is Euler
// angles applied yaw (Y) first, then pitch (X), then roll (Z).
type PhotoPlane struct {
	Photo
	Position Vec3
	Rotation Vec3
	Scale    Vec3

	pos, scale, rot Slot
}

// Gallery holds photo planes in insertion order. Entries are never removed.
type Gallery struct {
	planes []*PhotoPlane
	// Rotation is the Y rotation of the whole photo group.
	Rotation float64
}

// NewGallery returns an empty gallery.
func NewGallery() *Gallery {
	return &Gallery{}
}

// Add appends a photo with a freshly generated id and returns it. New planes
// start hidden at the origin.
func (g *Gallery) Add(image any) Photo {
	p := Photo{ID: uuid.NewString(), Image: image}
	g.planes = append(g.planes, &PhotoPlane{Photo: p})
	return p
}

// Len returns the number of photos.
func (g *Gallery) Len() int {
	return len(g.planes)
}

// Photos returns a copy of the photo list in insertion order.
func (g *Gallery) Photos() []Photo {
	out := make([]Photo, len(g.planes))
	for i, pl := range g.planes {
		out[i] = pl.Photo
	}
	return out
}

// Planes returns the live planes. Callers must not modify the slice.
func (g *Gallery) Planes() []*PhotoPlane {
	return g.planes
}

// Find returns the plane with the given id.
func (g *Gallery) Find(id string) (*PhotoPlane, bool) {
	if id == "" {
		return nil, false
	}
	for _, pl := range g.planes {
		if pl.ID == id {
			return pl, true
		}
	}
	return nil, false
}

// Focused returns the plane referenced by snap.FocusedID, if it exists.
func (g *Gallery) Focused(snap Snapshot) (*PhotoPlane, bool) {
	return g.Find(snap.FocusedID)
}

// Retarget tweens every plane toward its layout for snap. A focus id that
// matches no plane leaves every photo in its scattered orbit.
func (g *Gallery) Retarget(snap Snapshot) {
	compact := snap.Mode == ModeCompact
	_, hasFocus := g.Focused(snap)
	focusMode := snap.Mode == ModePhotoFocus && hasFocus
	for i, pl := range g.planes {
		focused := focusMode && pl.ID == snap.FocusedID

		var pos, scale Vec3
		switch {
		case compact:
			// Collapsed into the tree.
		case focused:
			pos, scale = photoFocusPosition, photoFocusScale
		case focusMode:
			// Parked behind the focused photo.
			scale = Vec3{1, 1, 1}
		default:
			pos, scale = OrbitPosition(i), photoOrbitScale
		}

		pl.pos.Start(TweenVec3(&pl.Position, pos, photoPosDuration, easePhotoPos))
		pl.scale.Start(TweenVec3(&pl.Scale, scale, photoScaleDuration, easePhotoSize))
		if focused {
			pl.rot.Start(TweenVec3(&pl.Rotation, Vec3{}, photoRotDuration, easePhotoRot))
		}
	}
}

// Busy reports whether any plane is still animating.
func (g *Gallery) Busy() bool {
	for _, pl := range g.planes {
		if pl.pos.Active() || pl.scale.Active() || pl.rot.Active() {
			return true
		}
	}
	return false
}

// Update advances every plane's tweens by dt seconds.
func (g *Gallery) Update(dt float32) {
	for _, pl := range g.planes {
		pl.pos.Update(dt)
		pl.scale.Update(dt)
		pl.rot.Update(dt)
	}
}

// OrbitPosition returns the scattered-mode position of photo i. It depends
// only on i, so repeated layouts put each photo in the same place.
func OrbitPosition(i int) Vec3 {
	s := float64(i) * photoOrbitSeed
	return Vec3{
		math.Sin(s) * 10,
		math.Cos(s*0.8) * 8,
		math.Sin(s*0.5) * 8,
	}
}

// faceToward sets the plane's rotation so its front (+Z) faces eye, given
// the Y rotation of the group the plane lives in.
func (pl *PhotoPlane) faceToward(eye Vec3, groupRotation float64) {
	world := pl.Position.RotateY(groupRotation)
	d := eye.Sub(world)
	yaw := math.Atan2(d.X, d.Z)
	pitch := -math.Atan2(d.Y, math.Hypot(d.X, d.Z))
	pl.Rotation = Vec3{X: pitch, Y: yaw - groupRotation, Z: 0}
	pl.rot.Stop()
}
