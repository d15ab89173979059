package tinsel

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Idle motion constants.
const (
	angularSpeed         = 0.2
	oscillationFreq      = 0.5
	oscillationAmplitude = 0.05
	ornamentSpin         = 1.5
	photoGroupSpin       = 0.5

	shimmerCalm     = 0.01
	shimmerEmphasis = 0.02
	shimmerFreqX    = 2.0
	shimmerFreqY    = 1.5
	shimmerFreqZ    = 3.0
)

// FrameInput carries the clock for one frame.
type FrameInput struct {
	// T is the elapsed show time in seconds.
	T float64
	// DT is the time since the previous frame in seconds.
	DT float64
}

// Motion is the per-frame idle layer: auto-rotation or a gentle sway, plus
// per-particle shimmer. It reads base positions and writes render positions.
type Motion struct {
	Angle       float64
	AutoRotate  bool
	Oscillation float64

	// OrnamentRotation and PoolRotation are the Y rotations computed by the
	// last Update.
	PoolRotation     float64
	OrnamentRotation float64

	align Slot
}

// NewMotion returns a motion layer that starts auto-rotating.
func NewMotion() *Motion {
	return &Motion{AutoRotate: true}
}

// Rotation returns the effective Y rotation of the particle pool.
func (m *Motion) Rotation() float64 {
	return m.Angle + m.Oscillation
}

// SetAutoRotate enables or disables continuous rotation. Disabling leaves a
// small sway in its place.
func (m *Motion) SetAutoRotate(on bool) {
	m.AutoRotate = on
	if on {
		m.align.Stop()
	}
}

// Align stops auto-rotation and eases the angle to the nearest whole turn,
// so labels read face-on.
func (m *Motion) Align(duration float32, fn ease.TweenFunc) {
	m.AutoRotate = false
	turn := 2 * math.Pi
	to := math.Round(m.Angle/turn) * turn
	m.align.Start(TweenFloat(&m.Angle, to, duration, fn))
}

// Update applies one frame of idle motion. It writes pool render positions,
// the group rotations and billboarded photo rotations; it never writes base
// positions.
func (m *Motion) Update(in FrameInput, snap Snapshot, pool *Pool, gallery *Gallery, view Viewpoint) {
	m.align.Update(float32(in.DT))
	if m.AutoRotate {
		m.Angle += in.DT * angularSpeed
	} else {
		m.Oscillation = math.Sin(in.T*oscillationFreq) * oscillationAmplitude
	}

	rot := m.Rotation()
	m.PoolRotation = rot
	m.OrnamentRotation = rot
	if snap.InMode(ModeCompact) {
		m.OrnamentRotation = rot * ornamentSpin
	}

	if pool != nil {
		shimmer(pool, in.T, shimmerAmplitude(snap))
	}
	if gallery != nil {
		m.orientPhotos(snap, gallery, view)
	}
}

func shimmerAmplitude(snap Snapshot) float64 {
	if snap.Emphasized() {
		return shimmerEmphasis
	}
	return shimmerCalm
}

// shimmer offsets each particle on every axis with a distinct frequency so
// neighbours never pulse in lockstep.
func shimmer(pool *Pool, t, amp float64) {
	ps := pool.Particles()
	for i := range ps {
		fi := float64(i)
		ps[i].Render = Vec3{
			ps[i].Base.X + math.Sin(t*shimmerFreqX+fi)*amp,
			ps[i].Base.Y + math.Cos(t*shimmerFreqY+fi)*amp,
			ps[i].Base.Z + math.Sin(t*shimmerFreqZ+fi)*amp,
		}
	}
}

func (m *Motion) orientPhotos(snap Snapshot, gallery *Gallery, view Viewpoint) {
	switch snap.Mode {
	case ModeScattered:
		gallery.Rotation = m.Rotation() * photoGroupSpin
		if view == nil {
			return
		}
		eye := view.EyePosition()
		for _, pl := range gallery.Planes() {
			if pl.ID == snap.FocusedID {
				continue
			}
			pl.faceToward(eye, gallery.Rotation)
		}
	case ModePhotoFocus:
		gallery.Rotation = 0
	}
}
