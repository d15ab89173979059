package tinsel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float64 fields simultaneously. Create one via
// TweenVec3 or TweenFloat and call Update(dt) each frame. The group writes
// values directly into the target fields.
//
// There is no global animation manager. Owners call Update themselves,
// usually through a Slot.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	onStep func()
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields and runs the step hook.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.onStep != nil {
		g.onStep()
	}
}

// OnStep registers fn to run after every Update that writes values.
func (g *TweenGroup) OnStep(fn func()) *TweenGroup {
	g.onStep = fn
	return g
}

// TweenVec3 creates a TweenGroup that animates all three components of v
// from their current values to the target over duration seconds.
func TweenVec3(v *Vec3, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	g.tweens[0] = gween.New(float32(v.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(v.Z), float32(to.Z), duration, fn)
	g.fields[0] = &v.X
	g.fields[1] = &v.Y
	g.fields[2] = &v.Z
	return g
}

// TweenFloat creates a TweenGroup that animates *f from its current value to
// the target over duration seconds.
func TweenFloat(f *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*f), float32(to), duration, fn)
	g.fields[0] = f
	return g
}

// Slot holds at most one running tween for one property of one entity.
// Starting a new tween replaces the running one; since tweens begin from the
// field's current value, the replacement continues from wherever the old
// tween left off.
type Slot struct {
	job *TweenGroup
}

// Start installs g as the running tween, discarding any previous one.
func (s *Slot) Start(g *TweenGroup) {
	s.job = g
}

// Stop discards the running tween, leaving the property at its current value.
func (s *Slot) Stop() {
	s.job = nil
}

// Active reports whether a tween is running.
func (s *Slot) Active() bool {
	return s.job != nil
}

// Update advances the running tween and clears the slot once it completes.
func (s *Slot) Update(dt float32) {
	if s.job == nil {
		return
	}
	s.job.Update(dt)
	if s.job.Done {
		s.job = nil
	}
}

// --- Easing ---

// backOut overshoots the target by an amount controlled by s, then settles.
func backOut(s float32) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		t = t/d - 1
		return c*(t*t*((s+1)*t+s)+1) + b
	}
}

// elasticOut springs past the target and oscillates back with the given
// amplitude (>= 1) and period (as a fraction of the duration).
func elasticOut(amplitude, period float64) ease.TweenFunc {
	if amplitude < 1 {
		amplitude = 1
	}
	shift := period / (2 * math.Pi) * math.Asin(1/amplitude)
	return func(t, b, c, d float32) float32 {
		if t <= 0 {
			return b
		}
		if t >= d {
			return b + c
		}
		p := float64(t / d)
		v := amplitude*math.Pow(2, -10*p)*math.Sin((p-shift)*2*math.Pi/period) + 1
		return c*float32(v) + b
	}
}

// Easing curves used by the show.
var (
	easeCountdown = elasticOut(1, 0.75)
	easeAnnounce  = ease.InOutQuint
	easeTree      = backOut(1.2)
	easeScatter   = ease.OutCubic
	easeOrnament  = ease.InOutQuart
	easePhotoPos  = ease.InOutCubic
	easePhotoSize = ease.OutBack
	easePhotoRot  = ease.OutQuad
	easeAlign     = ease.OutCubic
)
