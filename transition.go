package tinsel

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Particle retarget durations in seconds.
const (
	countdownDuration = 0.8
	announceDuration  = 2.0
	treeDuration      = 2.5
	scatterDuration   = 2.0

	countdownAlignDuration = 1.5
	announceAlignDuration  = 2.0
)

// Plan is the particle retarget chosen for a snapshot.
type Plan struct {
	Shape    Shape
	Duration float32
	Ease     ease.TweenFunc
}

// Engine reacts to state changes by retargeting the particle pool, the
// ornaments and the photo planes. It owns all three and advances their
// tweens; it performs no I/O.
type Engine struct {
	Pool      *Pool
	Ornaments *OrnamentSet
	Gallery   *Gallery
	Motion    *Motion

	// AnnounceLabel is spelled during StateTransitionAnnounce.
	AnnounceLabel string

	rng    *rand.Rand
	labels func(Snapshot) string
}

// NewEngine wires an engine around existing components. label resolves the
// countdown label for a snapshot.
func NewEngine(rng *rand.Rand, pool *Pool, ornaments *OrnamentSet, gallery *Gallery, motion *Motion, label func(Snapshot) string) *Engine {
	return &Engine{
		Pool:      pool,
		Ornaments: ornaments,
		Gallery:   gallery,
		Motion:    motion,
		rng:       ensureRand(rng),
		labels:    label,
	}
}

// PlanFor returns the particle retarget for snap. ok is false when the pool
// should hold its current shape.
func (e *Engine) PlanFor(snap Snapshot) (plan Plan, ok bool) {
	switch {
	case snap.State == StateCountdown:
		label := ""
		if e.labels != nil {
			label = e.labels(snap)
		}
		return Plan{GlyphShape{Text: label, Size: CountdownGlyphSize}, countdownDuration, easeCountdown}, true
	case snap.State == StateTransitionAnnounce:
		return Plan{GlyphShape{Text: e.AnnounceLabel, Size: AnnounceGlyphSize}, announceDuration, easeAnnounce}, true
	case snap.TreeConfiguration():
		return Plan{TreeShape(), treeDuration, easeTree}, true
	case snap.InMode(ModeScattered):
		return Plan{ScatterShape{Range: InteractiveScatterRange}, scatterDuration, easeScatter}, true
	}
	return Plan{}, false
}

// Apply retargets everything affected by the change from prev to next.
// Particles follow the state, mode and countdown label; ornaments follow
// state and mode only; photos follow mode and focus.
func (e *Engine) Apply(prev, next Snapshot) {
	stateChanged := prev.State != next.State
	modeChanged := prev.Mode != next.Mode
	labelChanged := prev.CountdownIndex != next.CountdownIndex
	focusChanged := prev.FocusedID != next.FocusedID

	if stateChanged || modeChanged || labelChanged {
		e.retargetPool(next, stateChanged || modeChanged)
	}
	if (stateChanged || modeChanged) && e.Ornaments != nil {
		e.Ornaments.Retarget(e.rng, next)
	}
	if (modeChanged || focusChanged) && e.Gallery != nil {
		e.Gallery.Retarget(next)
	}
}

// PhotoAdded lays out the gallery again after a new photo arrives.
func (e *Engine) PhotoAdded(snap Snapshot) {
	if e.Gallery != nil {
		e.Gallery.Retarget(snap)
	}
}

func (e *Engine) retargetPool(snap Snapshot, entered bool) {
	if e.Motion != nil && entered {
		switch {
		case snap.State == StateCountdown:
			e.Motion.Align(countdownAlignDuration, easeAlign)
		case snap.State == StateTransitionAnnounce:
			e.Motion.Align(announceAlignDuration, easeAnnounce)
		case snap.InMode(ModePhotoFocus):
			e.Motion.SetAutoRotate(false)
		case snap.State == StateTreeAssemble, snap.State == StateInteractiveTree:
			e.Motion.SetAutoRotate(true)
		}
	}

	plan, ok := e.PlanFor(snap)
	if !ok || e.Pool == nil {
		return
	}
	e.Pool.Retarget(plan.Shape.Points(e.rng, e.Pool.Len()), plan.Duration, plan.Ease)
}

// Busy reports whether any tween owned by the engine is running.
func (e *Engine) Busy() bool {
	return (e.Pool != nil && e.Pool.Busy()) ||
		(e.Ornaments != nil && e.Ornaments.Busy()) ||
		(e.Gallery != nil && e.Gallery.Busy())
}

// Update advances every owned tween by dt seconds.
func (e *Engine) Update(dt float32) {
	if e.Pool != nil {
		e.Pool.Update(dt)
	}
	if e.Ornaments != nil {
		e.Ornaments.Update(dt)
	}
	if e.Gallery != nil {
		e.Gallery.Update(dt)
	}
}
