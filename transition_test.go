package tinsel

import "testing"

func newTestEngine(particles, ornaments int) *Engine {
	rng := NewRand(1)
	e := NewEngine(rng,
		NewPool(rng, particles, nil),
		NewOrnamentSet(rng, ornaments),
		NewGallery(),
		NewMotion(),
		func(s Snapshot) string {
			if s.CountdownIndex >= 0 && s.CountdownIndex < len(testLabels) {
				return testLabels[s.CountdownIndex]
			}
			return ""
		})
	e.AnnounceLabel = "2026"
	return e
}

func TestPlanFor(t *testing.T) {
	e := newTestEngine(10, 3)
	tests := []struct {
		name     string
		snap     Snapshot
		ok       bool
		duration float32
	}{
		{"intro", Snapshot{State: StateIntro}, false, 0},
		{"countdown", Snapshot{State: StateCountdown, CountdownIndex: 1}, true, countdownDuration},
		{"announce", Snapshot{State: StateTransitionAnnounce}, true, announceDuration},
		{"tree", Snapshot{State: StateTreeAssemble}, true, treeDuration},
		{"compact", Snapshot{State: StateInteractiveTree, Mode: ModeCompact}, true, treeDuration},
		{"scattered", Snapshot{State: StateInteractiveTree, Mode: ModeScattered}, true, scatterDuration},
		{"focus", Snapshot{State: StateInteractiveTree, Mode: ModePhotoFocus}, false, 0},
	}
	for _, tt := range tests {
		plan, ok := e.PlanFor(tt.snap)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && plan.Duration != tt.duration {
			t.Errorf("%s: duration = %v, want %v", tt.name, plan.Duration, tt.duration)
		}
		if ok && plan.Ease == nil {
			t.Errorf("%s: nil easing", tt.name)
		}
	}
}

func TestPlanForShapes(t *testing.T) {
	e := newTestEngine(10, 3)

	plan, _ := e.PlanFor(Snapshot{State: StateCountdown, CountdownIndex: 1})
	if g, ok := plan.Shape.(GlyphShape); !ok || g.Text != "2" || g.Size != CountdownGlyphSize {
		t.Errorf("countdown shape = %#v", plan.Shape)
	}

	plan, _ = e.PlanFor(Snapshot{State: StateTransitionAnnounce})
	if g, ok := plan.Shape.(GlyphShape); !ok || g.Text != "2026" || g.Size != AnnounceGlyphSize {
		t.Errorf("announce shape = %#v", plan.Shape)
	}

	plan, _ = e.PlanFor(Snapshot{State: StateTreeAssemble})
	if c, ok := plan.Shape.(ConeShape); !ok || c != TreeShape() {
		t.Errorf("tree shape = %#v", plan.Shape)
	}

	plan, _ = e.PlanFor(Snapshot{State: StateInteractiveTree, Mode: ModeScattered})
	if s, ok := plan.Shape.(ScatterShape); !ok || s.Range != InteractiveScatterRange {
		t.Errorf("scatter shape = %#v", plan.Shape)
	}
}

func TestApplyStateChangeRetargetsAll(t *testing.T) {
	e := newTestEngine(20, 4)
	e.Gallery.Add(nil)
	prev := Snapshot{State: StateTreeAssemble}
	next := Snapshot{State: StateInteractiveTree, Mode: ModeCompact}
	e.Apply(prev, next)
	if !e.Pool.Busy() {
		t.Error("pool should retarget on a state change")
	}
	if !e.Ornaments.Busy() {
		t.Error("ornaments should retarget on a state change")
	}
	if e.Gallery.Busy() {
		t.Error("gallery should not retarget when mode and focus are unchanged")
	}
	if !e.Busy() {
		t.Error("engine Busy = false")
	}
}

func TestApplyLabelChangeOnlyMovesParticles(t *testing.T) {
	e := newTestEngine(20, 4)
	prev := Snapshot{State: StateCountdown, CountdownIndex: 0}
	next := Snapshot{State: StateCountdown, CountdownIndex: 1}
	e.Apply(prev, next)
	if !e.Pool.Busy() {
		t.Error("pool should retarget on a label change")
	}
	if e.Ornaments.Busy() {
		t.Error("ornaments should ignore label changes")
	}
}

func TestApplyPhotoFocusHoldsParticles(t *testing.T) {
	e := newTestEngine(20, 4)
	p := e.Gallery.Add(nil)
	prev := Snapshot{State: StateInteractiveTree, Mode: ModeScattered}
	next := Snapshot{State: StateInteractiveTree, Mode: ModePhotoFocus, FocusedID: p.ID}
	e.Apply(prev, next)
	if e.Pool.Busy() {
		t.Error("pool should hold its shape in PhotoFocus")
	}
	if !e.Gallery.Busy() {
		t.Error("gallery should retarget on focus")
	}
	if e.Motion.AutoRotate {
		t.Error("auto-rotation should stop in PhotoFocus")
	}
}

func TestApplyFocusSwitchOnlyMovesPhotos(t *testing.T) {
	e := newTestEngine(20, 4)
	a := e.Gallery.Add(nil)
	b := e.Gallery.Add(nil)
	prev := Snapshot{State: StateInteractiveTree, Mode: ModePhotoFocus, FocusedID: a.ID}
	next := Snapshot{State: StateInteractiveTree, Mode: ModePhotoFocus, FocusedID: b.ID}
	e.Apply(prev, next)
	if e.Pool.Busy() || e.Ornaments.Busy() {
		t.Error("a focus switch should only move photos")
	}
	if !e.Gallery.Busy() {
		t.Error("gallery should retarget on focus switch")
	}
}

func TestApplyAlignsForLabels(t *testing.T) {
	e := newTestEngine(5, 0)
	e.Motion.Angle = 4
	e.Apply(Snapshot{State: StateIntro}, Snapshot{State: StateCountdown})
	if e.Motion.AutoRotate {
		t.Error("countdown should stop auto-rotation")
	}
	e.Apply(Snapshot{State: StateTransitionAnnounce}, Snapshot{State: StateTreeAssemble})
	if !e.Motion.AutoRotate {
		t.Error("tree should resume auto-rotation")
	}
}

func TestEngineUpdateCompletes(t *testing.T) {
	e := newTestEngine(20, 4)
	e.Gallery.Add(nil)
	e.Apply(Snapshot{State: StateInteractiveTree, Mode: ModeCompact}, Snapshot{State: StateInteractiveTree, Mode: ModeScattered})
	for i := 0; i < 5; i++ {
		e.Update(1)
	}
	if e.Busy() {
		t.Error("engine still busy after every tween should have finished")
	}
}

func TestEnginePhotoAdded(t *testing.T) {
	e := newTestEngine(5, 0)
	e.Gallery.Add(nil)
	e.PhotoAdded(Snapshot{State: StateInteractiveTree, Mode: ModeScattered})
	if !e.Gallery.Busy() {
		t.Error("PhotoAdded should lay the gallery out again")
	}
}

func TestEngineNilComponents(t *testing.T) {
	e := NewEngine(nil, nil, nil, nil, nil, nil)
	e.Apply(Snapshot{}, Snapshot{State: StateCountdown})
	e.Update(1)
	if e.Busy() {
		t.Error("empty engine should never be busy")
	}
}
