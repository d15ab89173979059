package tinsel

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewPool(t *testing.T) {
	initial := []Vec3{{1, 2, 3}, {4, 5, 6}}
	p := NewPool(NewRand(1), 4, initial)
	if p.Len() != 4 {
		t.Fatalf("Len = %d, want 4", p.Len())
	}
	ps := p.Particles()
	if ps[0].Base != initial[0] || ps[1].Render != initial[1] {
		t.Errorf("initial positions not applied: %+v", ps[:2])
	}
	// Missing initial points default to the origin.
	if ps[3].Base != (Vec3{}) {
		t.Errorf("particle 3 base = %+v, want origin", ps[3].Base)
	}
	for i, pt := range ps {
		if pt.Size < ParticleSize.Min || pt.Size > ParticleSize.Max {
			t.Errorf("particle %d size = %f outside %+v", i, pt.Size, ParticleSize)
		}
	}
}

func TestNewPoolNegativeCount(t *testing.T) {
	if p := NewPool(NewRand(1), -1, nil); p.Len() != 0 {
		t.Errorf("Len = %d, want 0", p.Len())
	}
}

func TestPoolRetargetReachesTarget(t *testing.T) {
	p := NewPool(NewRand(1), 3, nil)
	target := []Vec3{{1, 0, 0}, {0, 2, 0}, {0, 0, -3}}
	p.Retarget(target, 1.0, ease.Linear)
	if !p.Busy() {
		t.Fatal("Busy = false after Retarget")
	}

	p.Update(0.5)
	assertVec(t, "p0 mid", p.Particles()[0].Base, Vec3{0.5, 0, 0}, tweenEpsilon)

	p.Update(0.5)
	if p.Busy() {
		t.Fatal("Busy = true after full duration")
	}
	for i, want := range target {
		assertVec(t, "final", p.Particles()[i].Base, want, tweenEpsilon)
	}
}

func TestPoolRetargetShortTargetGoesToOrigin(t *testing.T) {
	p := NewPool(NewRand(1), 3, []Vec3{{5, 5, 5}, {5, 5, 5}, {5, 5, 5}})
	p.Retarget([]Vec3{{1, 1, 1}}, 0.5, ease.Linear)
	p.Update(0.5)
	assertVec(t, "p0", p.Particles()[0].Base, Vec3{1, 1, 1}, tweenEpsilon)
	assertVec(t, "p1", p.Particles()[1].Base, Vec3{}, tweenEpsilon)
	assertVec(t, "p2", p.Particles()[2].Base, Vec3{}, tweenEpsilon)
}

func TestPoolRetargetMidFlightNoSnap(t *testing.T) {
	p := NewPool(NewRand(1), 1, []Vec3{{0, 0, 0}})
	p.Retarget([]Vec3{{10, 0, 0}}, 1.0, ease.Linear)
	p.Update(0.5)
	mid := p.Particles()[0].Base

	p.Retarget([]Vec3{{0, 10, 0}}, 1.0, ease.Linear)
	if p.Particles()[0].Base != mid {
		t.Fatalf("Retarget moved base: %+v -> %+v", mid, p.Particles()[0].Base)
	}
	p.Update(0.001)
	got := p.Particles()[0].Base
	if got.Sub(mid).Len() > 0.1 {
		t.Errorf("base jumped from %+v to %+v", mid, got)
	}

	p.Update(1)
	assertVec(t, "final", p.Particles()[0].Base, Vec3{0, 10, 0}, tweenEpsilon)
}

func TestPoolRetargetDoesNotTouchRender(t *testing.T) {
	p := NewPool(NewRand(1), 1, []Vec3{{1, 1, 1}})
	p.Retarget([]Vec3{{9, 9, 9}}, 1, ease.Linear)
	p.Update(1)
	if p.Particles()[0].Render != (Vec3{1, 1, 1}) {
		t.Errorf("Render = %+v, only the motion layer writes it", p.Particles()[0].Render)
	}
}

func TestPoolLenStable(t *testing.T) {
	p := NewPool(NewRand(1), 10, nil)
	p.Retarget(Scatter(NewRand(2), 25, 5), 0.1, ease.Linear)
	p.Update(0.2)
	if p.Len() != 10 {
		t.Errorf("Len = %d, want 10", p.Len())
	}
}

// --- Range ---

func TestRangeSample(t *testing.T) {
	rng := NewRand(1)
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.Sample(rng)
		if v < 10 || v > 20 {
			t.Fatalf("Sample = %f outside [10, 20]", v)
		}
	}
	if v := (Range{3, 3}).Sample(rng); v != 3 {
		t.Errorf("degenerate Sample = %f, want 3", v)
	}
}
