package tinsel

import (
	"math"
	"math/rand/v2"
)

// OrnamentKind selects the mesh drawn for an ornament.
type OrnamentKind uint8

const (
	OrnamentSphere OrnamentKind = iota
	OrnamentBox
	OrnamentCylinder
)

// Ornament layout constants.
const (
	ornamentSpread   = 20.0
	ornamentDuration = 2.0
	ornamentTwist    = 0.8
)

// Ornament is a decorative object orbiting with the particle pool. Only its
// position is animated.
type Ornament struct {
	Kind     OrnamentKind
	Color    Color
	Position Vec3
	Rotation Vec3
	Scale    float64

	slot Slot
}

// OrnamentSet is a fixed-size collection of ornaments.
type OrnamentSet struct {
	items []Ornament
}

// NewOrnamentSet creates count ornaments spread randomly around the origin.
// Kinds cycle sphere, box, cylinder; colors alternate red and gold.
func NewOrnamentSet(rng *rand.Rand, count int) *OrnamentSet {
	rng = ensureRand(rng)
	s := &OrnamentSet{items: make([]Ornament, clampCount(count))}
	for i := range s.items {
		color := ColorGold
		if i%2 == 0 {
			color = ColorRed
		}
		s.items[i] = Ornament{
			Kind:     OrnamentKind(i % 3),
			Color:    color,
			Position: spreadPoint(rng),
			Scale:    1,
		}
	}
	return s
}

// Len returns the number of ornaments.
func (s *OrnamentSet) Len() int {
	return len(s.items)
}

// Ornaments returns the live ornament slice.
func (s *OrnamentSet) Ornaments() []Ornament {
	return s.items
}

// Retarget tweens every ornament toward its place for snap: on the tree
// surface in a tree configuration, otherwise a fresh random spread.
func (s *OrnamentSet) Retarget(rng *rand.Rand, snap Snapshot) {
	rng = ensureRand(rng)
	tree := snap.TreeConfiguration()
	for i := range s.items {
		o := &s.items[i]
		var to Vec3
		if tree {
			to = treeSlot(i, len(s.items))
		} else {
			to = spreadPoint(rng)
		}
		o.slot.Start(TweenVec3(&o.Position, to, ornamentDuration, easeOrnament))
	}
}

// Busy reports whether any ornament is still moving.
func (s *OrnamentSet) Busy() bool {
	for i := range s.items {
		if s.items[i].slot.Active() {
			return true
		}
	}
	return false
}

// Update advances every ornament tween by dt seconds.
func (s *OrnamentSet) Update(dt float32) {
	for i := range s.items {
		s.items[i].slot.Update(dt)
	}
}

// treeSlot places ornament i of n on the surface of the default tree cone,
// climbing evenly from the base and winding around the trunk.
func treeSlot(i, n int) Vec3 {
	height := DefaultConeHeight
	h := float64(i)/float64(n)*height - height/2
	r := DefaultConeRadius * (1 - (h+height/2)/height)
	sin, cos := math.Sincos(float64(i) * ornamentTwist)
	return Vec3{cos * r, h, sin * r}
}

func spreadPoint(rng *rand.Rand) Vec3 {
	return Vec3{
		(rng.Float64() - 0.5) * ornamentSpread,
		(rng.Float64() - 0.5) * ornamentSpread,
		(rng.Float64() - 0.5) * ornamentSpread,
	}
}
