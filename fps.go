package tinsel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hud is a small overlay with FPS/TPS, the current state and key hints.
// The text is refreshed every ~0.5 seconds.
type hud struct {
	img        *ebiten.Image
	lastUpdate float64
	text       string
}

func newHUD() *hud {
	return &hud{img: ebiten.NewImage(260, 64), lastUpdate: 0.5}
}

func (h *hud) update(dt float64, s *Show) {
	h.lastUpdate += dt
	if h.lastUpdate < 0.5 {
		return
	}
	h.lastUpdate = 0
	h.text = hudText(s.Snapshot(), s.Label(), len(s.Photos()), ebiten.ActualFPS(), ebiten.ActualTPS())

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
}

func (h *hud) draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, nil)
}

// hudText formats the overlay text.
func hudText(snap Snapshot, label string, photos int, fps, tps float64) string {
	state := snap.State.String()
	switch {
	case snap.State == StateCountdown:
		state += " " + label
	case snap.State == StateInteractiveTree:
		state += "/" + snap.Mode.String()
	}
	return fmt.Sprintf("FPS: %.1f TPS: %.1f\n%s photos: %d\nEnter start  Space mode\n1-9 photo  Esc close", fps, tps, state, photos)
}
