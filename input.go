package tinsel

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key bindings for the window driven by Run.
var (
	KeyStart      = ebiten.KeyEnter
	KeyToggle     = ebiten.KeySpace
	KeyClose      = ebiten.KeyEscape
	KeyScreenshot = ebiten.KeyF12
)

var digitKeys = [...]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// processInput maps this frame's keyboard, mouse and file-drop input to show
// commands. Rejected commands are logged and otherwise ignored.
func (g *game) processInput() {
	s := g.show
	if inpututil.IsKeyJustPressed(KeyStart) {
		g.report("start", s.Start())
	}
	if inpututil.IsKeyJustPressed(KeyToggle) {
		g.report("toggle", s.ToggleMode())
	}
	if inpututil.IsKeyJustPressed(KeyClose) {
		g.report("close", s.ClosePhoto())
	}
	if inpututil.IsKeyJustPressed(KeyScreenshot) {
		g.Screenshot("manual")
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.report("select", s.SelectPhotoIndex(i))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if id, ok := PhotoAt(s.Frame(g.camera), float64(x), float64(y)); ok {
			g.report("select", s.SelectPhoto(id))
		}
	}

	if dropped := ebiten.DroppedFiles(); dropped != nil {
		g.addDropped(dropped)
	}
}

func (g *game) report(cmd string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrInvalidCommand) {
		g.show.Logger().Debug("command ignored", "cmd", cmd, "err", err)
		return
	}
	g.show.Logger().Warn("command failed", "cmd", cmd, "err", err)
}

// addDropped loads every image file dropped onto the window as a photo.
func (g *game) addDropped(fsys fs.FS) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		g.show.Logger().Warn("read dropped files", "err", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		img, err := loadDropped(fsys, e.Name())
		if err != nil {
			g.show.Logger().Warn("load dropped photo", "name", e.Name(), "err", err)
			continue
		}
		g.show.AddPhoto(img)
	}
}

func loadDropped(fsys fs.FS, name string) (*ebiten.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// LoadPhoto decodes an image file into a handle suitable for Show.AddPhoto.
func LoadPhoto(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load photo %s: %w", path, err)
	}
	return img, nil
}

// PhotoAt returns the id of the nearest visible photo whose projected plane
// contains the screen point (sx, sy). Planes are hit-tested as screen-aligned
// squares around their projected centers.
func PhotoAt(f *Frame, sx, sy float64) (string, bool) {
	if f == nil || f.Camera == nil {
		return "", false
	}
	best, bestScale := "", 0.0
	for _, p := range f.Photos {
		if p.Scale.X == 0 || p.Scale.Y == 0 {
			continue
		}
		x, y, scale, ok := f.Camera.WorldToScreen(p.Position.RotateY(f.PhotoRotation))
		if !ok {
			continue
		}
		hw := p.Scale.X * scale / 2
		hh := p.Scale.Y * scale / 2
		if sx < x-hw || sx > x+hw || sy < y-hh || sy > y+hh {
			continue
		}
		// Larger scale means closer to the camera.
		if scale > bestScale {
			best, bestScale = p.ID, scale
		}
	}
	return best, best != ""
}
