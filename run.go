package tinsel

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS overlays FPS/TPS and the current state.
	ShowFPS bool
	// ScreenshotDir receives PNGs from F12 and script screenshots.
	// Defaults to "screenshots".
	ScreenshotDir string
	// Script, when set, plays one step per frame.
	Script *ScriptRunner
	// Renderer defaults to a new EbitenRenderer.
	Renderer Renderer
}

// game adapts a Show to ebiten.Game.
type game struct {
	show     *Show
	cfg      RunConfig
	camera   *Camera
	renderer Renderer
	hud      *hud

	screenshotQueue []string
}

// Run opens a window and drives the show until the window closes.
func Run(show *Show, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	if cfg.Title == "" {
		cfg.Title = "tinsel"
	}

	g := newGame(show, cfg)
	defer show.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func newGame(show *Show, cfg RunConfig) *game {
	cam := NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	show.SetViewpoint(cam)
	r := cfg.Renderer
	if r == nil {
		r = NewEbitenRenderer()
	}
	g := &game{show: show, cfg: cfg, camera: cam, renderer: r}
	if cfg.ShowFPS {
		g.hud = newHUD()
	}
	return g
}

// Show implements scriptHost.
func (g *game) Show() *Show { return g.show }

// LoadPhoto implements scriptHost.
func (g *game) LoadPhoto(path string) (any, error) {
	return LoadPhoto(path)
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.cfg.Script != nil {
		g.cfg.Script.step(g)
	}
	g.processInput()
	g.show.Update(dt)
	if g.hud != nil {
		g.hud.update(dt, g.show)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.DrawFrame(screen, g.show.Frame(g.camera))
	if g.hud != nil {
		g.hud.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The camera viewport tracks the window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.Viewport = Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
