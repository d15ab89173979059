// Package tinsel drives a real-time particle show for [Ebitengine].
//
// A fixed pool of particles morphs between target shapes: a scattered
// cloud, rasterized text and a twisting cone "tree". A small presentation
// state machine moves the show from an intro through a countdown and an
// announcement to an interactive tree, while ornaments and user photos are
// animated alongside the particles.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	show := tinsel.NewShow(tinsel.DefaultConfig())
//	tinsel.Run(show, tinsel.RunConfig{
//		Title: "Countdown", Width: 1280, Height: 720,
//	})
//
// For full control, call [Show.Update] once per tick and hand
// [Show.Frame] to a [Renderer] in Draw:
//
//	func (g *Game) Update() error {
//		g.show.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.renderer.DrawFrame(screen, g.show.Frame(g.camera))
//	}
//
// # Presentation states
//
// [StateIntro] → [StateCountdown] → [StateTransitionAnnounce] →
// [StateTreeAssemble] → [StateInteractiveTree]. No state can be skipped.
// Once interactive, the [DisplayMode] switches between [ModeCompact],
// [ModeScattered] and [ModePhotoFocus] in response to [Show.ToggleMode],
// [Show.SelectPhoto] and [Show.ClosePhoto]. Timed steps are driven by
// one-shot timers advanced from [Show.Update].
//
// # Shapes and tweens
//
// Shapes implement [Shape] and always return exactly the requested number of
// points. Transitions tween from whatever the current values are, via
// [gween]; starting a new tween on a property replaces the old one.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tinsel
