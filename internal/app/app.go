//go:build ebiten

package app

import (
	"errors"
	"image"

	"raycaster/internal/core"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// held maps keys polled every tick to the action they trigger while down.
var held = []struct {
	keys   []ebiten.Key
	action Action
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, ActionForward},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, ActionBackward},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, ActionTurnLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, ActionTurnRight},
	{[]ebiten.Key{ebiten.KeyQ}, ActionStrafeLeft},
	{[]ebiten.Key{ebiten.KeyE}, ActionStrafeRight},
}

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	scene    *Scene
	start    raycast.Camera
	controls Controls
	workers  int

	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	frame   render.Frame
	dirty   bool

	scale int
}

// New constructs a Game for the provided scene.
func New(scene *Scene, cfg *Config) *Game {
	scale := max(cfg.Scale, 1)
	return &Game{
		scene:    scene,
		start:    scene.Camera,
		controls: cfg.Controls(),
		workers:  cfg.Workers,
		painter:  render.NewFramePainter(scene.Size.W, scene.Size.H),
		hud:      ui.NewHUD(scene, hudWidth),
		overlay:  ui.NewOverlay(scene.Map, scale),
		scale:    scale,
		dirty:    true,
	}
}

// Update handles per-tick input and camera transitions.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Camera = g.start
		g.dirty = true
	}
	for _, h := range held {
		for _, k := range h.keys {
			if ebiten.IsKeyPressed(k) {
				if g.scene.Apply(h.action, g.controls) {
					g.dirty = true
				}
				break
			}
		}
	}
	g.overlay.Update()
	g.hud.Update()
	return nil
}

// Draw renders the current camera view.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty || g.frame.Scene == nil {
		g.frame = render.RenderFrame(g.scene.Map, g.scene.Camera, g.scene.Size, g.workers)
		g.dirty = false
	}
	g.painter.Blit(screen, g.frame.Scene, g.scale)
	g.overlay.Draw(screen, g.scene.Camera, g.frame.View)
	g.hud.Draw(screen, g.scene.Size.W*g.scale, g.scene.Size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.Size
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// Frame returns the last composited frame.
func (g *Game) Frame() *image.RGBA { return g.frame.Scene }

// Run opens the window and blocks until it is closed.
func Run(scene *Scene, cfg *Config) error {
	g := New(scene, cfg)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("raycaster: " + scene.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

var _ core.ParameterProvider = (*Scene)(nil)
