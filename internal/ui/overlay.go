//go:build ebiten

package ui

import (
	"image"

	"raycaster/internal/core"
	"raycaster/internal/raycast"
	"raycaster/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minimapScale shrinks the top-down map relative to the view.
const minimapScale = 0.25

// Overlay draws a top-down minimap with the traced rays over the view.
type Overlay struct {
	m       *core.Map
	scale   int
	visible bool

	buf *image.RGBA
	img *ebiten.Image
}

// NewOverlay constructs a new overlay for m.
func NewOverlay(m *core.Map, scale int) *Overlay {
	return &Overlay{
		m:     m,
		scale: scale,
		buf:   image.NewRGBA(image.Rect(0, 0, m.W, m.H)),
		img:   ebiten.NewImage(m.W, m.H),
	}
}

// Update toggles the minimap.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.visible = !o.visible
	}
}

// Draw paints the minimap in the top-left corner when visible.
func (o *Overlay) Draw(screen *ebiten.Image, cam raycast.Camera, view raycast.View) {
	if !o.visible {
		return
	}
	render.DrawMap(o.buf, o.m)
	render.DrawFOV(o.buf, view, cam)
	render.DrawCamera(o.buf, cam)
	o.img.WritePixels(o.buf.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(minimapScale*float64(o.scale), minimapScale*float64(o.scale))
	op.ColorScale.ScaleAlpha(0.85)
	screen.DrawImage(o.img, op)
}
