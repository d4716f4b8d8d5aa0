//go:build ebiten

package ui

import (
	"image/color"

	"raycaster/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 10
	hudLineHeight = 16
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudHeading    = color.RGBA{R: 246, G: 205, B: 38, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

var controlsHelp = []string{
	"W/S  forward/back",
	"A/D  turn",
	"Q/E  strafe",
	"Tab  minimap",
	"R    reset",
	"Esc  quit",
}

// HUD renders the parameter panel to the right of the view.
type HUD struct {
	source   core.ParameterProvider
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD reading from source with the given panel width.
func NewHUD(source core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{source: source, width: width}
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update() {
	if h == nil || h.source == nil {
		return
	}
	h.snapshot = h.source.Parameters()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(hudBackground)

	y := hudPadding + hudLineHeight
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, basicfont.Face7x13, hudPadding, y, hudHeading)
		y += hudLineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, basicfont.Face7x13, hudPadding+8, y, hudText)
			y += hudLineHeight
		}
		y += hudLineHeight / 2
	}
	y += hudLineHeight
	for _, line := range controlsHelp {
		text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, y, hudText)
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
