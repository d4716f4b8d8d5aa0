// Package term shows the first-person view in a terminal. Each character cell
// carries two vertically stacked pixels of the composited frame: the upper
// half block takes the top pixel as foreground and the bottom pixel as
// background.
package term

import (
	"image"
	"image/color"

	"raycaster/internal/app"
	"raycaster/internal/raycast"
	"raycaster/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const halfBlock = '▀'

// Viewer renders a scene onto a tcell screen and feeds key presses back into
// the scene camera.
type Viewer struct {
	screen   tcell.Screen
	scene    *app.Scene
	start    raycast.Camera
	controls app.Controls
	workers  int
}

// NewViewer creates a Viewer for an initialized screen.
func NewViewer(screen tcell.Screen, scene *app.Scene, controls app.Controls, workers int) *Viewer {
	return &Viewer{
		screen:   screen,
		scene:    scene,
		start:    scene.Camera,
		controls: controls,
		workers:  workers,
	}
}

// Draw renders the current camera view and the status line, then shows the
// screen.
func (v *Viewer) Draw() {
	cols, rows := v.screen.Size()
	v.screen.Clear()
	viewRows := rows - 1
	if cols > 0 && viewRows > 0 {
		frame := render.RenderFrame(v.scene.Map, v.scene.Camera, v.scene.Size, v.workers)
		v.drawFrame(frame.Scene, cols, viewRows)
	}
	if rows > 0 {
		v.drawStatus(rows-1, cols)
	}
	v.screen.Show()
}

func (v *Viewer) drawFrame(img *image.RGBA, cols, rows int) {
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := cellColors(img, cx, cy, cols, rows)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			v.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func (v *Viewer) drawStatus(y, cols int) {
	line := runewidth.Truncate(v.scene.Parameters().Line(), cols, "…")
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		v.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// Handle applies one event. It reports false when the viewer should exit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw()
	case *tcell.EventKey:
		switch a := keyToAction(ev); a {
		case app.ActionQuit:
			return false
		case app.ActionReset:
			v.scene.Camera = v.start
			v.Draw()
		case app.ActionNone:
		default:
			if v.scene.Apply(a, v.controls) {
				v.Draw()
			}
		}
	}
	return true
}

// Run draws the first frame and processes events until the user quits or the
// screen is finalized.
func (v *Viewer) Run() {
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.Handle(ev) {
			return
		}
	}
}

// cellColors samples the two pixels of img covered by terminal cell (cx, cy)
// in a grid of cols x rows cells.
func cellColors(img *image.RGBA, cx, cy, cols, rows int) (color.RGBA, color.RGBA) {
	b := img.Bounds()
	px := b.Min.X + cx*b.Dx()/cols
	top := b.Min.Y + (2*cy)*b.Dy()/(2*rows)
	bottom := b.Min.Y + (2*cy+1)*b.Dy()/(2*rows)
	return img.RGBAAt(px, top), img.RGBAAt(px, bottom)
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
