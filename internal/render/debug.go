package render

import (
	"image"

	"raycaster/internal/core"
	"raycaster/internal/raycast"
)

// crosshairRadius is the half-length of the camera marker arms.
const crosshairRadius = 10

// DrawMap paints the map top-down, one pixel per cell, anchored at the image
// origin. Cells beyond the image are skipped.
func DrawMap(img *image.RGBA, m *core.Map) {
	b := img.Bounds()
	if b.Min == (image.Point{}) && b.Dx() == m.W && b.Dy() == m.H {
		fillMaterialRGBA(img.Pix, m.Cells())
		return
	}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			img.SetRGBA(b.Min.X+x, b.Min.Y+y, ColorFor(m.At(x, y)))
		}
	}
}

// DrawCamera marks the camera position with a crosshair.
func DrawCamera(img *image.RGBA, cam raycast.Camera) {
	for x := cam.X - crosshairRadius; x <= cam.X+crosshairRadius; x++ {
		img.SetRGBA(x, cam.Y, MarkerColor)
	}
	for y := cam.Y - crosshairRadius; y <= cam.Y+crosshairRadius; y++ {
		img.SetRGBA(cam.X, y, MarkerColor)
	}
}

// DrawRay traces the samples of ray on the top-down map up to the point where
// it stopped.
func DrawRay(img *image.RGBA, cam raycast.Camera, ray raycast.Ray) {
	for _, p := range raycast.Samples(cam, ray.Angle, ray.Distance) {
		img.SetRGBA(p[0], p[1], TraceColor)
	}
}

// DrawFOV traces every ray of view.
func DrawFOV(img *image.RGBA, view raycast.View, cam raycast.Camera) {
	for _, ray := range view {
		DrawRay(img, cam, ray)
	}
}
