package render

import (
	"image"

	"raycaster/internal/core"
	"raycaster/internal/raycast"
)

// Frame bundles the images produced by one cast.
type Frame struct {
	View raycast.View
	// Scene is the first-person render.
	Scene *image.RGBA
}

// RenderFrame casts one ray per column of size and composites the result.
// The map and camera are only read.
func RenderFrame(m *core.Map, cam raycast.Camera, size core.Size, workers int) Frame {
	view := raycast.CastFOVParallel(m, cam, size.W, workers)
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	DrawView(img, view, cam)
	return Frame{View: view, Scene: img}
}

// RenderMap draws the top-down map with the traced rays of view and the
// camera marker on top.
func RenderMap(m *core.Map, cam raycast.Camera, view raycast.View) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.W, m.H))
	DrawMap(img, m)
	DrawFOV(img, view, cam)
	DrawCamera(img, cam)
	return img
}
