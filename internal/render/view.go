package render

import (
	"image"
	"math"

	"raycaster/internal/raycast"
)

// DrawView composites a view into img, one screen column per ray.
//
// Screen columns run opposite to cast order: view index i lands in column
// W-1-i. Each column gets a wall slice of the ray's material centered on the
// horizontal mid-line, extending min(height, MaxDistance) pixels each way,
// with the floor color below it and the ceiling color above. Pixels that fall
// outside img are dropped.
func DrawView(img *image.RGBA, view raycast.View, cam raycast.Camera) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mid := b.Min.Y + h/2
	heights := raycast.Heights(view, cam)
	for i, ray := range view {
		x := b.Min.X + w - 1 - i
		ext := Extent(heights[i], cam.MaxDistance)

		fillColumn(img, x, mid-ext+1, mid+ext, ColorFor(ray.Material))
		fillColumn(img, x, mid+ext, b.Max.Y, FloorColor)
		fillColumn(img, x, b.Min.Y, mid-ext+1, CeilingColor)
	}
}

// Extent clamps a projected height to the number of pixels a slice extends
// from the mid-line.
func Extent(height, maxDistance float64) int {
	if math.IsNaN(height) || height > maxDistance {
		height = maxDistance
	}
	if height < 0 {
		return 0
	}
	return int(height)
}

// Column returns the screen column that view index i is drawn into for an
// image width wide.
func Column(i, width int) int { return width - 1 - i }
