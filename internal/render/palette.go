package render

import (
	"image/color"

	"raycaster/internal/core"
)

// Palette is the Rust Gold 8 palette (https://lospec.com/palette-list/rust-gold-8).
var Palette = [8]color.RGBA{
	{R: 246, G: 205, B: 38, A: 255}, // gold
	{R: 172, G: 107, B: 38, A: 255}, // orange
	{R: 86, G: 50, B: 38, A: 255},   // rust
	{R: 51, G: 28, B: 23, A: 255},   // maroon
	{R: 187, G: 127, B: 87, A: 255}, // creamsicle
	{R: 114, G: 89, B: 86, A: 255},  // purple
	{R: 57, G: 57, B: 57, A: 255},   // gray
	{R: 32, G: 32, B: 32, A: 255},   // black
}

var (
	// VoidColor paints empty cells and rays that hit nothing.
	VoidColor = Palette[7]
	// CeilingColor fills the column above a wall slice.
	CeilingColor = Palette[7]
	// FloorColor fills the column below a wall slice.
	FloorColor = Palette[3]
	// MarkerColor is used for the camera crosshair.
	MarkerColor = Palette[0]
	// TraceColor is used for ray paths on the top-down map.
	TraceColor = Palette[2]
)

// ColorFor returns the display color of a material.
func ColorFor(m core.Material) color.RGBA {
	switch m {
	case core.Dirt:
		return Palette[2]
	case core.Brick:
		return Palette[0]
	case core.Stone:
		return Palette[6]
	case core.Crystal:
		return Palette[4]
	default:
		return VoidColor
	}
}
