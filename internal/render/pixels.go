package render

import (
	"image"
	"image/color"

	"raycaster/internal/core"
)

// fillMaterialRGBA converts map cells into RGBA pixels in buf using ColorFor.
func fillMaterialRGBA(buf []byte, cells []core.Material) {
	for i, c := range cells {
		base := i * 4
		col := ColorFor(c)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillColumn paints rows [y0, y1) of column x, dropping rows outside img.
func fillColumn(img *image.RGBA, x, y0, y1 int, col color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	y0 = max(y0, b.Min.Y)
	y1 = min(y1, b.Max.Y)
	for y := y0; y < y1; y++ {
		off := img.PixOffset(x, y)
		img.Pix[off+0] = col.R
		img.Pix[off+1] = col.G
		img.Pix[off+2] = col.B
		img.Pix[off+3] = col.A
	}
}
