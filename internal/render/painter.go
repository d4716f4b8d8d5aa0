//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads composited frames into a single ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads frame into the painter image and draws it scaled onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame *image.RGBA, scale int) {
	if frame.Bounds().Dx() != fp.w || frame.Bounds().Dy() != fp.h {
		return
	}
	fp.img.WritePixels(frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
