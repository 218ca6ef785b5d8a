package drawaria

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// Normalize scales a decoded frame to fit within width x height and centers
// it on a fully transparent canvas of exactly that size. The scale factor is
// min(width/srcW, height/srcH), so the scaled frame preserves its aspect
// ratio, touches the target bounds on at least one axis and never exceeds
// them. Resampling is Lanczos, which keeps alpha intact.
func Normalize(img image.Image, width, height int) *image.NRGBA {
	bounds := img.Bounds()
	scale := float64(width) / float64(bounds.Dx())
	if s := float64(height) / float64(bounds.Dy()); s < scale {
		scale = s
	}
	w := int(float64(bounds.Dx()) * scale)
	h := int(float64(bounds.Dy()) * scale)
	scaled := resize.Resize(uint(w), uint(h), img, resize.Lanczos3)

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	offsetX := (width - w) / 2
	offsetY := (height - h) / 2
	draw.Draw(canvas, image.Rect(offsetX, offsetY, offsetX+w, offsetY+h), scaled, scaled.Bounds().Min, draw.Src)
	return canvas
}
