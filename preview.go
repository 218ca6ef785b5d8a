package drawaria

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
)

// RenderFrame replays one frame's command list into a raster image, scale
// pixels per drawing unit. Round-capped strokes approximate how a playback
// target's brush paints a segment. The frame index must be in range.
func (a *Animation) RenderFrame(index, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	w := a.Metadata.Width * scale
	h := a.Metadata.Height * scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineCap(draw2d.RoundCap)
	for _, seg := range a.Frames[index] {
		col, err := ParseHex(seg.Color)
		if err != nil {
			continue
		}
		x0 := seg.Start[0] * float64(w)
		x1 := seg.End[0] * float64(w)
		y := seg.Start[1] * float64(h)
		if x1 <= x0 {
			// A single-pixel run still needs some length to paint.
			x1 = x0 + 0.5
		}
		gc.SetStrokeColor(col)
		gc.SetLineWidth(float64(seg.Thickness * scale))
		gc.MoveTo(x0, y)
		gc.LineTo(x1, y)
		gc.Stroke()
	}
	return img
}

// WritePreviewGIF re-encodes the whole animation as an animated GIF so a
// conversion can be eyeballed without a playback target.
func (a *Animation) WritePreviewGIF(w io.Writer, scale int) error {
	delay := 100 / DefaultFPS
	if a.Metadata.OriginalFPS > 0 {
		delay = int(100 / a.Metadata.OriginalFPS)
	}

	out := &gif.GIF{}
	for i := range a.Frames {
		frame := a.RenderFrame(i, scale)
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, frame.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}
