package drawaria

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
)

// DefaultFPS is reported when the source declares no usable frame delay.
const DefaultFPS = 10

// Converter drives the full pipeline: frame compositing, normalization and
// scanline encoding, one frame at a time, strictly in animation order.
type Converter struct {
	cfg Config
	enc *Encoder
}

func NewConverter(cfg Config) (*Converter, error) {
	enc, err := NewEncoder(cfg)
	if err != nil {
		return nil, err
	}
	return &Converter{cfg: enc.cfg, enc: enc}, nil
}

// Convert decodes an animated GIF from r and encodes every frame, subject to
// the configured frame cap. A cap hit returns the partial result, not an
// error. The returned Animation is complete; writing it anywhere is the
// caller's concern.
func (c *Converter) Convert(r io.Reader) (*Animation, error) {
	giff, err := gif.DecodeAll(r)
	if err != nil {
		c.cfg.notify(fmt.Sprintf("Failed to decode GIF: %v", err), Error)
		return nil, fmt.Errorf("decode gif: %w", err)
	}
	return c.ConvertGIF(giff), nil
}

// ConvertGIF encodes an already-decoded GIF.
func (c *Converter) ConvertGIF(giff *gif.GIF) *Animation {
	fps := nominalFPS(giff)
	c.cfg.notify(fmt.Sprintf("Source frame rate: %.2f fps", fps), Info)

	anim := &Animation{
		Frames: [][]Segment{},
		Metadata: Metadata{
			Width:       c.cfg.Width,
			Height:      c.cfg.Height,
			OriginalFPS: fps,
			Options:     c.cfg.options(),
		},
	}

	screen := image.NewNRGBA(screenBounds(giff))
	for i, frame := range giff.Image {
		if c.cfg.MaxFrames > 0 && i >= c.cfg.MaxFrames {
			c.cfg.notify(fmt.Sprintf("Frame limit (%d) reached, stopping early", c.cfg.MaxFrames), Info)
			break
		}

		// GIF frames may be partial. Compose them onto a persistent screen,
		// honoring the frame's disposal method, so every encoded frame is a
		// full picture.
		var previous *image.NRGBA
		if disposal(giff, i) == gif.DisposalPrevious {
			previous = image.NewNRGBA(screen.Bounds())
			copy(previous.Pix, screen.Pix)
		}
		drawFrame(screen, frame)

		var src image.Image = screen
		if c.cfg.Filter != nil {
			src = c.cfg.Filter(src)
		}
		segments := c.enc.EncodeFrame(Normalize(src, c.cfg.Width, c.cfg.Height))

		anim.Frames = append(anim.Frames, segments)
		anim.Metadata.FrameCount++
		anim.Metadata.TotalCommands += len(segments)
		c.cfg.notify(fmt.Sprintf("Frame %d: %d commands", i+1, len(segments)), Info)

		switch disposal(giff, i) {
		case gif.DisposalBackground:
			clearRect(screen, frame.Bounds())
		case gif.DisposalPrevious:
			screen = previous
		}
	}
	return anim
}

// nominalFPS derives the playback rate from the source's first declared
// inter-frame delay. GIF delays are in hundredths of a second.
func nominalFPS(giff *gif.GIF) float64 {
	if len(giff.Delay) > 0 && giff.Delay[0] > 0 {
		return 100 / float64(giff.Delay[0])
	}
	return DefaultFPS
}

func disposal(giff *gif.GIF, i int) byte {
	if i < len(giff.Disposal) {
		return giff.Disposal[i]
	}
	return gif.DisposalNone
}

func screenBounds(giff *gif.GIF) image.Rectangle {
	if giff.Config.Width > 0 && giff.Config.Height > 0 {
		return image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	}
	var r image.Rectangle
	for _, frame := range giff.Image {
		r = r.Union(frame.Bounds())
	}
	return r
}

// drawFrame composes one frame over the screen, leaving pixels under the
// frame's transparent regions untouched so earlier content shows through.
func drawFrame(screen *image.NRGBA, frame *image.Paletted) {
	bounds := frame.Bounds().Intersect(screen.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := frame.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			screen.Set(x, y, c)
		}
	}
}

func clearRect(screen *image.NRGBA, r image.Rectangle) {
	draw.Draw(screen, r, image.Transparent, image.Point{}, draw.Src)
}
