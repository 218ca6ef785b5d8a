package drawaria

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
)

// ConvertImage encodes a single still image as a one-frame animation at the
// default frame rate. Any format registered with image.Decode works; PNG,
// JPEG, GIF and BMP are registered by this package.
func (c *Converter) ConvertImage(r io.Reader) (*Animation, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		c.cfg.notify(fmt.Sprintf("Failed to decode image: %v", err), Error)
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if c.cfg.Filter != nil {
		img = c.cfg.Filter(img)
	}
	segments := c.enc.EncodeFrame(Normalize(img, c.cfg.Width, c.cfg.Height))
	c.cfg.notify(fmt.Sprintf("Image: %d commands", len(segments)), Info)

	return &Animation{
		Frames: [][]Segment{segments},
		Metadata: Metadata{
			Width:         c.cfg.Width,
			Height:        c.cfg.Height,
			OriginalFPS:   DefaultFPS,
			FrameCount:    1,
			TotalCommands: len(segments),
			Options:       c.cfg.options(),
		},
	}, nil
}
