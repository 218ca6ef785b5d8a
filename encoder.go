package drawaria

import (
	"fmt"
	"image"
	"image/color"
)

const (
	// DefaultSize is the canvas width and height used when none is configured.
	DefaultSize = 100
	// DefaultThickness is the brush thickness used when none is configured.
	DefaultThickness = 2
)

// Segment is one horizontal drawing command in normalized [0,1] coordinates.
// Start and end always share a y coordinate and Start[0] <= End[0]. A
// single-pixel run has Start == End.
type Segment struct {
	Start     [2]float64 `json:"start_norm"`
	End       [2]float64 `json:"end_norm"`
	Color     string     `json:"color"`
	Thickness int        `json:"thickness"`
}

// Config holds the parameters of a conversion run. Zero values of Width,
// Height, Thickness and QualityFactor select the defaults; a zero
// TransparencyThreshold is meaningful (any pixel with alpha above zero is
// drawn) and is used verbatim.
type Config struct {
	// Width and Height are the output canvas size in drawing units.
	Width  int
	Height int
	// Thickness is the brush thickness carried verbatim into every command.
	Thickness int
	// QualityFactor is the sampling stride for rows and columns. 1 visits
	// every pixel; larger values skip pixels, trading fidelity for fewer
	// commands.
	QualityFactor int
	// TransparencyThreshold is the alpha value (0-255) a sample must strictly
	// exceed to be drawn.
	TransparencyThreshold int
	// MaxFrames stops conversion after this many frames. 0 processes all.
	MaxFrames int
	// Filter, if set, is applied to each composed frame before scaling.
	Filter func(image.Image) image.Image
	// Progress, if set, observes per-frame status notifications.
	Progress Logger
}

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultSize
	}
	if c.Height == 0 {
		c.Height = DefaultSize
	}
	if c.Thickness == 0 {
		c.Thickness = DefaultThickness
	}
	if c.QualityFactor == 0 {
		c.QualityFactor = 1
	}
	return c
}

// Validate rejects configurations the pipeline's arithmetic is undefined for.
// It runs before any canvas is allocated.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("canvas size %dx%d is not positive", c.Width, c.Height)
	}
	if c.Thickness < 1 {
		return fmt.Errorf("brush thickness %d is not positive", c.Thickness)
	}
	if c.QualityFactor < 1 {
		return fmt.Errorf("quality factor %d is not positive", c.QualityFactor)
	}
	if c.TransparencyThreshold < 0 || c.TransparencyThreshold > 255 {
		return fmt.Errorf("transparency threshold %d is outside 0-255", c.TransparencyThreshold)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("max frames %d is negative", c.MaxFrames)
	}
	return nil
}

func (c Config) options() Options {
	opts := Options{
		BrushThickness:        c.Thickness,
		QualityFactor:         c.QualityFactor,
		TransparencyThreshold: c.TransparencyThreshold,
	}
	if c.MaxFrames > 0 {
		max := c.MaxFrames
		opts.MaxFrames = &max
	}
	return opts
}

// Encoder turns one normalized canvas into a list of drawing commands.
type Encoder struct {
	cfg Config
}

func NewEncoder(cfg Config) (*Encoder, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{cfg: cfg}, nil
}

// EncodeFrame scans the canvas row by row at the configured stride and emits
// one command per maximal run of visited pixels that share a color and are
// opaque enough. A run closes at transparency, at a color change and at the
// end of the row; a closed run always ends at the last visited column that
// was part of it. Rows with no opaque pixel emit nothing.
func (enc *Encoder) EncodeFrame(canvas image.Image) []Segment {
	bounds := canvas.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	stride := enc.cfg.QualityFactor
	threshold := uint32(enc.cfg.TransparencyThreshold)

	var segments []Segment
	for y := 0; y < height; y += stride {
		startX := -1 // -1 means no open run
		prevX := 0   // last visited column
		var runColor string

		for x := 0; x < width; x += stride {
			sample := color.NRGBAModel.Convert(canvas.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if uint32(sample.A) > threshold {
				hex := HexColor(sample)
				switch {
				case startX < 0:
					startX, runColor = x, hex
				case hex != runColor:
					segments = append(segments, enc.segment(startX, prevX, y, runColor, width, height))
					startX, runColor = x, hex
				}
			} else if startX >= 0 {
				segments = append(segments, enc.segment(startX, prevX, y, runColor, width, height))
				startX = -1
			}
			prevX = x
		}
		if startX >= 0 {
			segments = append(segments, enc.segment(startX, prevX, y, runColor, width, height))
		}
	}
	return segments
}

// segment closes a run spanning columns x0 through x1 of row y. Coordinates
// are normalized against the canvas size, not the configured size, so the
// encoder stays total over any well-formed canvas.
func (enc *Encoder) segment(x0, x1, y int, hex string, width, height int) Segment {
	ny := float64(y) / float64(height)
	return Segment{
		Start:     [2]float64{float64(x0) / float64(width), ny},
		End:       [2]float64{float64(x1) / float64(width), ny},
		Color:     hex,
		Thickness: enc.cfg.Thickness,
	}
}
