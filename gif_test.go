package drawaria_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	drawaria "github.com/DrawariaDeveloper/Gif-to-Drawaria-Json"
)

var testPalette = color.Palette{
	color.Transparent,
	color.RGBA{R: 255, A: 255},
	color.RGBA{B: 255, A: 255},
}

func palettedFrame(r image.Rectangle, index uint8) *image.Paletted {
	frame := image.NewPaletted(r, testPalette)
	for i := range frame.Pix {
		frame.Pix[i] = index
	}
	return frame
}

// redGIF builds an n-frame animation of a solid red 4x4 square.
func redGIF(frames, delay int) *gif.GIF {
	giff := &gif.GIF{}
	for i := 0; i < frames; i++ {
		giff.Image = append(giff.Image, palettedFrame(image.Rect(0, 0, 4, 4), 1))
		giff.Delay = append(giff.Delay, delay)
	}
	return giff
}

func encodedGIF(giff *gif.GIF) *bytes.Buffer {
	var buf bytes.Buffer
	Expect(gif.EncodeAll(&buf, giff)).To(Succeed())
	return &buf
}

func newConverter(cfg drawaria.Config) *drawaria.Converter {
	conv, err := drawaria.NewConverter(cfg)
	Expect(err).NotTo(HaveOccurred())
	return conv
}

var _ = Describe("Converter", func() {
	It("reports source errors without processing any frame", func() {
		conv := newConverter(drawaria.Config{})
		_, err := conv.Convert(strings.NewReader("not a gif"))
		Expect(err).To(HaveOccurred())
	})

	It("processes every frame of an uncapped animation", func() {
		conv := newConverter(drawaria.Config{Width: 4, Height: 4, TransparencyThreshold: 10})
		anim, err := conv.Convert(encodedGIF(redGIF(3, 10)))
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Frames).To(HaveLen(3))
		Expect(anim.Metadata.FrameCount).To(Equal(3))
		Expect(anim.Metadata.Options.MaxFrames).To(BeNil())

		total := 0
		for _, frame := range anim.Frames {
			Expect(frame).NotTo(BeEmpty())
			total += len(frame)
		}
		Expect(anim.Metadata.TotalCommands).To(Equal(total))
	})

	It("stops at the frame cap and returns the partial result", func() {
		conv := newConverter(drawaria.Config{Width: 4, Height: 4, MaxFrames: 2})
		anim, err := conv.Convert(encodedGIF(redGIF(5, 10)))
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Frames).To(HaveLen(2))
		Expect(anim.Metadata.FrameCount).To(Equal(2))
		Expect(anim.Metadata.Options.MaxFrames).NotTo(BeNil())
		Expect(*anim.Metadata.Options.MaxFrames).To(Equal(2))
	})

	It("derives the nominal frame rate from the declared delay", func() {
		conv := newConverter(drawaria.Config{Width: 4, Height: 4})
		anim, err := conv.Convert(encodedGIF(redGIF(1, 4)))
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Metadata.OriginalFPS).To(Equal(25.0))
	})

	It("falls back to the default frame rate when no delay is declared", func() {
		conv := newConverter(drawaria.Config{Width: 4, Height: 4})
		anim := conv.ConvertGIF(&gif.GIF{
			Image: []*image.Paletted{palettedFrame(image.Rect(0, 0, 4, 4), 1)},
		})
		Expect(anim.Metadata.OriginalFPS).To(Equal(10.0))
	})

	It("composes partial frames over the running screen", func() {
		giff := &gif.GIF{
			Image: []*image.Paletted{
				palettedFrame(image.Rect(0, 0, 2, 1), 1), // full red frame
				palettedFrame(image.Rect(0, 0, 1, 1), 2), // blue over the left pixel
			},
			Delay: []int{10, 10},
		}
		conv := newConverter(drawaria.Config{Width: 2, Height: 1, TransparencyThreshold: 10})
		anim := conv.ConvertGIF(giff)

		Expect(anim.Frames[0]).To(HaveLen(1))
		Expect(anim.Frames[0][0].Color).To(Equal("#FF0000"))

		// The untouched right pixel must survive from the first frame.
		Expect(anim.Frames[1]).To(HaveLen(2))
		Expect(anim.Frames[1][0].Color).To(Equal("#0000FF"))
		Expect(anim.Frames[1][1].Color).To(Equal("#FF0000"))
	})

	It("notifies the progress observer after each frame", func() {
		var messages []string
		conv := newConverter(drawaria.Config{
			Width: 4, Height: 4,
			Progress: func(message string, severity drawaria.Severity) {
				Expect(severity).To(Equal(drawaria.Info))
				messages = append(messages, message)
			},
		})
		_, err := conv.Convert(encodedGIF(redGIF(3, 10)))
		Expect(err).NotTo(HaveOccurred())
		Expect(len(messages)).To(BeNumerically(">=", 3))
	})

	It("survives a panicking progress observer", func() {
		conv := newConverter(drawaria.Config{
			Width: 4, Height: 4,
			Progress: func(string, drawaria.Severity) {
				panic("observer bug")
			},
		})
		anim, err := conv.Convert(encodedGIF(redGIF(2, 10)))
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Frames).To(HaveLen(2))
	})
})

var _ = Describe("ConvertImage", func() {
	It("encodes a still image as a one-frame animation", func() {
		giff := redGIF(1, 10)
		conv := newConverter(drawaria.Config{Width: 4, Height: 4, TransparencyThreshold: 10})
		anim, err := conv.ConvertImage(encodedGIF(giff))
		Expect(err).NotTo(HaveOccurred())
		Expect(anim.Frames).To(HaveLen(1))
		Expect(anim.Metadata.FrameCount).To(Equal(1))
		Expect(anim.Metadata.OriginalFPS).To(Equal(10.0))
		Expect(anim.Frames[0]).NotTo(BeEmpty())
	})
})
