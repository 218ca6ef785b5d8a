package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	drawaria "github.com/DrawariaDeveloper/Gif-to-Drawaria-Json"
	"github.com/codegangsta/cli"
)

func main() {
	app := cli.NewApp()
	app.Version = "1.0.0"
	app.Name = "gif2drawaria"
	app.Usage = "A command-line tool for converting animated GIFs into Drawaria drawing-command JSON."
	app.UsageText = "1) gif2drawaria [options] [file|url]\n" +
		/*      */ "   2) gif2drawaria [options] < [file]"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "width,w",
			Usage: "`WIDTH` of the output canvas in drawing units.",
			Value: 100,
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "`HEIGHT` of the output canvas in drawing units.",
			Value: 100,
		},
		cli.IntFlag{
			Name:  "thickness,t",
			Usage: "Brush `THICKNESS` carried into every drawing command.",
			Value: 2,
		},
		cli.IntFlag{
			Name:  "quality,q",
			Usage: "Sampling stride. `QUALITY` = 1 visits every pixel; larger values emit fewer commands at lower fidelity.",
			Value: 1,
		},
		cli.IntFlag{
			Name:  "threshold",
			Usage: "Alpha `THRESHOLD` (0-255) a pixel must exceed to be drawn.",
			Value: 10,
		},
		cli.IntFlag{
			Name:  "max-frames,m",
			Usage: "Stop after `N` frames. 0 processes the whole animation.",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "Output `FILE`. Defaults to <input>_drawaria_animation.json.",
		},
		cli.StringFlag{
			Name:  "profile",
			Usage: "YAML profile `FILE` overriding the numeric options above.",
		},
		cli.StringFlag{
			Name:  "preview",
			Usage: "Also render the result as an animated GIF preview to `FILE`.",
		},
		cli.IntFlag{
			Name:  "preview-scale",
			Usage: "Pixels per drawing unit in the preview.",
			Value: 4,
		},
		cli.BoolFlag{
			Name:  "image",
			Usage: "Treat the input as a still image instead of an animated GIF.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			Value: 0.0,
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
	}
	app.Action = func(c *cli.Context) {
		var reader io.Reader = os.Stdin
		input := c.Args().First()

		// Try to parse the arg, if there is one, as a file or url
		if input != "" {
			if file, err := os.Open(input); err == nil {
				defer file.Close()
				reader = file
			} else {
				resp, err := http.Get(input)
				if err != nil {
					exit(err.Error(), 1)
				}
				defer resp.Body.Close()
				reader = resp.Body
			}
		}

		cfg := conversionConfig(c)
		cfg.Progress = logProgress

		conv, err := drawaria.NewConverter(cfg)
		if err != nil {
			exit(err.Error(), 1)
		}

		var anim *drawaria.Animation
		if c.Bool("image") {
			anim, err = conv.ConvertImage(reader)
		} else {
			anim, err = conv.Convert(reader)
		}
		if err != nil {
			exit(err.Error(), 1)
		}

		output := c.String("output")
		if output == "" {
			output = defaultOutput(input)
		}
		if err := anim.Save(output); err != nil {
			// The animation is intact; only the write failed.
			logProgress(fmt.Sprintf("Failed to save %s: %v", output, err), drawaria.Error)
			os.Exit(1)
		}
		logProgress(fmt.Sprintf("Wrote %s: %d frames, %d commands", output, anim.Metadata.FrameCount, anim.Metadata.TotalCommands), drawaria.Success)

		if preview := c.String("preview"); preview != "" {
			if err := writePreview(anim, preview, c.Int("preview-scale")); err != nil {
				logProgress(fmt.Sprintf("Failed to write preview %s: %v", preview, err), drawaria.Error)
				os.Exit(1)
			}
			logProgress(fmt.Sprintf("Wrote preview %s", preview), drawaria.Success)
		}
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func conversionConfig(c *cli.Context) drawaria.Config {
	if path := c.String("profile"); path != "" {
		profile, err := drawaria.LoadProfile(path)
		if err != nil {
			exit(err.Error(), 1)
		}
		return profile.Config()
	}
	adjust := drawaria.Adjustments{
		Gamma:      c.Float64("gamma"),
		Brightness: c.Float64("brightness"),
		Contrast:   c.Float64("contrast"),
		Sharpen:    c.Float64("sharpen"),
		Invert:     c.Bool("invert"),
	}
	return drawaria.Config{
		Width:                 c.Int("width"),
		Height:                c.Int("height"),
		Thickness:             c.Int("thickness"),
		QualityFactor:         c.Int("quality"),
		TransparencyThreshold: c.Int("threshold"),
		MaxFrames:             c.Int("max-frames"),
		Filter:                adjust.Filter(),
	}
}

func defaultOutput(input string) string {
	if input == "" {
		return "drawaria_animation.json"
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_drawaria_animation.json"
}

func writePreview(anim *drawaria.Animation, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := anim.WritePreviewGIF(f, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func logProgress(message string, severity drawaria.Severity) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", severity, message)
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
