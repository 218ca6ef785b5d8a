package drawaria

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	yaml "gopkg.in/yaml.v2"
)

// Adjustments are optional image corrections applied to each frame before
// scaling and encoding. Zero values leave the frame untouched.
type Adjustments struct {
	Gamma      float64 `yaml:"gamma"`
	Brightness float64 `yaml:"brightness"`
	Contrast   float64 `yaml:"contrast"`
	Sharpen    float64 `yaml:"sharpen"`
	Invert     bool    `yaml:"invert"`
}

// Filter returns the frame operation the adjustments describe, or nil when
// nothing is set.
func (a Adjustments) Filter() func(image.Image) image.Image {
	if a == (Adjustments{}) || a == (Adjustments{Gamma: 1}) {
		return nil
	}
	return func(img image.Image) image.Image {
		if a.Gamma != 0 && a.Gamma != 1 {
			img = imaging.AdjustGamma(img, a.Gamma)
		}
		if a.Brightness != 0 {
			img = imaging.AdjustBrightness(img, a.Brightness)
		}
		if a.Sharpen != 0 {
			img = imaging.Sharpen(img, a.Sharpen)
		}
		if a.Contrast != 0 {
			img = imaging.AdjustContrast(img, a.Contrast)
		}
		if a.Invert {
			img = imaging.Invert(img)
		}
		return img
	}
}

// Profile is a reusable parameter set for a conversion run, loadable from a
// YAML file instead of command-line flags.
type Profile struct {
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	Thickness int         `yaml:"thickness"`
	Quality   int         `yaml:"quality"`
	Threshold int         `yaml:"threshold"`
	MaxFrames int         `yaml:"max_frames"`
	Adjust    Adjustments `yaml:"adjust"`
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// Config converts the profile into a conversion configuration, including the
// adjustment filter.
func (p *Profile) Config() Config {
	return Config{
		Width:                 p.Width,
		Height:                p.Height,
		Thickness:             p.Thickness,
		QualityFactor:         p.Quality,
		TransparencyThreshold: p.Threshold,
		MaxFrames:             p.MaxFrames,
		Filter:                p.Adjust.Filter(),
	}
}
