package drawaria

import (
	"encoding/json"
	"io"
	"os"
)

// Animation is the complete result of one conversion run: one command list
// per frame, in animation order, plus summary metadata. It is immutable once
// returned.
type Animation struct {
	Frames   [][]Segment `json:"frames"`
	Metadata Metadata    `json:"metadata"`
}

// Metadata summarizes a conversion in the layout playback targets expect.
type Metadata struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	OriginalFPS   float64 `json:"original_fps"`
	FrameCount    int     `json:"frame_count"`
	TotalCommands int     `json:"total_commands_generated"`
	Options       Options `json:"processing_options"`
}

// Options records the exact parameter set used for the run. MaxFrames is nil
// when the run was uncapped.
type Options struct {
	BrushThickness        int  `json:"brush_thickness"`
	QualityFactor         int  `json:"quality_factor"`
	TransparencyThreshold int  `json:"transparency_threshold"`
	MaxFrames             *int `json:"max_frames_processed"`
}

// Encode writes the animation as indented JSON.
func (a *Animation) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// Save writes the animation to path. A failure here does not invalidate the
// animation; callers may retry with a different destination.
func (a *Animation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
