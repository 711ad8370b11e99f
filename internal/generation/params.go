package generation

import (
	"fmt"

	"github.com/dryink/dryink/internal/errors"
)

// Limits for generation parameters.
const (
	MaxDimension  = 4096
	MaxFPS        = 120
	MaxFrameCount = 10000
)

// Params are the video settings sent with every prompt.
type Params struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	FPS        int `json:"fps"`
	FrameCount int `json:"frameCount"`
}

// DefaultParams returns the settings used when the user has not chosen any.
func DefaultParams() Params {
	return Params{Width: 512, Height: 512, FPS: 24, FrameCount: 48}
}

// Validate reports the first out-of-range field.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value int
		max   int
	}{
		{"width", p.Width, MaxDimension},
		{"height", p.Height, MaxDimension},
		{"fps", p.FPS, MaxFPS},
		{"frameCount", p.FrameCount, MaxFrameCount},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return errors.ConfigInvalid(fmt.Sprintf("%s must be positive, got %d", c.name, c.value))
		}
		if c.value > c.max {
			return errors.ConfigInvalid(fmt.Sprintf("%s must be at most %d, got %d", c.name, c.max, c.value))
		}
	}
	return nil
}

// Duration returns the clip length in seconds.
func (p Params) Duration() float64 {
	if p.FPS <= 0 {
		return 0
	}
	return float64(p.FrameCount) / float64(p.FPS)
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d @ %dfps, %d frames (%.1fs)", p.Width, p.Height, p.FPS, p.FrameCount, p.Duration())
}
