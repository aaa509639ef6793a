package preview

import "strconv"

// Zoom bounds and increment, in percent.
const (
	MinZoom     = 50
	MaxZoom     = 200
	ZoomStep    = 25
	DefaultZoom = 100
)

// Zoom is a preview zoom level that never leaves [MinZoom, MaxZoom].
// The zero value is treated as DefaultZoom.
type Zoom struct {
	percent int
}

// NewZoom returns a zoom at percent, clamped to the allowed range.
func NewZoom(percent int) Zoom {
	return Zoom{percent: clampZoom(percent)}
}

// Percent returns the zoom level.
func (z Zoom) Percent() int {
	if z.percent == 0 {
		return DefaultZoom
	}
	return z.percent
}

// In returns the zoom one step larger.
func (z Zoom) In() Zoom {
	return NewZoom(z.Percent() + ZoomStep)
}

// Out returns the zoom one step smaller.
func (z Zoom) Out() Zoom {
	return NewZoom(z.Percent() - ZoomStep)
}

// Reset returns the default zoom.
func (z Zoom) Reset() Zoom {
	return NewZoom(DefaultZoom)
}

// Scale returns the CSS scale factor, e.g. "1.25".
func (z Zoom) Scale() string {
	return strconv.FormatFloat(float64(z.Percent())/100, 'f', -1, 64)
}

func clampZoom(p int) int {
	switch {
	case p < MinZoom:
		return MinZoom
	case p > MaxZoom:
		return MaxZoom
	}
	return p
}
