package periodogram

import "github.com/go-rf/signals/dsp/window"

// WindowKind selects the taper applied to each segment before its FFT.
// It mirrors the subset of dsp/window kinds the accumulator supports.
type WindowKind int

const (
	WindowNone WindowKind = iota
	WindowHamming
	WindowHann
	WindowBlackman
)

func (k WindowKind) toWindowType() window.Type {
	switch k {
	case WindowHamming:
		return window.TypeHamming
	case WindowHann:
		return window.TypeHann
	case WindowBlackman:
		return window.TypeBlackman
	default:
		return window.TypeRectangular
	}
}

// Option configures a Periodogram at construction time.
type Option func(*config)

type config struct {
	alpha  float64
	window WindowKind
}

func defaultConfig() config {
	return config{
		alpha:  0,
		window: WindowHann,
	}
}

// WithAlpha sets the exponential-averaging factor. A zero alpha (the
// default) makes the accumulator a plain running sum.
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		c.alpha = alpha
	}
}

// WithWindow sets the per-segment window kind. The default is Hann.
func WithWindow(kind WindowKind) Option {
	return func(c *config) {
		c.window = kind
	}
}
